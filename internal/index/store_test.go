package index

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"vaultfind/internal/config"
	"vaultfind/internal/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(roots ...string) config.Config {
	cfg := config.Config{Extensions: []string{"md"}}
	for _, r := range roots {
		cfg.Sources = append(cfg.Sources, config.Source{Root: r, Alias: filepath.Base(r)})
	}
	return cfg
}

func write(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
}

func TestRefreshReplacesWholesale(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.md"))
	write(t, filepath.Join(root, "b.md"))

	st := NewStore(testConfig(root))
	stats := st.Refresh()
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, scan.StrategyWalk, stats.Strategy)
	first := st.BuiltAt()
	assert.False(t, first.IsZero())

	// A second refresh with an unchanged filesystem yields the same set.
	before := append([]string(nil), st.Paths()...)
	st.Refresh()
	after := append([]string(nil), st.Paths()...)
	sort.Strings(before)
	sort.Strings(after)
	assert.Equal(t, before, after)
	assert.False(t, st.BuiltAt().Before(first))

	// New files only appear through refresh.
	write(t, filepath.Join(root, "c.md"))
	st.Refresh()
	assert.Len(t, st.Paths(), 3)
}

func TestEnsureBuildsLazilyOnce(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.md"))

	st := NewStore(testConfig(root))
	assert.Empty(t, st.Paths())

	st.Ensure()
	assert.Len(t, st.Paths(), 1)
	built := st.BuiltAt()

	// Built store: Ensure is a no-op even when the filesystem changed.
	write(t, filepath.Join(root, "b.md"))
	st.Ensure()
	assert.Len(t, st.Paths(), 1)
	assert.Equal(t, built, st.BuiltAt())
}

func TestPruneDropsDeadEntries(t *testing.T) {
	root := t.TempDir()
	keep := filepath.Join(root, "keep.md")
	dead := filepath.Join(root, "dead.md")
	write(t, keep)
	write(t, dead)

	st := NewStore(testConfig(root))
	st.Ensure()
	built := st.BuiltAt()
	require.Len(t, st.Paths(), 2)

	require.NoError(t, os.Remove(dead))

	assert.Equal(t, 1, st.Prune())
	assert.Equal(t, []string{keep}, st.Paths())
	assert.Equal(t, built, st.BuiltAt(), "prune must not touch the build timestamp")

	// Idempotent: a second prune with no filesystem changes removes nothing.
	assert.Equal(t, 0, st.Prune())
	assert.Equal(t, []string{keep}, st.Paths())
}

func TestRefreshNoSources(t *testing.T) {
	st := NewStore(config.Config{})
	stats := st.Refresh()
	assert.Zero(t, stats.Files)
	assert.Empty(t, st.Paths())
}
