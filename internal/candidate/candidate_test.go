package candidate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vaultfind/internal/config"
	"vaultfind/internal/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWidth = 120

// nestedVault builds an outer root "A" with a nested root "B" and one
// markdown file inside the nested root.
func nestedVault(t *testing.T) (cfg config.Config, file string) {
	t.Helper()
	outer := t.TempDir()
	inner := filepath.Join(outer, "sub")
	require.NoError(t, os.MkdirAll(inner, 0o755))

	file = filepath.Join(inner, "x.md")
	require.NoError(t, os.WriteFile(file, []byte("# x\n"), 0o644))

	cfg = config.Config{
		Sources: []config.Source{
			{Root: outer, Alias: "A"},
			{Root: inner, Alias: "B"},
		},
		Extensions:   []string{"md"},
		SearchInPath: true,
	}
	return cfg, file
}

func TestBuildNestedRootResolution(t *testing.T) {
	cfg, file := nestedVault(t)
	st := index.NewStore(cfg)

	cands := Build(st, testWidth, true)
	require.Len(t, cands, 1)

	c := cands[0]
	assert.Equal(t, file, c.Path)
	assert.Equal(t, "x.md", strings.TrimRight(c.Label, " "))

	// The nested root's alias wins; the relative dir is stripped of
	// exactly the nested root's prefix.
	assert.True(t, strings.HasPrefix(c.Annotation, "B "), "annotation %q", c.Annotation)
	assert.True(t, strings.HasSuffix(c.Annotation, " /"), "annotation %q", c.Annotation)
	assert.Equal(t, "B / x.md", c.SearchKey)
}

func TestBuildSearchKeyNameOnly(t *testing.T) {
	cfg, _ := nestedVault(t)
	st := index.NewStore(cfg)

	cands := Build(st, testWidth, false)
	require.Len(t, cands, 1)
	assert.Equal(t, "x.md", cands[0].SearchKey)
}

func TestBuildDropsVanishedFiles(t *testing.T) {
	cfg, file := nestedVault(t)
	st := index.NewStore(cfg)
	st.Ensure()
	require.Len(t, st.Paths(), 1)

	// The file vanishes between enumeration and metadata extraction;
	// its candidate is silently absent, not an error.
	require.NoError(t, os.Remove(file))

	cands := Build(st, testWidth, true)
	assert.Empty(t, cands)
}

func TestRows(t *testing.T) {
	cfg, file := nestedVault(t)
	st := index.NewStore(cfg)

	rows := Rows(st, testWidth)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, file, r.Path)
	assert.Equal(t, "x.md", strings.TrimRight(r.Name, " "))
	assert.Equal(t, "B", strings.TrimRight(r.Alias, " "))
	assert.Equal(t, "/", r.RelDir)
	assert.Equal(t, "4", strings.TrimLeft(r.Size, " "))
	assert.Len(t, r.Date, 16)
}

func TestBuildEmptyIndex(t *testing.T) {
	st := index.NewStore(config.Config{})
	assert.Empty(t, Build(st, testWidth, true))
	assert.Empty(t, Rows(st, testWidth))
}
