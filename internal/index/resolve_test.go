package index

import (
	"os"
	"path/filepath"
	"testing"

	"vaultfind/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLongestPrefixWins(t *testing.T) {
	outer := t.TempDir()
	inner := filepath.Join(outer, "sub")
	require.NoError(t, os.MkdirAll(inner, 0o755))

	sources := []config.Source{
		{Root: outer, Alias: "A"},
		{Root: inner, Alias: "B"},
	}

	// A file in the nested root resolves to the nested alias, never the
	// ancestor's, regardless of declaration order.
	alias, relDir := Resolve(filepath.Join(inner, "x.md"), sources)
	assert.Equal(t, "B", alias)
	assert.Equal(t, "/", relDir)

	reversed := []config.Source{sources[1], sources[0]}
	alias, relDir = Resolve(filepath.Join(inner, "x.md"), reversed)
	assert.Equal(t, "B", alias)
	assert.Equal(t, "/", relDir)
}

func TestResolveRelativeDir(t *testing.T) {
	root := t.TempDir()
	sources := []config.Source{{Root: root, Alias: "notes"}}

	alias, relDir := Resolve(filepath.Join(root, "top.org"), sources)
	assert.Equal(t, "notes", alias)
	assert.Equal(t, "/", relDir)

	alias, relDir = Resolve(filepath.Join(root, "a", "b", "deep.org"), sources)
	assert.Equal(t, "notes", alias)
	assert.Equal(t, "/a/b", relDir)
}

func TestResolveOutsideAnyRoot(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	sources := []config.Source{{Root: root, Alias: "notes"}}

	alias, relDir := Resolve(filepath.Join(other, "stray.md"), sources)
	assert.Empty(t, alias)
	assert.NotEmpty(t, relDir, "unresolved files still get a displayable directory")
}

func TestResolveSiblingPrefixNotConfused(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "notes")
	sibling := filepath.Join(base, "notes-archive")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.MkdirAll(sibling, 0o755))

	sources := []config.Source{{Root: root, Alias: "notes"}}

	// "notes-archive" shares a string prefix with "notes" but is not
	// under it; the trailing separator keeps it from matching.
	alias, _ := Resolve(filepath.Join(sibling, "old.md"), sources)
	assert.Empty(t, alias)
}
