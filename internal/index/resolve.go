package index

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vaultfind/internal/config"
)

// Resolve maps an absolute file path to the alias of its owning source
// and the root-relative directory it sits in. When roots nest, the
// longest matching root wins, so a more specific source always shadows
// its ancestor. A path under no configured root is still indexable: it
// degrades to an empty alias and an abbreviated containing directory.
func Resolve(path string, sources []config.Source) (alias, relDir string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	type normalized struct {
		root  string
		alias string
	}
	roots := make([]normalized, 0, len(sources))
	for _, s := range sources {
		root, err := filepath.Abs(s.Root)
		if err != nil {
			continue
		}
		if !strings.HasSuffix(root, string(os.PathSeparator)) {
			root += string(os.PathSeparator)
		}
		roots = append(roots, normalized{root: root, alias: s.Alias})
	}
	sort.SliceStable(roots, func(i, j int) bool {
		return len(roots[i].root) > len(roots[j].root)
	})

	for _, r := range roots {
		if strings.HasPrefix(abs, r.root) {
			rel := abs[len(r.root):]
			dir := filepath.Dir(rel)
			if dir == "." {
				return r.alias, "/"
			}
			return r.alias, "/" + filepath.ToSlash(dir)
		}
	}

	return "", abbreviate(filepath.Dir(abs))
}

// abbreviate shortens a directory for display by collapsing the home
// directory prefix to ~.
func abbreviate(dir string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return dir
	}
	if dir == home {
		return "~"
	}
	if strings.HasPrefix(dir, home+string(os.PathSeparator)) {
		return "~" + dir[len(home):]
	}
	return dir
}
