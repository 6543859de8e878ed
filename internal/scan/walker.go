package scan

import (
	"io/fs"
	"os"
	"path/filepath"
)

// walk recursively enumerates regular files under every root whose name
// passes the filter, in root-then-directory order. Roots that do not
// exist, are not directories, or cannot be read are silently skipped;
// errors inside a tree skip the offending entry and keep walking.
// Hidden files are included, matching fd's --hidden flag.
func walk(roots []string, filter Filter) []string {
	var paths []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}

		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip errors, keep walking
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if filter.Matches(d.Name()) {
				paths = append(paths, path)
			}
			return nil
		})
	}
	return paths
}
