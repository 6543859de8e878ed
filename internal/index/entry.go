package index

import (
	"fmt"
	"os"
	"path/filepath"

	"vaultfind/internal/config"
)

// timeLayout is ISO 8601 truncated to the minute, 16 cells wide.
const timeLayout = "2006-01-02T15:04"

// Entry is the materialized view of one indexed file at a point in
// time. It is derived from the filesystem on every request, never
// stored durably.
type Entry struct {
	Path        string // absolute path
	Name        string // final path segment
	Alias       string // owning source alias, empty if unresolved
	RelDir      string // root-relative directory, "/" for root-level files
	Size        int64
	SizeDisplay string
	Modified    string // local mtime, ISO minute
}

// Stat builds the entry for path. ok is false when the file cannot be
// statted (vanished, permission denied); callers must treat that as
// "skip this entry", never as a failure.
func Stat(path string, sources []config.Source) (Entry, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, false
	}

	alias, relDir := Resolve(path, sources)
	return Entry{
		Path:        path,
		Name:        filepath.Base(path),
		Alias:       alias,
		RelDir:      relDir,
		Size:        info.Size(),
		SizeDisplay: FormatSize(info.Size()),
		Modified:    info.ModTime().Local().Format(timeLayout),
	}, true
}

// FormatSize buckets a byte count for display: plain bytes below 1k,
// then one-decimal k and M.
func FormatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1fk", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/(1024*1024))
	}
}
