package scan

import (
	"path/filepath"
	"strings"
)

// Filter decides whether a file name belongs in the index based on the
// configured extension list.
type Filter struct {
	exts map[string]bool
}

// NewFilter builds a filter from a list of extensions (without leading
// dots). An empty list matches every file.
func NewFilter(extensions []string) Filter {
	if len(extensions) == 0 {
		return Filter{}
	}
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimPrefix(e, "."))
		if e != "" {
			exts[e] = true
		}
	}
	return Filter{exts: exts}
}

// Matches reports whether name's final dot-extension, case-insensitively,
// exactly equals one of the configured extensions. The match is anchored
// at the end of the name: "notes.org~" and "report.orgx" do not match
// "org". With no configured extensions every name matches.
func (f Filter) Matches(name string) bool {
	if f.exts == nil {
		return true
	}
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	return f.exts[strings.ToLower(ext[1:])]
}

// FdArgs translates the extension list into fd's native per-extension
// flags. fd's -e flag anchors at the final extension exactly like
// Filter.Matches, so the two scanner strategies agree on the file set.
func FdArgs(extensions []string) []string {
	var args []string
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimPrefix(e, "."))
		if e != "" {
			args = append(args, "-e", e)
		}
	}
	return args
}
