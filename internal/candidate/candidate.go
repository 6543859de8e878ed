// Package candidate turns index entries into the searchable, annotated
// units consumed by the selection and tabular surfaces.
package candidate

import (
	"strings"

	"vaultfind/internal/index"
	"vaultfind/internal/layout"
)

var gap = strings.Repeat(" ", layout.ColGap)

// Candidate is the transient, per-request view of one indexed file: a
// padded display label, the key the fuzzy matcher filters on, and an
// annotation of padded metadata fields. Path is the opaque handle back
// to the file.
type Candidate struct {
	Label      string
	SearchKey  string
	Annotation string
	Path       string
}

// Row is one fixed-width line for the tabular consumer, keyed by the
// absolute path.
type Row struct {
	Name   string
	Alias  string
	Size   string
	Date   string
	RelDir string
	Path   string
}

// Build derives candidates for every live index entry, with columns
// sized to the given viewport width. Entries that no longer stat are
// silently dropped; a file vanishing between enumeration and here is an
// expected condition. When searchInPath is set the search key covers
// alias and relative path in addition to the file name.
func Build(st *index.Store, width int, searchInPath bool) []Candidate {
	st.Ensure()
	cols := layout.Compute(st.Config().Aliases(), width)

	candidates := make([]Candidate, 0, len(st.Paths()))
	for _, p := range st.Paths() {
		e, ok := index.Stat(p, st.Sources())
		if !ok {
			continue
		}

		key := e.Name
		if searchInPath {
			key = strings.TrimSpace(e.Alias + " " + e.RelDir + " " + e.Name)
		}

		annotation := layout.Pad(e.Alias, cols.Alias) + gap +
			layout.PadLeft(e.SizeDisplay, cols.Size) + gap +
			layout.Pad(e.Modified, cols.Date) + gap +
			e.RelDir

		candidates = append(candidates, Candidate{
			Label:      layout.Pad(e.Name, cols.Name),
			SearchKey:  key,
			Annotation: annotation,
			Path:       e.Path,
		})
	}
	return candidates
}

// Rows derives fixed-width tabular rows for every live index entry,
// dropping vanished files the same way Build does.
func Rows(st *index.Store, width int) []Row {
	st.Ensure()
	cols := layout.Compute(st.Config().Aliases(), width)

	rows := make([]Row, 0, len(st.Paths()))
	for _, p := range st.Paths() {
		e, ok := index.Stat(p, st.Sources())
		if !ok {
			continue
		}
		rows = append(rows, Row{
			Name:   layout.Pad(e.Name, cols.Name),
			Alias:  layout.Pad(e.Alias, cols.Alias),
			Size:   layout.PadLeft(e.SizeDisplay, cols.Size),
			Date:   layout.Pad(e.Modified, cols.Date),
			RelDir: e.RelDir,
			Path:   e.Path,
		})
	}
	return rows
}
