// Package layout computes column widths for candidate annotations and
// tabular rows, and pads fields to exact display widths. All widths are
// terminal cells, not rune counts, so wide characters are handled.
package layout

import "github.com/mattn/go-runewidth"

const (
	// DateWidth fits the ISO-minute format exactly.
	DateWidth = 16
	// SizeWidth fits the largest bucketed size display.
	SizeWidth = 6

	aliasMin = 8
	aliasMax = 18
	nameMin  = 30

	// ColGap separates adjacent columns; gapAllowance reserves the three
	// gaps between the four annotation fields, margin the trailing slack.
	ColGap       = 2
	gapAllowance = 3 * ColGap
	margin       = 10
)

// Columns holds the display width of each candidate column.
type Columns struct {
	Name  int
	Alias int
	Size  int
	Date  int
}

// Compute sizes the columns for the given viewport width. The alias
// column tracks the longest configured alias within [8,18] so one long
// alias cannot dominate; the name column absorbs the remaining width
// but never exceeds half the viewport and never shrinks below 30.
func Compute(aliases []string, width int) Columns {
	alias := aliasMin
	for _, a := range aliases {
		if w := runewidth.StringWidth(a); w > alias {
			alias = w
		}
	}
	if alias > aliasMax {
		alias = aliasMax
	}

	name := width - (alias + SizeWidth + DateWidth) - gapAllowance - margin
	if name < nameMin {
		name = nameMin
	}
	if half := width / 2; name > half {
		name = half
	}

	return Columns{Name: name, Alias: alias, Size: SizeWidth, Date: DateWidth}
}

// Pad renders s left-aligned in exactly width display cells, truncating
// if it is too long.
func Pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// PadLeft renders s right-aligned in exactly width display cells.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(runewidth.Truncate(s, width, ""), width)
}
