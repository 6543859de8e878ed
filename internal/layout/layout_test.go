package layout

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestComputeInvariants(t *testing.T) {
	aliasSets := [][]string{
		nil,
		{"a"},
		{"notes", "work"},
		{"a-very-long-alias-name-indeed"},
		{"日本語ノート"},
	}

	for width := 80; width <= 240; width += 10 {
		for _, aliases := range aliasSets {
			c := Compute(aliases, width)
			assert.LessOrEqual(t, c.Name, width/2, "width %d", width)
			assert.GreaterOrEqual(t, c.Name, 30, "width %d", width)
			assert.GreaterOrEqual(t, c.Alias, 8)
			assert.LessOrEqual(t, c.Alias, 18)
			assert.Equal(t, 6, c.Size)
			assert.Equal(t, 16, c.Date)
		}
	}
}

func TestComputeAliasTracksLongest(t *testing.T) {
	c := Compute([]string{"ab", "notes-work"}, 120)
	assert.Equal(t, 10, c.Alias)

	// Short aliases stay at the floor, long ones hit the ceiling.
	assert.Equal(t, 8, Compute([]string{"ab"}, 120).Alias)
	assert.Equal(t, 18, Compute([]string{"an-extremely-long-vault-alias"}, 120).Alias)
}

func TestPad(t *testing.T) {
	assert.Equal(t, "abc   ", Pad("abc", 6))
	assert.Equal(t, "abcdef", Pad("abcdefgh", 6))
	assert.Equal(t, "   abc", PadLeft("abc", 6))
	assert.Equal(t, "      ", Pad("", 6))
}

func TestPadWideRunes(t *testing.T) {
	// Each CJK rune occupies two cells; padding must count cells.
	s := Pad("日本語", 8)
	assert.Equal(t, 8, runewidth.StringWidth(s))
	assert.Equal(t, "日本語  ", s)

	// Truncation cannot split a wide rune; it pads the remainder.
	truncated := Pad("日本語", 5)
	assert.Equal(t, 5, runewidth.StringWidth(truncated))
}
