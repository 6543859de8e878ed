package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
)

// previewCap bounds how much of a file the preview reads (64 KB).
const previewCap = 64 << 10

// previewModel renders the highlighted note below the selection list.
// Markdown files go through glamour; everything else is shown raw.
type previewModel struct {
	visible  bool
	width    int
	lines    int
	renderer *glamour.TermRenderer
	path     string
	content  string
}

func (p *previewModel) resize(width, lines int) {
	p.width = width
	p.lines = lines

	// Recreate the glamour renderer matched to the new width.
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err == nil {
		p.renderer = r
	}
	if p.visible {
		p.render()
	}
}

func (p *previewModel) toggle(path string) {
	p.visible = !p.visible
	if p.visible {
		p.show(path)
	}
}

// show updates the preview to the given file if it changed.
func (p *previewModel) show(path string) {
	if path == p.path {
		return
	}
	p.path = path
	p.render()
}

func (p *previewModel) render() {
	if p.path == "" {
		p.content = dimStyle.Render("nothing selected")
		return
	}

	f, err := os.Open(p.path)
	if err != nil {
		p.content = errorStyle.Render("cannot read " + p.path)
		return
	}
	defer f.Close()

	buf := make([]byte, previewCap)
	n, _ := f.Read(buf)
	text := string(buf[:n])

	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(p.path), ".")) {
	case "md", "markdown":
		if p.renderer != nil {
			if rendered, err := p.renderer.Render(text); err == nil {
				text = rendered
			}
		}
	}
	p.content = strings.TrimRight(text, "\n")
}

// height is the total cells the preview occupies, bar included.
func (p previewModel) height() int {
	if !p.visible {
		return 0
	}
	return p.lines + 1
}

func (p previewModel) View() string {
	if !p.visible {
		return ""
	}
	bar := previewBarStyle.Width(p.width).Render(" " + p.path)

	lines := strings.Split(p.content, "\n")
	if len(lines) > p.lines {
		lines = lines[:p.lines]
	}
	return bar + "\n" + strings.Join(lines, "\n")
}
