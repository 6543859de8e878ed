// Package tui implements the interactive consumers of the index: a
// fuzzy selection list and a tabular browser.
package tui

import (
	"fmt"
	"io"

	"vaultfind/internal/candidate"
	"vaultfind/internal/index"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// candidateItem adapts a search candidate to the list. The fuzzy filter
// matches against the search key, which may cover alias and relative
// path depending on configuration.
type candidateItem struct {
	c candidate.Candidate
}

func (i candidateItem) FilterValue() string { return i.c.SearchKey }

// candidateDelegate renders one candidate per line: the padded label
// followed by the dimmed annotation columns.
type candidateDelegate struct{}

func (d candidateDelegate) Height() int { return 1 }

func (d candidateDelegate) Spacing() int { return 0 }

func (d candidateDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d candidateDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	ci, ok := item.(candidateItem)
	if !ok {
		return
	}
	line := ci.c.Label + "  " + annotationStyle.Render(ci.c.Annotation)
	if idx == m.Index() {
		fmt.Fprint(w, selectedStyle.Render("> ")+selectedStyle.Render(ci.c.Label)+"  "+annotationStyle.Render(ci.c.Annotation))
		return
	}
	fmt.Fprint(w, "  "+listItemStyle.Render(line))
}

// findModel is the fuzzy selection UI over the current index.
type findModel struct {
	store   *index.Store
	preview previewModel
	list    list.Model
	width   int
	height  int
	choice  string // chosen absolute path, empty if aborted
}

func newFindModel(st *index.Store, query string) findModel {
	l := list.New(nil, candidateDelegate{}, 0, 0)
	l.Title = "vaultfind"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	if query != "" {
		l.SetFilterText(query)
	}

	return findModel{store: st, list: l}
}

func (m findModel) Init() tea.Cmd {
	return nil
}

// reload rebuilds the candidate set for the current viewport width.
// Candidates are never cached: column widths depend on the width, and
// rebuilding drops files that vanished since the index was built.
func (m *findModel) reload() tea.Cmd {
	cands := candidate.Build(m.store, m.width, m.store.Config().SearchInPath)
	items := make([]list.Item, len(cands))
	for i, c := range cands {
		items[i] = candidateItem{c: c}
	}
	return m.list.SetItems(items)
}

func (m findModel) listHeight() int {
	if m.preview.visible {
		return m.height - m.preview.height()
	}
	return m.height
}

func (m findModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.resize(msg.Width, msg.Height/2)
		cmd := m.reload()
		m.list.SetSize(m.width, m.listHeight())
		return m, cmd

	case tea.KeyMsg:
		// While the filter input is focused, every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if msg.String() == "esc" && m.list.FilterState() == list.FilterApplied {
				break // let the list clear its filter first
			}
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(candidateItem); ok {
				m.choice = item.c.Path
				return m, tea.Quit
			}
			return m, nil
		case "tab":
			m.preview.toggle(m.selectedPath())
			m.list.SetSize(m.width, m.listHeight())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.preview.visible {
		m.preview.show(m.selectedPath())
	}
	return m, cmd
}

func (m findModel) selectedPath() string {
	if item, ok := m.list.SelectedItem().(candidateItem); ok {
		return item.c.Path
	}
	return ""
}

func (m findModel) View() string {
	if !m.preview.visible {
		return m.list.View()
	}
	return m.list.View() + "\n" + m.preview.View()
}

// RunFind starts the selection UI and returns the chosen absolute path,
// or the empty string when the user aborted without choosing.
func RunFind(st *index.Store, query string) (string, error) {
	p := tea.NewProgram(newFindModel(st, query), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(findModel).choice, nil
}
