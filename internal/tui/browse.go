package tui

import (
	"vaultfind/internal/candidate"
	"vaultfind/internal/index"
	"vaultfind/internal/layout"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// browseModel is the row-oriented browser over the current index.
type browseModel struct {
	store  *index.Store
	table  table.Model
	rows   []candidate.Row
	width  int
	height int
	choice string
}

func newBrowseModel(st *index.Store) browseModel {
	t := table.New(table.WithFocused(true))

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = selectedStyle
	t.SetStyles(s)

	return browseModel{store: st, table: t}
}

// reload rebuilds the rows and columns for the current viewport width.
func (m *browseModel) reload() {
	cols := layout.Compute(m.store.Config().Aliases(), m.width)
	m.rows = candidate.Rows(m.store, m.width)

	relWidth := m.width - (cols.Name + cols.Alias + cols.Size + cols.Date) - 5*layout.ColGap
	if relWidth < 10 {
		relWidth = 10
	}
	m.table.SetColumns([]table.Column{
		{Title: "Name", Width: cols.Name},
		{Title: "Source", Width: cols.Alias},
		{Title: "Size", Width: cols.Size},
		{Title: "Modified", Width: cols.Date},
		{Title: "Path", Width: relWidth},
	})

	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{r.Name, r.Alias, r.Size, r.Date, r.RelDir}
	}
	m.table.SetRows(rows)
	m.table.SetWidth(m.width)
	m.table.SetHeight(m.height - 1)
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reload()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if c := m.table.Cursor(); c >= 0 && c < len(m.rows) {
				m.choice = m.rows[c].Path
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	return m.table.View() + "\n" + dimStyle.Render("enter: open  q: quit")
}

// RunBrowse starts the tabular browser and returns the path chosen with
// enter, or the empty string when the user quit without choosing.
func RunBrowse(st *index.Store) (string, error) {
	p := tea.NewProgram(newBrowseModel(st), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(browseModel).choice, nil
}
