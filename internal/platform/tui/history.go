package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazegen/internal/storage"
)

// History layout constants
const (
	historyChrome = 8 // Title, borders, help and margins around the table
)

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	runs     []storage.Run
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	selected *storage.Run
	quitting bool
}

// NewHistoryModel creates a browser over runs, newest first.
func NewHistoryModel(runs []storage.Run, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		runs:   runs,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Size", Width: 9},
		{Title: "Seed", Width: 20},
		{Title: "Time", Width: 8},
		{Title: "Output", Width: 20},
	}

	// Give the output column whatever is left
	fixed := 0
	for _, c := range columns[:len(columns)-1] {
		fixed += c.Width + 2
	}
	if rest := m.width - 6 - fixed; rest > columns[4].Width {
		columns[4].Width = min(rest, 60)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from m.runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = HistoryRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// HistoryRow formats a run as table cells.
func HistoryRow(r storage.Run) table.Row {
	return table.Row{
		r.CreatedAt.Local().Format("Jan 02 15:04"),
		fmt.Sprintf("%dx%d", r.Width, r.Height),
		fmt.Sprintf("%d", r.Seed),
		fmt.Sprintf("%dms", r.DurationMs),
		r.Output,
	}
}

// Init initializes the history browser.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
				run := m.runs[i]
				m.selected = &run
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("MAZE HISTORY - %d runs", len(m.runs))))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(boxStyle.Render(emptyStyle.Render("No mazes recorded yet.\nRun mazegen to generate one!")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the run picked with enter, or nil.
func (m HistoryModel) Selected() *storage.Run {
	return m.selected
}

// RunHistory runs the history browser and returns the selected run, if any.
func RunHistory(runs []storage.Run, width, height int) (*storage.Run, error) {
	p := tea.NewProgram(
		NewHistoryModel(runs, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
