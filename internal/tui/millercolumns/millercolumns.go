// Package millercolumns lays out a stack of lists side by side for
// hierarchical navigation.
package millercolumns

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column is one level of the hierarchy.
type Column struct {
	ID   string
	List list.Model
}

// Config configures a Miller columns model.
type Config struct {
	// MaxVisibleColumns is the number of columns shown at once (default: 3).
	MaxVisibleColumns int

	FocusedBorderColor   lipgloss.TerminalColor
	UnfocusedBorderColor lipgloss.TerminalColor

	// BorderStyle should include the border and padding.
	BorderStyle lipgloss.Style
}

// Model manages the column stack. Only the rightmost column has focus.
type Model struct {
	columns     []Column
	width       int
	height      int
	maxVisible  int
	focused     lipgloss.TerminalColor
	unfocused   lipgloss.TerminalColor
	borderStyle lipgloss.Style
}

// New creates an empty model.
func New(cfg Config) Model {
	if cfg.MaxVisibleColumns == 0 {
		cfg.MaxVisibleColumns = 3
	}
	if cfg.FocusedBorderColor == nil {
		cfg.FocusedBorderColor = lipgloss.Color("6")
	}
	if cfg.UnfocusedBorderColor == nil {
		cfg.UnfocusedBorderColor = lipgloss.Color("240")
	}
	return Model{
		maxVisible:  cfg.MaxVisibleColumns,
		focused:     cfg.FocusedBorderColor,
		unfocused:   cfg.UnfocusedBorderColor,
		borderStyle: cfg.BorderStyle,
	}
}

// Push adds a column on the right and focuses it.
func (m *Model) Push(id string, l list.Model) {
	m.columns = append(m.columns, Column{ID: id, List: l})
	m.resize()
}

// Pop removes the rightmost column. The last column is never removed.
func (m *Model) Pop() bool {
	if len(m.columns) <= 1 {
		return false
	}
	m.columns = m.columns[:len(m.columns)-1]
	m.resize()
	return true
}

// Depth returns the number of columns.
func (m *Model) Depth() int {
	return len(m.columns)
}

// Focused returns the focused column, or nil when empty.
func (m *Model) Focused() *Column {
	if len(m.columns) == 0 {
		return nil
	}
	return &m.columns[len(m.columns)-1]
}

// SetSize records the available area and resizes the visible columns.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resize()
}

// Update forwards msg to the focused column's list.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	col := m.Focused()
	if col == nil {
		return nil
	}
	var cmd tea.Cmd
	col.List, cmd = col.List.Update(msg)
	return cmd
}

// View renders the visible columns.
func (m Model) View() string {
	if len(m.columns) == 0 {
		return ""
	}
	start := m.firstVisible()
	views := make([]string, 0, len(m.columns)-start)
	for i := start; i < len(m.columns); i++ {
		style := m.borderStyle.BorderForeground(m.unfocused)
		if i == len(m.columns)-1 {
			style = m.borderStyle.BorderForeground(m.focused)
		}
		views = append(views, style.Render(m.columns[i].List.View()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *Model) firstVisible() int {
	if len(m.columns) > m.maxVisible {
		return len(m.columns) - m.maxVisible
	}
	return 0
}

func (m *Model) resize() {
	if len(m.columns) == 0 || m.width == 0 || m.height == 0 {
		return
	}
	visible := len(m.columns) - m.firstVisible()
	h, v := m.borderStyle.GetFrameSize()
	colWidth := m.width/visible - h
	if colWidth < 10 {
		colWidth = 10
	}
	for i := m.firstVisible(); i < len(m.columns); i++ {
		m.columns[i].List.SetSize(colWidth, m.height-v)
	}
}
