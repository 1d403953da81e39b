package millercolumns_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/guidectl/internal/tui/millercolumns"
)

type item string

func (i item) FilterValue() string { return string(i) }

func newList(items ...string) list.Model {
	li := make([]list.Item, len(items))
	for i, s := range items {
		li[i] = item(s)
	}
	return list.New(li, list.NewDefaultDelegate(), 20, 10)
}

func TestPushPop(t *testing.T) {
	m := millercolumns.New(millercolumns.Config{BorderStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder())})
	m.Push("root", newList("a", "b"))
	m.Push("child", newList("c"))

	if m.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", m.Depth())
	}
	if m.Focused().ID != "child" {
		t.Errorf("Focused = %q, want child", m.Focused().ID)
	}
	if !m.Pop() {
		t.Error("Pop should remove the child column")
	}
	if m.Pop() {
		t.Error("Pop should keep the last column")
	}
	if m.Focused().ID != "root" {
		t.Errorf("Focused = %q, want root", m.Focused().ID)
	}
}

func TestSetSize(t *testing.T) {
	m := millercolumns.New(millercolumns.Config{MaxVisibleColumns: 2})
	m.Push("a", newList("1"))
	m.Push("b", newList("2"))
	m.Push("c", newList("3"))
	m.SetSize(100, 30)

	if w := m.Focused().List.Width(); w != 50 {
		t.Errorf("focused width = %d, want 50", w)
	}
	if m.View() == "" {
		t.Error("View should render the visible columns")
	}
}
