package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/host"
	"github.com/blackwell-systems/guidectl/internal/tui/delegate"
	"github.com/blackwell-systems/guidectl/internal/tui/millercolumns"
)

// Rows below the columns: detail line and footer.
const outlineChrome = 4

type row interface {
	list.Item
	Title() string
	Label() string
}

type categoryItem struct {
	category guide.Category
	title    string
	label    string
}

func (i categoryItem) FilterValue() string { return i.title }
func (i categoryItem) Title() string       { return i.title }
func (i categoryItem) Label() string       { return i.label }

type entryItem struct {
	id    guide.ResourceLocation
	entry guide.Entry
	title string
	label string
}

func (i entryItem) FilterValue() string { return i.title + " " + i.id.String() }
func (i entryItem) Title() string       { return i.title }
func (i entryItem) Label() string       { return i.label }

type pageItem struct {
	index int
	page  guide.Page
	text  string
	label string
}

func (i pageItem) FilterValue() string { return i.page.Variant() + " " + i.text }
func (i pageItem) Title() string       { return fmt.Sprintf("%d. %s", i.index+1, i.page.Variant()) }
func (i pageItem) Label() string       { return i.label }

func renderRow(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	line := "  " + r.Label()
	if index == m.Index() {
		line = StyleHighlight.Render("› " + r.Title())
	}
	_, _ = fmt.Fprint(w, line)
}

type outlineModel struct {
	book      *guide.Book
	tr        host.Translator
	keys      StandardKeys
	cols      millercolumns.Model
	detail    string
	activeCmd string
	showHelp  bool
	width     int
}

func newOutline(b *guide.Book, tr host.Translator) outlineModel {
	cols := millercolumns.New(millercolumns.Config{
		BorderStyle: StyleBorder.Padding(0, 1),
	})

	items := make([]list.Item, len(b.Categories))
	for i, c := range b.Categories {
		items[i] = categoryItem{category: c, title: tr.Translate(c.Name()), label: CategoryLabel(c, tr)}
	}
	cols.Push("categories", newColumn(b.LocalizedTitle(tr), items))

	return outlineModel{book: b, tr: tr, keys: NewStandardKeys(), cols: cols}
}

func newColumn(title string, items []list.Item) list.Model {
	l := list.New(items, delegate.New(renderRow), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	return l
}

func (m outlineModel) Init() tea.Cmd {
	return nil
}

func (m outlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.cols.SetSize(msg.Width, msg.Height-outlineChrome)
		return m, nil

	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.KeyMsg:
		if col := m.cols.Focused(); col != nil {
			state := col.List.FilterState()
			// The list owns keys while typing a filter, and esc clears an applied one.
			if state == list.Filtering || (state == list.FilterApplied && msg.String() == "esc") {
				break
			}
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Select):
			m.open()
			m.activeCmd = "enter"
			return m, HighlightCmd()

		case key.Matches(msg, m.keys.Back):
			if m.detail != "" {
				m.detail = ""
			} else {
				m.cols.Pop()
			}
			m.activeCmd = "backspace"
			return m, HighlightCmd()
		}
	}

	cmd := m.cols.Update(msg)
	return m, cmd
}

// open descends into the selected row of the focused column.
func (m *outlineModel) open() {
	col := m.cols.Focused()
	if col == nil {
		return
	}
	switch it := col.List.SelectedItem().(type) {
	case categoryItem:
		ids := guide.SortedIDs(it.category)
		items := make([]list.Item, len(ids))
		for i, id := range ids {
			e := it.category.Entries()[id]
			items[i] = entryItem{id: id, entry: e, title: m.tr.Translate(e.Name()), label: EntryLabel(id, e, m.tr)}
		}
		m.cols.Push("category:"+it.category.Name(), newColumn(it.title, items))

	case entryItem:
		pages := it.entry.Pages()
		items := make([]list.Item, len(pages))
		for i, p := range pages {
			items[i] = pageItem{index: i, page: p, text: PageSummary(p, m.tr), label: PageLabel(p, m.tr, 0)}
		}
		m.cols.Push("entry:"+it.id.String(), newColumn(it.title, items))

	case pageItem:
		m.detail = StyleVariant.Render(it.page.Variant())
		if s, ok := it.page.(guide.Summarizer); ok {
			m.detail += " " + m.tr.Translate(s.Summary())
		}
	}
}

func (m outlineModel) View() string {
	var b strings.Builder
	b.WriteString(m.cols.View())
	b.WriteString("\n")
	if m.detail != "" {
		style := lipgloss.NewStyle().Padding(0, 1)
		if m.width > 2 {
			style = style.Width(m.width - 2)
		}
		b.WriteString(style.Render(m.detail))
		b.WriteString("\n")
	}
	b.WriteString(RenderFooterBar(m.shortcuts(), m.activeCmd))
	return b.String()
}

func (m outlineModel) shortcuts() []ShortcutEntry {
	if m.showHelp {
		return Shortcuts(m.keys.FullHelp())
	}
	return Shortcuts(m.keys.ShortHelp())
}

// RunOutline opens the full-screen outline browser for b.
func RunOutline(b *guide.Book, tr host.Translator) error {
	if len(b.Categories) == 0 {
		return fmt.Errorf("book has no categories")
	}
	p := tea.NewProgram(newOutline(b, tr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running outline: %w", err)
	}
	return nil
}
