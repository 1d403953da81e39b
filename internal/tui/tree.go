package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/charmbracelet/x/ansi"

	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/host"
)

// treeIndent is the width taken by the enumerators of a page row.
const treeIndent = 12

// BookTree renders b as a category / entry / page tree. Page summaries are
// cut to fit width; width <= 0 disables truncation.
func BookTree(b *guide.Book, tr host.Translator, width int) string {
	root := tree.Root(bookLabel(b, tr)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(StyleHelp)

	for _, c := range b.Categories {
		cat := tree.Root(CategoryLabel(c, tr)).Enumerator(tree.RoundedEnumerator).EnumeratorStyle(StyleHelp)
		for _, id := range guide.SortedIDs(c) {
			e := c.Entries()[id]
			entry := tree.Root(EntryLabel(id, e, tr)).Enumerator(tree.RoundedEnumerator).EnumeratorStyle(StyleHelp)
			for _, p := range e.Pages() {
				entry.Child(PageLabel(p, tr, width-treeIndent))
			}
			cat.Child(entry)
		}
		root.Child(cat)
	}
	return root.String()
}

func bookLabel(b *guide.Book, tr host.Translator) string {
	label := StyleHeader.Render(b.LocalizedTitle(tr))
	if b.Author != "" {
		label += StyleHelp.Render(" by " + b.Author)
	}
	return label
}

// CategoryLabel is the one-line description of a category.
func CategoryLabel(c guide.Category, tr host.Translator) string {
	return fmt.Sprintf("%s %s", tr.Translate(c.Name()), StyleVariant.Render("["+c.Variant()+"]"))
}

// EntryLabel is the one-line description of an entry.
func EntryLabel(id guide.ResourceLocation, e guide.Entry, tr host.Translator) string {
	return fmt.Sprintf("%s %s %s", tr.Translate(e.Name()), StyleHelp.Render(id.String()), StyleVariant.Render("["+e.Variant()+"]"))
}

// PageLabel is the one-line description of a page, truncated to width
// cells when width is positive.
func PageLabel(p guide.Page, tr host.Translator, width int) string {
	label := StyleVariant.Render("[" + p.Variant() + "]")
	if text := PageSummary(p, tr); text != "" {
		label += " " + text
	}
	if width > 0 {
		label = ansi.Truncate(label, width, "…")
	}
	return label
}

// PageSummary returns the translated single-line summary of p, or "" when
// the page cannot describe itself.
func PageSummary(p guide.Page, tr host.Translator) string {
	s, ok := p.(guide.Summarizer)
	if !ok {
		return ""
	}
	return strings.Join(strings.Fields(tr.Translate(s.Summary())), " ")
}
