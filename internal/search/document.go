package search

import (
	"strings"

	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/host"
)

// Document is the indexed form of one entry.
type Document struct {
	ID       string
	Book     string // library key of the book, usually its path
	Title    string
	Category string
	Entry    string // entry identifier
	Name     string
	Text     string
	Variants []string
}

// ToMap converts the document to the field names used by the mapping.
func (d *Document) ToMap() map[string]any {
	return map[string]any{
		"book":     d.Book,
		"title":    d.Title,
		"category": d.Category,
		"entry":    d.Entry,
		"name":     d.Name,
		"text":     d.Text,
		"variants": d.Variants,
	}
}

// DocumentID identifies an entry across all indexed books.
func DocumentID(book string, entry guide.ResourceLocation) string {
	return book + "#" + entry.String()
}

// FromBook flattens b into one document per entry. Localization keys are
// translated with tr so that searches match what a reader sees.
func FromBook(key string, b *guide.Book, tr host.Translator) []*Document {
	if tr == nil {
		tr = host.Identity{}
	}
	title := b.LocalizedTitle(tr)

	var docs []*Document
	for _, cat := range b.Categories {
		catName := tr.Translate(cat.Name())
		for _, id := range guide.SortedIDs(cat) {
			entry := cat.Entries()[id]
			doc := &Document{
				ID:       DocumentID(key, id),
				Book:     key,
				Title:    title,
				Category: catName,
				Entry:    id.String(),
				Name:     tr.Translate(entry.Name()),
			}

			var text []string
			seen := map[string]bool{entry.Variant(): true}
			doc.Variants = append(doc.Variants, entry.Variant())
			for _, p := range entry.Pages() {
				if !seen[p.Variant()] {
					seen[p.Variant()] = true
					doc.Variants = append(doc.Variants, p.Variant())
				}
				if s, ok := p.(guide.Summarizer); ok {
					text = append(text, tr.Translate(s.Summary()))
				}
			}
			doc.Text = strings.Join(text, "\n")
			docs = append(docs, doc)
		}
	}
	return docs
}
