package guide

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/blackwell-systems/guidectl/internal/host"
)

// Book is the root of a guidebook.
type Book struct {
	Title          string // localization key
	WelcomeMessage string // localization key
	DisplayName    string // localization key
	Categories     []Category
	Color          Color
	// PageTexture and OutlineTexture are image references passed through
	// untouched.
	PageTexture    string
	OutlineTexture string
	Author         string
}

// NewBook creates an empty book with the default color.
func NewBook(title, welcome, displayName string) *Book {
	return &Book{
		Title:          title,
		WelcomeMessage: welcome,
		DisplayName:    displayName,
		Color:          DefaultBookColor,
	}
}

// AddCategory appends c.
func (b *Book) AddCategory(c Category) {
	b.Categories = append(b.Categories, c)
}

// AddCategories appends cs in order.
func (b *Book) AddCategories(cs []Category) {
	b.Categories = append(b.Categories, cs...)
}

// RemoveCategory removes the first category equal to c and reports whether
// one was removed.
func (b *Book) RemoveCategory(c Category) bool {
	for i, existing := range b.Categories {
		if sameCategory(existing, c) {
			b.Categories = append(b.Categories[:i], b.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveCategories removes every category equal to any of cs.
func (b *Book) RemoveCategories(cs []Category) {
	kept := b.Categories[:0]
	for _, existing := range b.Categories {
		drop := false
		for _, c := range cs {
			if sameCategory(existing, c) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, existing)
		}
	}
	for i := len(kept); i < len(b.Categories); i++ {
		b.Categories[i] = nil
	}
	b.Categories = kept
}

// LocalizedTitle translates the title key.
func (b *Book) LocalizedTitle(tr host.Translator) string {
	return tr.Translate(b.Title)
}

// LocalizedWelcomeMessage translates the welcome-message key.
func (b *Book) LocalizedWelcomeMessage(tr host.Translator) string {
	return tr.Translate(b.WelcomeMessage)
}

// LocalizedDisplayName translates the display-name key.
func (b *Book) LocalizedDisplayName(tr host.Translator) string {
	return tr.Translate(b.DisplayName)
}

// Counts returns the number of categories, entries and pages in b.
func (b *Book) Counts() (categories, entries, pages int) {
	categories = len(b.Categories)
	for _, c := range b.Categories {
		for _, e := range c.Entries() {
			entries++
			pages += len(e.Pages())
		}
	}
	return categories, entries, pages
}

// structural compares variant values field by field, unexported fields
// included. Nil and empty slices or maps are the same: a decoded empty list
// is nil while an in-code one may not be.
var structural = cmp.Options{
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether a and b are structurally equal: same fields, same
// category order, same entry identifiers and same page order.
func Equal(a, b *Book) bool {
	return cmp.Equal(a, b, structural)
}

func sameCategory(a, b Category) bool {
	return cmp.Equal(a, b, structural)
}
