// Package guide holds the in-memory guidebook aggregate: a Book owns an
// ordered list of categories, each category owns a keyed set of entries and
// each entry owns an ordered list of pages.
//
// Categories, entries and pages are open families. A concrete variant only
// has to report the discriminator it was registered under; everything else
// it carries is its own business and is read and written by its codec.
package guide

import (
	"github.com/blackwell-systems/guidectl/internal/host"
)

// Page is one page of an entry.
type Page interface {
	// Variant returns the discriminator the page's codec is registered under.
	Variant() string
}

// Entry is one topic inside a category.
type Entry interface {
	Variant() string
	// Name returns the entry's display-name localization key.
	Name() string
	Pages() []Page
}

// Category groups entries by identifier.
type Category interface {
	Variant() string
	// Name returns the category's display-name localization key.
	Name() string
	Entries() map[ResourceLocation]Entry
}

// Summarizer is implemented by pages that can describe themselves in one
// line of plain text. Search and the outline views use it.
type Summarizer interface {
	Summary() string
}

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// DefaultBookColor is the cover color used when a book does not set one.
var DefaultBookColor = RGB(171, 70, 30)

// ObjectRef refers to a game item or block: a handle issued by the host
// name registry plus its sub-variant ("metadata"). Stack size is not part
// of the reference.
type ObjectRef struct {
	Object   host.Handle
	Metadata int
}

// IsBlock reports whether the reference resolves through the block registry.
func (r ObjectRef) IsBlock() bool {
	return r.Object.Kind() == host.KindBlock
}

// Ref resolves name in the kind registry. It is the in-code counterpart of
// decoding an object reference and reports false when the name is unknown.
func Ref(names host.NameRegistry, kind host.Kind, name string, metadata int) (ObjectRef, bool) {
	h, ok := names.Resolve(kind, name)
	if !ok {
		return ObjectRef{}, false
	}
	return ObjectRef{Object: h, Metadata: metadata}, true
}
