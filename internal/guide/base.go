package guide

import "sort"

// CategoryBase carries the fields every category has. Variants embed it.
type CategoryBase struct {
	UnlocName string
	EntryMap  map[ResourceLocation]Entry
}

// NewCategoryBase creates a base with an empty entry map when entries is nil.
func NewCategoryBase(unlocName string, entries map[ResourceLocation]Entry) CategoryBase {
	if entries == nil {
		entries = map[ResourceLocation]Entry{}
	}
	return CategoryBase{UnlocName: unlocName, EntryMap: entries}
}

// Name implements Category.
func (c *CategoryBase) Name() string { return c.UnlocName }

// Entries implements Category.
func (c *CategoryBase) Entries() map[ResourceLocation]Entry { return c.EntryMap }

// AddEntry stores e under id, replacing any entry already there.
func (c *CategoryBase) AddEntry(id ResourceLocation, e Entry) {
	if c.EntryMap == nil {
		c.EntryMap = map[ResourceLocation]Entry{}
	}
	c.EntryMap[id] = e
}

// RemoveEntry deletes the entry under id and reports whether it existed.
func (c *CategoryBase) RemoveEntry(id ResourceLocation) bool {
	if _, ok := c.EntryMap[id]; !ok {
		return false
	}
	delete(c.EntryMap, id)
	return true
}

// EntryBase carries the fields every entry has. Variants embed it.
type EntryBase struct {
	UnlocName string
	PageList  []Page
}

// Name implements Entry.
func (e *EntryBase) Name() string { return e.UnlocName }

// Pages implements Entry.
func (e *EntryBase) Pages() []Page { return e.PageList }

// AddPage appends p.
func (e *EntryBase) AddPage(p Page) {
	e.PageList = append(e.PageList, p)
}

// SortedIDs returns the entry identifiers of c in lexical order. Entry maps
// have no inherent order; outputs that list them use this.
func SortedIDs(c Category) []ResourceLocation {
	ids := make([]ResourceLocation, 0, len(c.Entries()))
	for id := range c.Entries() {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
