package builtin

import (
	"encoding/json"

	"github.com/blackwell-systems/guidectl/internal/codec"
	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
)

// Entry discriminators.
const (
	TagEntry          = "Entry"
	TagEntryItemStack = "EntryItemStack"
)

// Entry is a plain entry: a name and its pages.
type Entry struct {
	guide.EntryBase
}

// NewEntry creates an entry named by the localization key name.
func NewEntry(name string, pages ...guide.Page) *Entry {
	return &Entry{guide.EntryBase{UnlocName: name, PageList: pages}}
}

func (*Entry) Variant() string { return TagEntry }

// EntryItemStack is an entry whose list icon is a game object.
type EntryItemStack struct {
	guide.EntryBase
	Stack guide.ObjectRef
}

// NewEntryItemStack creates an entry shown with stack as its icon.
func NewEntryItemStack(name string, stack guide.ObjectRef, pages ...guide.Page) *EntryItemStack {
	return &EntryItemStack{
		EntryBase: guide.EntryBase{UnlocName: name, PageList: pages},
		Stack:     stack,
	}
}

func (*EntryItemStack) Variant() string { return TagEntryItemStack }

type entryJSON struct {
	Name  *string         `json:"name" validate:"required"`
	Pages json.RawMessage `json:"pageList" validate:"required"`
	Stack json.RawMessage `json:"stack,omitempty"`
}

func encodeEntryBase(c *codec.Codec, e *guide.EntryBase) (entryJSON, error) {
	pages, err := c.EncodePages(e.PageList)
	if err != nil {
		return entryJSON{}, guideerr.At(err, "pageList")
	}
	list, err := codec.Marshal(pages)
	if err != nil {
		return entryJSON{}, err
	}
	return entryJSON{Name: &e.UnlocName, Pages: list}, nil
}

func decodeEntryBase(c *codec.Codec, wire entryJSON) (guide.EntryBase, error) {
	pages, err := c.DecodePages(wire.Pages)
	if err != nil {
		return guide.EntryBase{}, guideerr.At(err, "pageList")
	}
	return guide.EntryBase{UnlocName: *wire.Name, PageList: pages}, nil
}

func encodeEntry(c *codec.Codec, e *Entry) (any, error) {
	return encodeEntryBase(c, &e.EntryBase)
}

func decodeEntry(c *codec.Codec, raw json.RawMessage) (*Entry, error) {
	var wire entryJSON
	if err := c.Bind(raw, &wire); err != nil {
		return nil, err
	}
	base, err := decodeEntryBase(c, wire)
	if err != nil {
		return nil, err
	}
	return &Entry{base}, nil
}

func encodeEntryItemStack(c *codec.Codec, e *EntryItemStack) (any, error) {
	wire, err := encodeEntryBase(c, &e.EntryBase)
	if err != nil {
		return nil, err
	}
	if wire.Stack, err = encodeObjectField(c, e.Stack, "stack"); err != nil {
		return nil, err
	}
	return wire, nil
}

func decodeEntryItemStack(c *codec.Codec, raw json.RawMessage) (*EntryItemStack, error) {
	var wire entryJSON
	if err := c.Bind(raw, &wire); err != nil {
		return nil, err
	}
	stack, err := decodeObjectField(c, wire.Stack, "stack")
	if err != nil {
		return nil, err
	}
	base, err := decodeEntryBase(c, wire)
	if err != nil {
		return nil, err
	}
	return &EntryItemStack{EntryBase: base, Stack: stack}, nil
}
