package builtin

import (
	"encoding/json"

	"github.com/blackwell-systems/guidectl/internal/codec"
	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
)

// Category discriminators.
const (
	TagCategory          = "Category"
	TagCategoryItemStack = "CategoryItemStack"
)

// Category is a plain category.
type Category struct {
	guide.CategoryBase
}

// NewCategory creates a category named by the localization key name.
func NewCategory(name string, entries map[guide.ResourceLocation]guide.Entry) *Category {
	return &Category{guide.NewCategoryBase(name, entries)}
}

func (*Category) Variant() string { return TagCategory }

// CategoryItemStack is a category whose tab icon is a game object.
type CategoryItemStack struct {
	guide.CategoryBase
	Stack guide.ObjectRef
}

// NewCategoryItemStack creates a category shown with stack as its icon.
func NewCategoryItemStack(name string, stack guide.ObjectRef, entries map[guide.ResourceLocation]guide.Entry) *CategoryItemStack {
	return &CategoryItemStack{
		CategoryBase: guide.NewCategoryBase(name, entries),
		Stack:        stack,
	}
}

func (*CategoryItemStack) Variant() string { return TagCategoryItemStack }

// Entries are written as an object keyed by identifier.
type categoryJSON struct {
	Name    *string         `json:"name" validate:"required"`
	Entries json.RawMessage `json:"entries" validate:"required"`
	Stack   json.RawMessage `json:"stack,omitempty"`
}

func encodeCategoryBase(c *codec.Codec, cat *guide.CategoryBase) (categoryJSON, error) {
	entries, err := c.EncodeEntries(cat.EntryMap)
	if err != nil {
		return categoryJSON{}, guideerr.At(err, "entries")
	}
	obj, err := codec.Marshal(entries)
	if err != nil {
		return categoryJSON{}, err
	}
	return categoryJSON{Name: &cat.UnlocName, Entries: obj}, nil
}

func decodeCategoryBase(c *codec.Codec, wire categoryJSON) (guide.CategoryBase, error) {
	entries, err := c.DecodeEntries(wire.Entries)
	if err != nil {
		return guide.CategoryBase{}, guideerr.At(err, "entries")
	}
	return guide.NewCategoryBase(*wire.Name, entries), nil
}

func encodeCategory(c *codec.Codec, cat *Category) (any, error) {
	return encodeCategoryBase(c, &cat.CategoryBase)
}

func decodeCategory(c *codec.Codec, raw json.RawMessage) (*Category, error) {
	var wire categoryJSON
	if err := c.Bind(raw, &wire); err != nil {
		return nil, err
	}
	base, err := decodeCategoryBase(c, wire)
	if err != nil {
		return nil, err
	}
	return &Category{base}, nil
}

func encodeCategoryItemStack(c *codec.Codec, cat *CategoryItemStack) (any, error) {
	wire, err := encodeCategoryBase(c, &cat.CategoryBase)
	if err != nil {
		return nil, err
	}
	if wire.Stack, err = encodeObjectField(c, cat.Stack, "stack"); err != nil {
		return nil, err
	}
	return wire, nil
}

func decodeCategoryItemStack(c *codec.Codec, raw json.RawMessage) (*CategoryItemStack, error) {
	var wire categoryJSON
	if err := c.Bind(raw, &wire); err != nil {
		return nil, err
	}
	stack, err := decodeObjectField(c, wire.Stack, "stack")
	if err != nil {
		return nil, err
	}
	base, err := decodeCategoryBase(c, wire)
	if err != nil {
		return nil, err
	}
	return &CategoryItemStack{CategoryBase: base, Stack: stack}, nil
}
