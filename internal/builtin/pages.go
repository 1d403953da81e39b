package builtin

import (
	"encoding/json"

	"github.com/blackwell-systems/guidectl/internal/codec"
	"github.com/blackwell-systems/guidectl/internal/guide"
)

// Page discriminators.
const (
	TagPageText          = "PageText"
	TagPageImage         = "PageImage"
	TagPageItemStack     = "PageItemStack"
	TagPageFurnaceRecipe = "PageFurnaceRecipe"
	TagPageIRecipe       = "PageIRecipe"
)

// PageText is a page of free text. The text may be a localization key.
type PageText struct {
	Text string
}

// NewPageText creates a text page.
func NewPageText(text string) *PageText {
	return &PageText{Text: text}
}

func (*PageText) Variant() string   { return TagPageText }
func (p *PageText) Summary() string { return p.Text }

type pageTextJSON struct {
	Text *string `json:"text" validate:"required"`
}

func encodePageText(_ *codec.Codec, p *PageText) (any, error) {
	return pageTextJSON{Text: &p.Text}, nil
}

func decodePageText(c *codec.Codec, raw json.RawMessage) (*PageText, error) {
	var wire pageTextJSON
	if err := c.Bind(raw, &wire); err != nil {
		return nil, err
	}
	return &PageText{Text: *wire.Text}, nil
}

// PageImage shows a texture, optionally above the page text area.
type PageImage struct {
	Image     guide.ResourceLocation
	DrawAtTop bool
}

func (*PageImage) Variant() string   { return TagPageImage }
func (p *PageImage) Summary() string { return "image " + p.Image.String() }

type pageImageJSON struct {
	Image     *guide.ResourceLocation `json:"image" validate:"required"`
	DrawAtTop bool                    `json:"drawAtTop,omitempty"`
}

func encodePageImage(_ *codec.Codec, p *PageImage) (any, error) {
	return pageImageJSON{Image: &p.Image, DrawAtTop: p.DrawAtTop}, nil
}

func decodePageImage(c *codec.Codec, raw json.RawMessage) (*PageImage, error) {
	var wire pageImageJSON
	if err := c.Bind(raw, &wire); err != nil {
		return nil, err
	}
	return &PageImage{Image: *wire.Image, DrawAtTop: wire.DrawAtTop}, nil
}

// PageItemStack shows an object next to a block of text.
type PageItemStack struct {
	Text  string
	Stack guide.ObjectRef
}

func (*PageItemStack) Variant() string   { return TagPageItemStack }
func (p *PageItemStack) Summary() string { return p.Text }

type pageItemStackJSON struct {
	Text  *string         `json:"text" validate:"required"`
	Stack json.RawMessage `json:"stack" validate:"required"`
}

func encodePageItemStack(c *codec.Codec, p *PageItemStack) (any, error) {
	stack, err := encodeObjectField(c, p.Stack, "stack")
	if err != nil {
		return nil, err
	}
	return pageItemStackJSON{Text: &p.Text, Stack: stack}, nil
}

func decodePageItemStack(c *codec.Codec, raw json.RawMessage) (*PageItemStack, error) {
	var wire pageItemStackJSON
	if err := c.Bind(raw, &wire); err != nil {
		return nil, err
	}
	stack, err := decodeObjectField(c, wire.Stack, "stack")
	if err != nil {
		return nil, err
	}
	return &PageItemStack{Text: *wire.Text, Stack: stack}, nil
}

// PageFurnaceRecipe shows the smelting recipe that takes Input.
type PageFurnaceRecipe struct {
	Input guide.ObjectRef
}

// NewPageFurnaceRecipe creates a smelting page for input.
func NewPageFurnaceRecipe(input guide.ObjectRef) *PageFurnaceRecipe {
	return &PageFurnaceRecipe{Input: input}
}

func (*PageFurnaceRecipe) Variant() string { return TagPageFurnaceRecipe }
func (*PageFurnaceRecipe) Summary() string { return "smelting recipe" }

type pageFurnaceJSON struct {
	Input json.RawMessage `json:"input" validate:"required"`
}

func encodePageFurnace(c *codec.Codec, p *PageFurnaceRecipe) (any, error) {
	input, err := encodeObjectField(c, p.Input, "input")
	if err != nil {
		return nil, err
	}
	return pageFurnaceJSON{Input: input}, nil
}

func decodePageFurnace(c *codec.Codec, raw json.RawMessage) (*PageFurnaceRecipe, error) {
	var wire pageFurnaceJSON
	if err := c.Bind(raw, &wire); err != nil {
		return nil, err
	}
	input, err := decodeObjectField(c, wire.Input, "input")
	if err != nil {
		return nil, err
	}
	return &PageFurnaceRecipe{Input: input}, nil
}

// PageIRecipe shows a crafting recipe registered with the host under
// Recipe. Matching and display of the recipe belong to the host.
type PageIRecipe struct {
	Recipe guide.ResourceLocation
}

// NewPageIRecipe creates a page for the recipe registered as recipe.
func NewPageIRecipe(recipe guide.ResourceLocation) *PageIRecipe {
	return &PageIRecipe{Recipe: recipe}
}

func (*PageIRecipe) Variant() string   { return TagPageIRecipe }
func (p *PageIRecipe) Summary() string { return "recipe " + p.Recipe.String() }

type pageIRecipeJSON struct {
	Recipe *guide.ResourceLocation `json:"recipe" validate:"required"`
}

func encodePageIRecipe(_ *codec.Codec, p *PageIRecipe) (any, error) {
	return pageIRecipeJSON{Recipe: &p.Recipe}, nil
}

func decodePageIRecipe(c *codec.Codec, raw json.RawMessage) (*PageIRecipe, error) {
	var wire pageIRecipeJSON
	if err := c.Bind(raw, &wire); err != nil {
		return nil, err
	}
	return &PageIRecipe{Recipe: *wire.Recipe}, nil
}
