package codec

import (
	"encoding/json"

	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/host"
)

// ObjectJSON is the wire form of an object reference.
type ObjectJSON struct {
	IsBlock  *bool   `json:"isBlock" validate:"required"`
	Name     *string `json:"name" validate:"required"`
	Metadata *int    `json:"metadata" validate:"required,min=0"`
}

// ColorJSON is the wire form of a color.
type ColorJSON struct {
	Red   *int `json:"red" validate:"required,min=0,max=255"`
	Green *int `json:"green" validate:"required,min=0,max=255"`
	Blue  *int `json:"blue" validate:"required,min=0,max=255"`
	Alpha *int `json:"alpha" validate:"required,min=0,max=255"`
}

// EncodeObject writes ref as {isBlock, name, metadata}. The name comes from
// the registry matching the handle's kind.
func (c *Codec) EncodeObject(ref guide.ObjectRef) (ObjectJSON, error) {
	kind := ref.Object.Kind()
	name, ok := c.names.NameOf(ref.Object)
	if !ok {
		return ObjectJSON{}, &guideerr.Error{
			Kind:    guideerr.KindUnresolvedReference,
			Message: kind.String() + " handle has no registered name",
		}
	}
	isBlock := kind == host.KindBlock
	meta := ref.Metadata
	return ObjectJSON{IsBlock: &isBlock, Name: &name, Metadata: &meta}, nil
}

// DecodeObject reads an object reference. isBlock picks the registry the
// name is resolved in; a name missing from that registry is an
// UnresolvedReference error.
func (c *Codec) DecodeObject(raw json.RawMessage) (guide.ObjectRef, error) {
	var wire ObjectJSON
	if err := c.bind(raw, &wire, "object reference"); err != nil {
		return guide.ObjectRef{}, err
	}

	kind := host.KindItem
	if *wire.IsBlock {
		kind = host.KindBlock
	}
	h, ok := c.names.Resolve(kind, *wire.Name)
	if !ok {
		return guide.ObjectRef{}, guideerr.UnresolvedReference(kind.String(), *wire.Name)
	}
	return guide.ObjectRef{Object: h, Metadata: *wire.Metadata}, nil
}

// EncodeColor writes col as {red, green, blue, alpha}.
func (c *Codec) EncodeColor(col guide.Color) ColorJSON {
	r, g, b, a := int(col.R), int(col.G), int(col.B), int(col.A)
	return ColorJSON{Red: &r, Green: &g, Blue: &b, Alpha: &a}
}

// DecodeColor reads a color. All four channels are required and must fit in
// a byte; anything else is a MalformedDocument error rather than a default.
func (c *Codec) DecodeColor(raw json.RawMessage) (guide.Color, error) {
	var wire ColorJSON
	if err := c.bind(raw, &wire, "color"); err != nil {
		return guide.Color{}, err
	}
	return guide.Color{
		R: uint8(*wire.Red),
		G: uint8(*wire.Green),
		B: uint8(*wire.Blue),
		A: uint8(*wire.Alpha),
	}, nil
}
