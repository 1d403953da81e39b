// Package codec reads and writes guidebook documents.
//
// Categories, entries and pages are written as JSON objects tagged with a
// discriminator field (categoryType, entryType, pageType). The tag selects a
// Variant codec from the family's registry; the codec owns every other field
// of the object. Object references and colors, which have no JSON form of
// their own, go through the fixed value codecs in value.go.
package codec

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/host"
	"github.com/blackwell-systems/guidectl/internal/registry"
)

// Discriminator field names.
const (
	PageTypeKey     = "pageType"
	EntryTypeKey    = "entryType"
	CategoryTypeKey = "categoryType"
)

// Variant reads and writes one concrete variant of family T.
//
// Encode returns a value that marshals to a JSON object holding the
// variant's own fields; the discriminator is added by the codec and must not
// be part of it. Decode receives the whole tagged object.
type Variant[T any] interface {
	Encode(c *Codec, v T) (any, error)
	Decode(c *Codec, raw json.RawMessage) (T, error)
}

// Define adapts a pair of functions over the concrete type V to a Variant of
// family T. V must implement T.
//
//	codec.Define[guide.Page](encodeText, decodeText)
func Define[T any, V any](
	encode func(c *Codec, v V) (any, error),
	decode func(c *Codec, raw json.RawMessage) (V, error),
) Variant[T] {
	return funcVariant[T, V]{encode: encode, decode: decode}
}

type funcVariant[T any, V any] struct {
	encode func(*Codec, V) (any, error)
	decode func(*Codec, json.RawMessage) (V, error)
}

func (f funcVariant[T, V]) Encode(c *Codec, v T) (any, error) {
	concrete, ok := any(v).(V)
	if !ok {
		return nil, guideerr.Malformed("codec for %T cannot encode %T", *new(V), v)
	}
	return f.encode(c, concrete)
}

func (f funcVariant[T, V]) Decode(c *Codec, raw json.RawMessage) (T, error) {
	var zero T
	v, err := f.decode(c, raw)
	if err != nil {
		return zero, err
	}
	out, ok := any(v).(T)
	if !ok {
		return zero, guideerr.Malformed("decoded %T does not implement %T", v, zero)
	}
	return out, nil
}

// Registries holds the three variant families.
type Registries struct {
	Pages      *registry.Registry[Variant[guide.Page]]
	Entries    *registry.Registry[Variant[guide.Entry]]
	Categories *registry.Registry[Variant[guide.Category]]
}

// NewRegistries creates empty registries that log through log.
func NewRegistries(log *slog.Logger) *Registries {
	return &Registries{
		Pages:      registry.New[Variant[guide.Page]]("page", log),
		Entries:    registry.New[Variant[guide.Entry]]("entry", log),
		Categories: registry.New[Variant[guide.Category]]("category", log),
	}
}

// RegisterPage registers a page variant under tag.
func (r *Registries) RegisterPage(tag string, v Variant[guide.Page]) bool {
	return r.Pages.Register(tag, v)
}

// RegisterEntry registers an entry variant under tag.
func (r *Registries) RegisterEntry(tag string, v Variant[guide.Entry]) bool {
	return r.Entries.Register(tag, v)
}

// RegisterCategory registers a category variant under tag.
func (r *Registries) RegisterCategory(tag string, v Variant[guide.Category]) bool {
	return r.Categories.Register(tag, v)
}

// Codec serializes books. It only reads the registries and the name
// registry, so one Codec may be shared by concurrent loads once
// registration is over.
type Codec struct {
	regs     *Registries
	names    host.NameRegistry
	validate *validator.Validate
}

// New creates a codec over regs resolving object references through names.
func New(regs *Registries, names host.NameRegistry) *Codec {
	return &Codec{
		regs:     regs,
		names:    names,
		validate: newValidator(),
	}
}

// Registries returns the registries the codec dispatches through.
func (c *Codec) Registries() *Registries {
	return c.regs
}

// Names returns the host name registry.
func (c *Codec) Names() host.NameRegistry {
	return c.names
}

func indexSegment(i int) string {
	return fmt.Sprintf("[%d]", i)
}

func keySegment(k string) string {
	return fmt.Sprintf("[%q]", k)
}
