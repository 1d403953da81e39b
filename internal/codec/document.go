package codec

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"

	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/registry"
)

// bookJSON is the root object. Field order is the serialization order.
type bookJSON struct {
	Title          *string         `json:"unlocBookTitle" validate:"required"`
	Welcome        *string         `json:"unlocWelcomeMessage" validate:"required"`
	DisplayName    *string         `json:"unlocDisplayName" validate:"required"`
	Color          json.RawMessage `json:"color" validate:"required"`
	Categories     json.RawMessage `json:"categoryList" validate:"required"`
	PageTexture    string          `json:"pageTexture,omitempty"`
	OutlineTexture string          `json:"outlineTexture,omitempty"`
	Author         string          `json:"author,omitempty"`
}

// EncodeBook serializes b to compact JSON.
func (c *Codec) EncodeBook(b *guide.Book) (json.RawMessage, error) {
	color, err := marshal(c.EncodeColor(b.Color))
	if err != nil {
		return nil, err
	}

	cats := make([]json.RawMessage, 0, len(b.Categories))
	for i, cat := range b.Categories {
		raw, err := c.EncodeCategory(cat)
		if err != nil {
			return nil, guideerr.At(err, "categoryList"+indexSegment(i))
		}
		cats = append(cats, raw)
	}
	catList, err := marshal(cats)
	if err != nil {
		return nil, err
	}

	return marshal(bookJSON{
		Title:          &b.Title,
		Welcome:        &b.WelcomeMessage,
		DisplayName:    &b.DisplayName,
		Color:          color,
		Categories:     catList,
		PageTexture:    b.PageTexture,
		OutlineTexture: b.OutlineTexture,
		Author:         b.Author,
	})
}

// DecodeBook parses a book document. Every root field is required; a
// missing one, including a null categoryList, is a MalformedDocument error.
// Nothing is returned unless the whole document decodes.
func (c *Codec) DecodeBook(data []byte) (*guide.Book, error) {
	var wire bookJSON
	if err := c.bind(data, &wire, "document"); err != nil {
		return nil, err
	}
	if !present(wire.Color) {
		return nil, guideerr.Malformed("malformed document: missing required field %q", "color")
	}
	if !present(wire.Categories) {
		return nil, guideerr.Malformed("malformed document: missing required field %q", "categoryList")
	}

	color, err := c.DecodeColor(wire.Color)
	if err != nil {
		return nil, guideerr.At(err, "color")
	}

	var rawCats []json.RawMessage
	if err := json.Unmarshal(wire.Categories, &rawCats); err != nil {
		return nil, guideerr.At(guideerr.Malformed("expected an array of categories"), "categoryList")
	}

	book := &guide.Book{
		Title:          *wire.Title,
		WelcomeMessage: *wire.Welcome,
		DisplayName:    *wire.DisplayName,
		Color:          color,
		PageTexture:    wire.PageTexture,
		OutlineTexture: wire.OutlineTexture,
		Author:         wire.Author,
	}
	for i, raw := range rawCats {
		cat, err := c.DecodeCategory(raw)
		if err != nil {
			return nil, guideerr.At(err, "categoryList"+indexSegment(i))
		}
		book.Categories = append(book.Categories, cat)
	}
	return book, nil
}

// EncodeCategory writes cat tagged with categoryType.
func (c *Codec) EncodeCategory(cat guide.Category) (json.RawMessage, error) {
	if isNil(cat) {
		return nil, guideerr.Malformed("nil category")
	}
	return encodeTagged(c, c.regs.Categories, CategoryTypeKey, cat.Variant(), cat)
}

// DecodeCategory reads a category tagged with categoryType.
func (c *Codec) DecodeCategory(raw json.RawMessage) (guide.Category, error) {
	return decodeTagged(c, c.regs.Categories, CategoryTypeKey, raw)
}

// EncodeEntry writes e tagged with entryType.
func (c *Codec) EncodeEntry(e guide.Entry) (json.RawMessage, error) {
	if isNil(e) {
		return nil, guideerr.Malformed("nil entry")
	}
	return encodeTagged(c, c.regs.Entries, EntryTypeKey, e.Variant(), e)
}

// DecodeEntry reads an entry tagged with entryType.
func (c *Codec) DecodeEntry(raw json.RawMessage) (guide.Entry, error) {
	return decodeTagged(c, c.regs.Entries, EntryTypeKey, raw)
}

// EncodePage writes p tagged with pageType.
func (c *Codec) EncodePage(p guide.Page) (json.RawMessage, error) {
	if isNil(p) {
		return nil, guideerr.Malformed("nil page")
	}
	return encodeTagged(c, c.regs.Pages, PageTypeKey, p.Variant(), p)
}

// DecodePage reads a page tagged with pageType.
func (c *Codec) DecodePage(raw json.RawMessage) (guide.Page, error) {
	return decodeTagged(c, c.regs.Pages, PageTypeKey, raw)
}

// EncodePages writes pages as an array, preserving order.
func (c *Codec) EncodePages(pages []guide.Page) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(pages))
	for i, p := range pages {
		raw, err := c.EncodePage(p)
		if err != nil {
			return nil, guideerr.At(err, indexSegment(i))
		}
		out = append(out, raw)
	}
	return out, nil
}

// DecodePages reads an array of pages. An empty array yields a nil slice.
func (c *Codec) DecodePages(raw json.RawMessage) ([]guide.Page, error) {
	var items []json.RawMessage
	if !present(raw) || json.Unmarshal(raw, &items) != nil {
		return nil, guideerr.Malformed("expected an array of pages")
	}
	var pages []guide.Page
	for i, item := range items {
		p, err := c.DecodePage(item)
		if err != nil {
			return nil, guideerr.At(err, indexSegment(i))
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// EncodeEntries writes an entry map as a JSON object keyed by normalized
// identifier. Identifiers that normalize to the same key, or that have no
// readable text form, are rejected so the output always decodes.
func (c *Codec) EncodeEntries(entries map[guide.ResourceLocation]guide.Entry) (map[string]json.RawMessage, error) {
	ids := make([]guide.ResourceLocation, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Namespace != ids[j].Namespace {
			return ids[i].Namespace < ids[j].Namespace
		}
		return ids[i].Path < ids[j].Path
	})

	out := make(map[string]json.RawMessage, len(entries))
	for _, id := range ids {
		norm, err := id.Normalize()
		if err != nil {
			return nil, guideerr.At(guideerr.Malformed("invalid entry identifier %q", id.String()), keySegment(id.String()))
		}
		key := norm.String()
		if _, dup := out[key]; dup {
			return nil, guideerr.At(guideerr.Malformed("duplicate entry identifier %q", key), keySegment(id.String()))
		}
		raw, err := c.EncodeEntry(entries[id])
		if err != nil {
			return nil, guideerr.At(err, keySegment(key))
		}
		out[key] = raw
	}
	return out, nil
}

// DecodeEntries reads a JSON object keyed by identifier. Keys that
// normalize to the same identifier are rejected.
func (c *Codec) DecodeEntries(raw json.RawMessage) (map[guide.ResourceLocation]guide.Entry, error) {
	var items map[string]json.RawMessage
	if !present(raw) || json.Unmarshal(raw, &items) != nil {
		return nil, guideerr.Malformed("expected an object of entries keyed by identifier")
	}

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[guide.ResourceLocation]guide.Entry, len(items))
	for _, k := range keys {
		id, err := guide.ParseResourceLocation(k)
		if err != nil {
			return nil, guideerr.At(guideerr.Malformed("invalid entry identifier %q", k), keySegment(k))
		}
		if _, dup := out[id]; dup {
			return nil, guideerr.At(guideerr.Malformed("duplicate entry identifier %q", id.String()), keySegment(k))
		}
		e, err := c.DecodeEntry(items[k])
		if err != nil {
			return nil, guideerr.At(err, keySegment(k))
		}
		out[id] = e
	}
	return out, nil
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

type variantNamer interface {
	Variant() string
}

func encodeTagged[T any](c *Codec, reg *registry.Registry[Variant[T]], key, tag string, v T) (json.RawMessage, error) {
	vc, err := reg.Lookup(tag)
	if err != nil {
		return nil, err
	}
	payload, err := vc.Encode(c, v)
	if err != nil {
		return nil, err
	}
	body, err := marshal(payload)
	if err != nil {
		return nil, guideerr.Malformed("%s variant %q: %v", reg.Family(), tag, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, guideerr.Malformed("%s variant %q must encode to a JSON object", reg.Family(), tag)
	}
	if _, clash := fields[key]; clash {
		return nil, guideerr.Malformed("%s variant %q must not write its own %q field", reg.Family(), tag, key)
	}

	keyJSON, _ := marshal(key)
	tagJSON, _ := marshal(tag)

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(keyJSON)
	buf.WriteByte(':')
	buf.Write(tagJSON)
	trimmed := bytes.TrimSpace(body)
	if inner := bytes.TrimSpace(trimmed[1 : len(trimmed)-1]); len(inner) > 0 {
		buf.WriteByte(',')
		buf.Write(inner)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeTagged[T any](c *Codec, reg *registry.Registry[Variant[T]], key string, raw json.RawMessage) (T, error) {
	var zero T

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return zero, guideerr.Malformed("expected a %s object", reg.Family())
	}
	tagRaw, ok := fields[key]
	if !ok || !present(tagRaw) {
		return zero, guideerr.Malformed("missing required field %q", key)
	}
	var tag string
	if err := json.Unmarshal(tagRaw, &tag); err != nil {
		return zero, guideerr.Malformed("field %q must be a string", key)
	}

	vc, err := reg.Lookup(tag)
	if err != nil {
		return zero, err
	}
	v, err := vc.Decode(c, raw)
	if err != nil {
		return zero, err
	}
	if named, ok := any(v).(variantNamer); !ok || named.Variant() != tag {
		return zero, guideerr.Malformed("%s codec registered as %q decoded a different variant", reg.Family(), tag)
	}
	return v, nil
}
