package builtin_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/guidectl/internal/builtin"
	"github.com/blackwell-systems/guidectl/internal/codec"
	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/host"
)

func newCodec(t *testing.T) (*codec.Codec, *host.Names) {
	t.Helper()
	names := host.Vanilla()
	regs := codec.NewRegistries(nil)
	builtin.Register(regs)
	return codec.New(regs, names), names
}

func ref(t *testing.T, names host.NameRegistry, kind host.Kind, name string) guide.ObjectRef {
	t.Helper()
	r, ok := guide.Ref(names, kind, name, 0)
	require.True(t, ok, "%s %q not registered", kind, name)
	return r
}

func fullBook(t *testing.T, names host.NameRegistry) *guide.Book {
	t.Helper()
	book := guide.NewBook("guide.title", "guide.welcome", "Field Guide")
	book.Color = guide.RGB(10, 20, 30)
	book.Author = "someone"

	potato := ref(t, names, host.KindItem, "minecraft:potato")
	furnace := ref(t, names, host.KindBlock, "minecraft:cobblestone")

	intro := builtin.NewEntry("entry.intro",
		builtin.NewPageText("Hello <world> & friends"),
		&builtin.PageImage{Image: guide.NewResourceLocation("guide", "textures/cover.png"), DrawAtTop: true},
	)
	crops := builtin.NewEntryItemStack("entry.crops", potato,
		&builtin.PageItemStack{Text: "crops.potato", Stack: potato},
		builtin.NewPageFurnaceRecipe(furnace),
		builtin.NewPageIRecipe(guide.NewResourceLocation("gi", "test1")),
	)
	empty := builtin.NewEntry("entry.empty")

	basics := builtin.NewCategory("category.basics", map[guide.ResourceLocation]guide.Entry{
		guide.NewResourceLocation("guide", "intro"): intro,
		guide.NewResourceLocation("guide", "empty"): empty,
	})
	farming := builtin.NewCategoryItemStack("category.farming", ref(t, names, host.KindItem, "minecraft:banner"),
		map[guide.ResourceLocation]guide.Entry{
			guide.NewResourceLocation("guide", "crops"): crops,
		})
	book.AddCategories([]guide.Category{basics, farming})
	return book
}

func TestBookRoundTrip(t *testing.T) {
	c, names := newCodec(t)
	book := fullBook(t, names)

	data, err := c.EncodeBook(book)
	require.NoError(t, err)

	decoded, err := c.DecodeBook(data)
	require.NoError(t, err)
	assert.True(t, guide.Equal(book, decoded))

	again, err := c.EncodeBook(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestEncodeBook_NoHTMLEscaping(t *testing.T) {
	c, names := newCodec(t)

	data, err := c.EncodeBook(fullBook(t, names))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hello <world> & friends")
}

func TestEncodePage_DiscriminatorFirst(t *testing.T) {
	c, _ := newCodec(t)

	raw, err := c.EncodePage(builtin.NewPageText("hi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"pageType":"PageText","text":"hi"}`, string(raw))
	assert.True(t, strings.HasPrefix(string(raw), `{"pageType":"PageText"`))
}

func TestEncodeCategory_Shape(t *testing.T) {
	c, names := newCodec(t)
	cat := builtin.NewCategoryItemStack("category.tools", ref(t, names, host.KindItem, "minecraft:potato"),
		map[guide.ResourceLocation]guide.Entry{
			guide.NewResourceLocation("guideapi", "entry"): builtin.NewEntry("entry.name", builtin.NewPageText("text")),
		})

	raw, err := c.EncodeCategory(cat)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"categoryType": "CategoryItemStack",
		"name": "category.tools",
		"entries": {
			"guideapi:entry": {
				"entryType": "Entry",
				"name": "entry.name",
				"pageList": [{"pageType": "PageText", "text": "text"}]
			}
		},
		"stack": {"isBlock": false, "name": "minecraft:potato", "metadata": 0}
	}`, string(raw))
}

func TestDecodePage_UnknownVariant(t *testing.T) {
	c, _ := newCodec(t)

	_, err := c.DecodePage(json.RawMessage(`{"pageType":"DoesNotExist","text":"x"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, guideerr.ErrUnknownVariant))

	var gerr *guideerr.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "DoesNotExist", gerr.Subject)
}

func TestDecodeBook_UnknownVariantHasPath(t *testing.T) {
	c, _ := newCodec(t)
	doc := `{
		"unlocBookTitle": "t", "unlocWelcomeMessage": "w", "unlocDisplayName": "d",
		"color": {"red": 1, "green": 2, "blue": 3, "alpha": 255},
		"categoryList": [{
			"categoryType": "Category", "name": "c",
			"entries": {"guide:e": {"entryType": "Entry", "name": "e",
				"pageList": [{"pageType": "PageText", "text": "ok"}, {"pageType": "DoesNotExist"}]}}
		}]
	}`

	_, err := c.DecodeBook([]byte(doc))
	require.Error(t, err)
	assert.Equal(t, guideerr.KindUnknownVariant, guideerr.KindOf(err))

	var gerr *guideerr.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, `categoryList[0].entries["guide:e"].pageList[1]`, gerr.Path)
}

func TestDecodeColor(t *testing.T) {
	c, _ := newCodec(t)

	col, err := c.DecodeColor(json.RawMessage(`{"red":10,"green":20,"blue":30,"alpha":255}`))
	require.NoError(t, err)
	assert.Equal(t, guide.Color{R: 10, G: 20, B: 30, A: 255}, col)
}

func TestDecodeObject_ItemVersusBlock(t *testing.T) {
	c, names := newCodec(t)

	r, err := c.DecodeObject(json.RawMessage(`{"isBlock":false,"name":"minecraft:potato","metadata":0}`))
	require.NoError(t, err)
	assert.False(t, r.IsBlock())
	assert.Equal(t, ref(t, names, host.KindItem, "minecraft:potato"), r)

	_, err = c.DecodeObject(json.RawMessage(`{"isBlock":true,"name":"minecraft:potato","metadata":0}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, guideerr.ErrUnresolvedReference))
}

func TestDecodeBook_MissingCategoryList(t *testing.T) {
	c, _ := newCodec(t)
	doc := `{
		"unlocBookTitle": "t", "unlocWelcomeMessage": "w", "unlocDisplayName": "d",
		"color": {"red": 1, "green": 2, "blue": 3, "alpha": 255}
	}`

	book, err := c.DecodeBook([]byte(doc))
	require.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, guideerr.ErrMalformedDocument))
	assert.Contains(t, err.Error(), "categoryList")
}

func TestDecodeEntry_MissingStack(t *testing.T) {
	c, _ := newCodec(t)

	_, err := c.DecodeEntry(json.RawMessage(`{"entryType":"EntryItemStack","name":"e","pageList":[]}`))
	require.Error(t, err)
	assert.Equal(t, guideerr.KindMalformedDocument, guideerr.KindOf(err))

	var gerr *guideerr.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "stack", gerr.Path)
}

func TestDecodeEntry_EmptyPageList(t *testing.T) {
	c, _ := newCodec(t)

	e, err := c.DecodeEntry(json.RawMessage(`{"entryType":"Entry","name":"e","pageList":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "e", e.Name())
	assert.Empty(t, e.Pages())
}

func TestDecodePage_InvalidImageLocation(t *testing.T) {
	c, _ := newCodec(t)

	_, err := c.DecodePage(json.RawMessage(`{"pageType":"PageImage","image":"a:b:c"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, guideerr.ErrMalformedDocument))
}

func TestRegister_DuplicateKeepsBuiltin(t *testing.T) {
	c, _ := newCodec(t)

	replacement := codec.Define[guide.Page](
		func(_ *codec.Codec, p *builtin.PageImage) (any, error) { return struct{}{}, nil },
		func(_ *codec.Codec, _ json.RawMessage) (*builtin.PageImage, error) { return &builtin.PageImage{}, nil },
	)
	assert.False(t, c.Registries().RegisterPage(builtin.TagPageText, replacement))

	p, err := c.DecodePage(json.RawMessage(`{"pageType":"PageText","text":"still text"}`))
	require.NoError(t, err)
	text, ok := p.(*builtin.PageText)
	require.True(t, ok)
	assert.Equal(t, "still text", text.Text)
}

func TestRegister_AllTags(t *testing.T) {
	c, _ := newCodec(t)
	regs := c.Registries()

	assert.Equal(t, []string{"PageFurnaceRecipe", "PageIRecipe", "PageImage", "PageItemStack", "PageText"}, regs.Pages.Tags())
	assert.Equal(t, []string{"Entry", "EntryItemStack"}, regs.Entries.Tags())
	assert.Equal(t, []string{"Category", "CategoryItemStack"}, regs.Categories.Tags())
}

func TestBookRoundTrip_EmptyCollections(t *testing.T) {
	c, _ := newCodec(t)

	book := guide.NewBook("t", "w", "d")
	book.Categories = []guide.Category{}
	data, err := c.EncodeBook(book)
	require.NoError(t, err)
	decoded, err := c.DecodeBook(data)
	require.NoError(t, err)
	assert.True(t, guide.Equal(book, decoded), "empty category list")

	book.AddCategory(builtin.NewCategory("c", map[guide.ResourceLocation]guide.Entry{
		guide.NewResourceLocation("guide", "e"): builtin.NewEntry("e", []guide.Page{}...),
	}))
	data, err = c.EncodeBook(book)
	require.NoError(t, err)
	decoded, err = c.DecodeBook(data)
	require.NoError(t, err)
	assert.True(t, guide.Equal(book, decoded), "empty page list")
}

func TestEncodeEntries_NormalizesKeys(t *testing.T) {
	c, _ := newCodec(t)

	book := guide.NewBook("t", "w", "d")
	book.AddCategory(builtin.NewCategory("c", map[guide.ResourceLocation]guide.Entry{
		{Namespace: "Guide", Path: "Intro"}: builtin.NewEntry("e", builtin.NewPageText("x")),
	}))

	data, err := c.EncodeBook(book)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"guide:intro"`)

	decoded, err := c.DecodeBook(data)
	require.NoError(t, err)
	assert.Contains(t, decoded.Categories[0].Entries(), guide.NewResourceLocation("guide", "intro"))
}

func TestEncodeEntries_CollidingKeys(t *testing.T) {
	c, _ := newCodec(t)

	book := guide.NewBook("t", "w", "d")
	book.AddCategory(builtin.NewCategory("c", map[guide.ResourceLocation]guide.Entry{
		{Namespace: "Guide", Path: "Intro"}: builtin.NewEntry("a"),
		{Namespace: "guide", Path: "intro"}: builtin.NewEntry("b"),
	}))

	_, err := c.EncodeBook(book)
	require.Error(t, err)
	var gerr *guideerr.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, guideerr.KindMalformedDocument, gerr.Kind)
	assert.Contains(t, gerr.Message, "duplicate")
	assert.True(t, strings.HasPrefix(gerr.Path, "categoryList[0].entries["), gerr.Path)
}

func TestEncodeEntries_InvalidKey(t *testing.T) {
	c, _ := newCodec(t)

	cat := builtin.NewCategory("c", map[guide.ResourceLocation]guide.Entry{
		{Namespace: "guide", Path: "  "}: builtin.NewEntry("a"),
	})
	_, err := c.EncodeCategory(cat)
	assert.True(t, errors.Is(err, guideerr.ErrMalformedDocument), "error: %v", err)
}

func TestEncodePage_NormalizesLocation(t *testing.T) {
	c, _ := newCodec(t)

	raw, err := c.EncodePage(&builtin.PageImage{Image: guide.ResourceLocation{Namespace: "Guide", Path: "Textures/Cover.png"}})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"image":"guide:textures/cover.png"`)

	_, err = c.EncodePage(&builtin.PageImage{Image: guide.ResourceLocation{Namespace: "guide", Path: "a:b"}})
	assert.True(t, errors.Is(err, guideerr.ErrMalformedDocument), "error: %v", err)
}

func TestEncodeBook_NilMembers(t *testing.T) {
	c, _ := newCodec(t)

	book := guide.NewBook("t", "w", "d")
	book.Categories = []guide.Category{nil}
	_, err := c.EncodeBook(book)
	var gerr *guideerr.Error
	require.True(t, errors.As(err, &gerr), "error: %v", err)
	assert.Equal(t, guideerr.KindMalformedDocument, gerr.Kind)
	assert.Equal(t, "categoryList[0]", gerr.Path)

	var typedNil *builtin.Category
	book.Categories = []guide.Category{typedNil}
	_, err = c.EncodeBook(book)
	assert.True(t, errors.Is(err, guideerr.ErrMalformedDocument), "error: %v", err)

	book.Categories = []guide.Category{builtin.NewCategory("c", map[guide.ResourceLocation]guide.Entry{
		guide.NewResourceLocation("guide", "e"): builtin.NewEntry("e", guide.Page(nil)),
	})}
	_, err = c.EncodeBook(book)
	require.True(t, errors.As(err, &gerr), "error: %v", err)
	assert.Equal(t, `categoryList[0].entries["guide:e"].pageList[0]`, gerr.Path)

	book.Categories = []guide.Category{builtin.NewCategory("c", map[guide.ResourceLocation]guide.Entry{
		guide.NewResourceLocation("guide", "e"): nil,
	})}
	_, err = c.EncodeBook(book)
	require.True(t, errors.As(err, &gerr), "error: %v", err)
	assert.Equal(t, `categoryList[0].entries["guide:e"]`, gerr.Path)
}
