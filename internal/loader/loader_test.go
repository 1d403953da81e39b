package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/guidectl/internal/builtin"
	"github.com/blackwell-systems/guidectl/internal/codec"
	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/host"
	"github.com/blackwell-systems/guidectl/internal/loader"
	"github.com/blackwell-systems/guidectl/internal/sample"
	"github.com/blackwell-systems/guidectl/internal/util"
)

func newLoader(t *testing.T) *loader.Loader {
	t.Helper()
	regs := codec.NewRegistries(nil)
	builtin.Register(regs)
	return loader.New(codec.New(regs, host.Vanilla()), nil)
}

func TestLoadFile_Missing(t *testing.T) {
	l := newLoader(t)
	path := filepath.Join(t.TempDir(), "nope.json")

	book, err := l.LoadFile(path)
	assert.Nil(t, book)
	require.Error(t, err)
	assert.True(t, errors.Is(err, guideerr.ErrFileNotFound))

	var gerr *guideerr.Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, path, gerr.Subject)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	l := newLoader(t)
	book, err := sample.Build(host.Vanilla())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "books", "test_book.json")
	require.NoError(t, l.Save(path, book))

	loaded, err := l.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, guide.Equal(book, loaded))
}

func TestLoadFileDigest_MatchesDecodedBytes(t *testing.T) {
	l := newLoader(t)
	book, err := sample.Build(host.Vanilla())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "book.json")
	require.NoError(t, l.Save(path, book))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, digest, err := l.LoadFileDigest(path)
	require.NoError(t, err)
	assert.True(t, guide.Equal(book, loaded))
	assert.Equal(t, util.SHA256Bytes(data), digest)

	_, digest, err = l.LoadFileDigest(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, guideerr.ErrFileNotFound))
	assert.Empty(t, digest)
}

func TestMarshal_Format(t *testing.T) {
	l := newLoader(t)
	book := guide.NewBook("t", "w", "d")

	data, err := l.Marshal(book)
	require.NoError(t, err)

	want := `{
  "unlocBookTitle": "t",
  "unlocWelcomeMessage": "w",
  "unlocDisplayName": "d",
  "color": {
    "red": 171,
    "green": 70,
    "blue": 30,
    "alpha": 255
  },
  "categoryList": []
}
`
	assert.Equal(t, want, string(data))
}

func TestMarshal_KeepsNewlinesAndMarkup(t *testing.T) {
	l := newLoader(t)
	book, err := sample.Build(host.Vanilla())
	require.NoError(t, err)

	data, err := l.Marshal(book)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"text": "Hello, this is\nsome text"`)
	assert.True(t, strings.HasSuffix(string(data), "}\n"))
}

func TestParse_StripsBOM(t *testing.T) {
	l := newLoader(t)
	doc := "\xEF\xBB\xBF" + `{"unlocBookTitle":"t","unlocWelcomeMessage":"w","unlocDisplayName":"d",` +
		`"color":{"red":10,"green":20,"blue":30,"alpha":255},"categoryList":[]}`

	book, err := l.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, guide.Color{R: 10, G: 20, B: 30, A: 255}, book.Color)
}

func TestLoadFile_DecodeErrorUnchanged(t *testing.T) {
	l := newLoader(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	doc := `{"unlocBookTitle":"t","unlocWelcomeMessage":"w","unlocDisplayName":"d",` +
		`"color":{"red":1,"green":2,"blue":3,"alpha":255},` +
		`"categoryList":[{"categoryType":"DoesNotExist","name":"c","entries":{}}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := l.LoadFile(path)
	require.Error(t, err)
	assert.Equal(t, guideerr.KindUnknownVariant, guideerr.KindOf(err))
}

func TestFormat_Canonical(t *testing.T) {
	l := newLoader(t)
	messy := `{"categoryList":[],"color":{"alpha":255,"blue":3,"green":2,"red":1},` +
		`"unlocDisplayName":"d","unlocWelcomeMessage":"w","unlocBookTitle":"t"}`

	out, err := l.Format([]byte(messy))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "{\n  \"unlocBookTitle\": \"t\""))

	again, err := l.Format(out)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}
