package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/guidectl/internal/builtin"
	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/host"
	"github.com/blackwell-systems/guidectl/internal/sample"
	"github.com/blackwell-systems/guidectl/internal/search"
)

var lang = host.Lang{
	"test.entry.name":    "Potato Facts",
	"test.category.name": "Farming",
}

func newIndex(t *testing.T) *search.Index {
	t.Helper()
	idx, err := search.New(lang, nil)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func sampleBook(t *testing.T) *guide.Book {
	t.Helper()
	b, err := sample.Build(host.Vanilla())
	require.NoError(t, err)
	return b
}

func TestFromBook(t *testing.T) {
	docs := search.FromBook("books/test.json", sampleBook(t), lang)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "books/test.json#guideapi:entry", doc.ID)
	assert.Equal(t, "Potato Facts", doc.Name)
	assert.Equal(t, "Farming", doc.Category)
	assert.Equal(t, "guideapi:entry", doc.Entry)
	assert.Contains(t, doc.Text, "some text")
	assert.Equal(t, []string{
		builtin.TagEntryItemStack,
		builtin.TagPageText,
		builtin.TagPageFurnaceRecipe,
		builtin.TagPageIRecipe,
	}, doc.Variants)
}

func TestSearch(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBook("a.json", sampleBook(t)))

	res, err := idx.Search(context.Background(), search.Params{Query: "potato"})
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "a.json", res.Hits[0].Book)
	assert.Equal(t, "guideapi:entry", res.Hits[0].Entry)
	assert.Equal(t, "Potato Facts", res.Hits[0].Name)

	res, err = idx.Search(context.Background(), search.Params{Query: "hello"})
	require.NoError(t, err)
	assert.Len(t, res.Hits, 1)

	res, err = idx.Search(context.Background(), search.Params{Query: "zeppelin"})
	require.NoError(t, err)
	assert.Empty(t, res.Hits)
}

func TestSearch_Filters(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBook("a.json", sampleBook(t)))

	other := guide.NewBook("t", "w", "d")
	other.AddCategory(builtin.NewCategory("c", map[guide.ResourceLocation]guide.Entry{
		guide.NewResourceLocation("x", "y"): builtin.NewEntry("potato trivia", builtin.NewPageText("potatoes")),
	}))
	require.NoError(t, idx.IndexBook("b.json", other))

	res, err := idx.Search(context.Background(), search.Params{Query: "potato", Book: "b.json"})
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "x:y", res.Hits[0].Entry)

	res, err = idx.Search(context.Background(), search.Params{Variant: builtin.TagPageFurnaceRecipe})
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "a.json", res.Hits[0].Book)

	res, err = idx.Search(context.Background(), search.Params{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.Total)
}

func TestIndexBook_Replaces(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBook("a.json", sampleBook(t)))
	require.NoError(t, idx.IndexBook("a.json", guide.NewBook("t", "w", "d")))

	n, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
	assert.Equal(t, []string{"a.json"}, idx.Books())
}

func TestDeleteBook(t *testing.T) {
	idx := newIndex(t)
	require.NoError(t, idx.IndexBook("a.json", sampleBook(t)))
	require.NoError(t, idx.DeleteBook("a.json"))
	require.NoError(t, idx.DeleteBook("missing.json"))

	n, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
	assert.Empty(t, idx.Books())
}
