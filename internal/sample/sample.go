// Package sample builds the demonstration book in code.
package sample

import (
	"github.com/blackwell-systems/guidectl/internal/builtin"
	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/host"
)

// Identifiers used by the sample book.
var (
	EntryID = guide.NewResourceLocation("guideapi", "entry")
	BookID  = guide.NewResourceLocation("guideapi", "test_book")
)

// Blue is the sample book's cover color.
var Blue = guide.RGB(0, 0, 255)

// Build assembles the sample book: one item-stack category holding one
// item-stack entry with a text page, a smelting page and a crafting page.
// The referenced objects must already be registered in names.
func Build(names host.NameRegistry) (*guide.Book, error) {
	potato, err := lookup(names, host.KindItem, "minecraft:potato")
	if err != nil {
		return nil, err
	}
	banner, err := lookup(names, host.KindItem, "minecraft:banner")
	if err != nil {
		return nil, err
	}
	cobblestone, err := lookup(names, host.KindBlock, "minecraft:cobblestone")
	if err != nil {
		return nil, err
	}

	book := guide.NewBook("Title message", "Is this still a thing?", "Display Name")
	book.Author = "TehNut"
	book.Color = Blue

	entry := builtin.NewEntryItemStack("test.entry.name", potato,
		builtin.NewPageText("Hello, this is\nsome text"),
		builtin.NewPageFurnaceRecipe(cobblestone),
		builtin.NewPageIRecipe(guide.NewResourceLocation("gi", "test1")),
	)
	category := builtin.NewCategoryItemStack("test.category.name", banner,
		map[guide.ResourceLocation]guide.Entry{EntryID: entry})

	book.AddCategory(category)
	return book, nil
}

func lookup(names host.NameRegistry, kind host.Kind, name string) (guide.ObjectRef, error) {
	ref, ok := guide.Ref(names, kind, name, 0)
	if !ok {
		return guide.ObjectRef{}, guideerr.UnresolvedReference(kind.String(), name)
	}
	return ref, nil
}
