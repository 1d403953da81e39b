// Package builtin provides the page, entry and category variants that ship
// with guidectl and registers their codecs.
package builtin

import (
	"github.com/blackwell-systems/guidectl/internal/codec"
	"github.com/blackwell-systems/guidectl/internal/guide"
)

// Register adds every built-in variant to regs. Call it before registering
// any extension variants so the built-in tags cannot be taken.
func Register(regs *codec.Registries) {
	regs.RegisterPage(TagPageText, codec.Define[guide.Page](encodePageText, decodePageText))
	regs.RegisterPage(TagPageImage, codec.Define[guide.Page](encodePageImage, decodePageImage))
	regs.RegisterPage(TagPageItemStack, codec.Define[guide.Page](encodePageItemStack, decodePageItemStack))
	regs.RegisterPage(TagPageFurnaceRecipe, codec.Define[guide.Page](encodePageFurnace, decodePageFurnace))
	regs.RegisterPage(TagPageIRecipe, codec.Define[guide.Page](encodePageIRecipe, decodePageIRecipe))

	regs.RegisterEntry(TagEntry, codec.Define[guide.Entry](encodeEntry, decodeEntry))
	regs.RegisterEntry(TagEntryItemStack, codec.Define[guide.Entry](encodeEntryItemStack, decodeEntryItemStack))

	regs.RegisterCategory(TagCategory, codec.Define[guide.Category](encodeCategory, decodeCategory))
	regs.RegisterCategory(TagCategoryItemStack, codec.Define[guide.Category](encodeCategoryItemStack, decodeCategoryItemStack))
}
