package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/guide"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show the metadata of a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, digest, err := ld.LoadFileDigest(args[0])
			if err != nil {
				return err
			}

			header("Book: %s", book.LocalizedDisplayName(tr))
			printField("title", keyed(book.Title, book.LocalizedTitle(tr)))
			printField("welcome", keyed(book.WelcomeMessage, book.LocalizedWelcomeMessage(tr)))
			if book.Author != "" {
				printField("author", book.Author)
			}
			printField("color", swatch(book.Color))
			if book.PageTexture != "" {
				printField("page texture", book.PageTexture)
			}
			if book.OutlineTexture != "" {
				printField("outline", book.OutlineTexture)
			}
			cats, entries, pages := book.Counts()
			printField("categories", fmt.Sprintf("%d", cats))
			printField("entries", fmt.Sprintf("%d", entries))
			printField("pages", fmt.Sprintf("%d", pages))
			printField("sha256", digest)
			return nil
		},
	}
}

// keyed shows a localization key with its translation when they differ.
func keyed(key, translated string) string {
	if key == translated {
		return key
	}
	return fmt.Sprintf("%s %s", translated, color.HiBlackString("(%s)", key))
}

func swatch(c guide.Color) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	if c.A != 255 {
		hex += fmt.Sprintf(" alpha %d", c.A)
	}
	if color.NoColor {
		return hex
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex[:7])).Render("■") + " " + hex
}
