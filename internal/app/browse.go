package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a book interactively",
		Long: `Open a column browser over categories, entries and pages.

Falls back to printing the tree when stdout is not a terminal or
--no-interactive is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := ld.LoadFile(args[0])
			if err != nil {
				return err
			}
			if !tui.ShouldUseTUI(cmd) {
				fmt.Println(tui.BookTree(book, tr, 0))
				return nil
			}
			return tui.RunOutline(book, tr)
		},
	}
}
