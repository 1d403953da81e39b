package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/tui"
	"github.com/blackwell-systems/guidectl/internal/util"
)

func newTreeCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the category, entry and page outline of a book",
		Long: `Print a book as a tree. Entries are listed in identifier order and page
summaries are cut to --width columns. The default is the terminal width
(100 when stdout is not a terminal); a negative width disables truncation.

Examples:
  guidectl tree books/field_guide.json
  guidectl tree --lang en_us.json --width -1 books/field_guide.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := ld.LoadFile(args[0])
			if err != nil {
				return err
			}
			w := width
			if w == 0 {
				if w = util.TerminalWidth(); w == 0 {
					w = 100
				}
			}
			fmt.Println(tui.BookTree(book, tr, w))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Maximum width of a page line (default: terminal width)")
	return cmd
}
