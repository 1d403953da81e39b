package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/sample"
)

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [output]",
		Short: "Write the demonstration book",
		Long: `Build the demonstration book in code and write it as JSON.

The default output is test_book.json under books_dir; "-" writes to stdout.
The sample references minecraft:potato, minecraft:banner and the block
minecraft:cobblestone, which must exist in the name fixture.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := sample.Build(names)
			if err != nil {
				return err
			}

			out := filepath.Join(cfg.BooksDir, sample.BookID.Path+".json")
			if len(args) == 1 {
				out = args[0]
			}

			if out == "-" {
				data, err := ld.Marshal(book)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(data)
				return err
			}

			if err := ld.Save(out, book); err != nil {
				return err
			}
			ok("wrote %s", out)
			return nil
		},
	}
}
