package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/library"
	"github.com/blackwell-systems/guidectl/internal/search"
)

func newSearchCmd() *cobra.Command {
	var (
		book    string
		variant string
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search entry names and page text across books_dir",
		Long: `Load every book under books_dir, index its entries and run a query.

Entry names weigh more than page text. --book restricts hits to one file
(path relative to books_dir) and --variant to entries that use an entry or
page variant. An empty query with filters lists every matching entry.

Examples:
  guidectl search potato
  guidectl search --variant PageFurnaceRecipe
  guidectl search --book test_book.json --lang en_us.json hello`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if query == "" && book == "" && variant == "" {
				return fmt.Errorf("a query, --book or --variant is required")
			}
			if limit <= 0 {
				limit = cfg.Search.Limit
			}

			lib := library.New(cfg.BooksDir, ld, log)
			report, err := lib.LoadAll()
			if err != nil {
				return err
			}
			for path, ferr := range report.Failures {
				warn("skipping %s: %v", lib.Rel(path), ferr)
			}

			idx, err := search.New(tr, log)
			if err != nil {
				return err
			}
			defer func() { _ = idx.Close() }()

			for _, doc := range lib.List() {
				if err := idx.IndexBook(lib.Rel(doc.Path), doc.Book); err != nil {
					return err
				}
			}

			res, err := idx.Search(cmd.Context(), search.Params{
				Query:   query,
				Book:    book,
				Variant: variant,
				Limit:   limit,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			if len(res.Hits) == 0 {
				warn("no entries match")
				return nil
			}
			header("%d of %d matches", len(res.Hits), res.Total)
			for _, h := range res.Hits {
				fmt.Printf("  %s %s %s\n",
					color.CyanString("%-24s", h.Book),
					h.Name,
					color.HiBlackString("(%s, %s)", h.Entry, h.Category))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&book, "book", "", "Only search this book (path relative to books_dir)")
	cmd.Flags().StringVar(&variant, "variant", "", "Only entries using this entry or page variant")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output results as JSON")
	return cmd
}
