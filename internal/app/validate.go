package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/guideerr"
	"github.com/blackwell-systems/guidectl/internal/library"
)

type validateResult struct {
	File       string `json:"file"`
	OK         bool   `json:"ok"`
	Kind       string `json:"kind,omitempty"`
	Path       string `json:"path,omitempty"`
	Error      string `json:"error,omitempty"`
	Categories int    `json:"categories,omitempty"`
	Entries    int    `json:"entries,omitempty"`
	Pages      int    `json:"pages,omitempty"`
}

func newValidateCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check that book documents decode",
		Long: `Decode each book document and report the first error in each file.

With no arguments every *.json file under books_dir is checked.
Exits non-zero if any document fails.

Examples:
  guidectl validate books/field_guide.json
  guidectl validate --names names.yml
  guidectl validate --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := bookFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				warn("no book files found in %s", cfg.BooksDir)
				return nil
			}

			results := make([]validateResult, 0, len(files))
			failed := 0
			for _, f := range files {
				r := validateFile(f)
				if !r.OK {
					failed++
				}
				results = append(results, r)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					if r.OK {
						ok("%s (%d categories, %d entries, %d pages)", r.File, r.Categories, r.Entries, r.Pages)
						continue
					}
					bad("%s: %s", r.File, r.Error)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output results as JSON")
	return cmd
}

func validateFile(path string) validateResult {
	r := validateResult{File: path}
	book, err := ld.LoadFile(path)
	if err != nil {
		r.Error = err.Error()
		var gerr *guideerr.Error
		if errors.As(err, &gerr) {
			r.Kind = string(gerr.Kind)
			r.Path = gerr.Path
		}
		return r
	}
	r.OK = true
	r.Categories, r.Entries, r.Pages = book.Counts()
	return r
}

// bookFiles returns args, or every book file under books_dir when args is
// empty.
func bookFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return library.Scan(cfg.BooksDir)
}
