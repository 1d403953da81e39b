package app

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/util"
)

func newFmtCmd() *cobra.Command {
	var (
		write bool
		check bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Rewrite book documents in canonical form",
		Long: `Decode each document and encode it again: discriminators first, entries
sorted by identifier, two-space indentation.

Without --write or --check the canonical form is printed to stdout.
With no arguments every *.json file under books_dir is processed.

Examples:
  guidectl fmt books/field_guide.json
  guidectl fmt --write
  guidectl fmt --check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && check {
				return fmt.Errorf("--write and --check are mutually exclusive")
			}
			files, err := bookFiles(args)
			if err != nil {
				return err
			}

			unformatted := 0
			for _, f := range files {
				data, err := os.ReadFile(f)
				if err != nil {
					return fmt.Errorf("reading %s: %w", f, err)
				}
				out, err := ld.Format(data)
				if err != nil {
					return fmt.Errorf("%s: %w", f, err)
				}

				switch {
				case check:
					if !bytes.Equal(data, out) {
						bad("%s is not formatted", f)
						unformatted++
					}
				case write:
					if bytes.Equal(data, out) {
						continue
					}
					if err := util.WriteFileAtomic(f, out, 0644); err != nil {
						return err
					}
					ok("formatted %s", f)
				default:
					if _, err := os.Stdout.Write(out); err != nil {
						return err
					}
				}
			}

			if unformatted > 0 {
				return fmt.Errorf("%d of %d documents need formatting", unformatted, len(files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to each file")
	cmd.Flags().BoolVar(&check, "check", false, "Fail if any file is not in canonical form")
	return cmd
}
