package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/config"
	"github.com/blackwell-systems/guidectl/internal/util"
)

func newInitCmd() *cobra.Command {
	var (
		booksDir string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Long: `Write a guidectl config file.

The file holds the effective settings of this run: defaults, GUIDECTL_*
environment variables and the --names, --lang and --log-level flags.
It is written to --config, $GUIDECTL_CONFIG or ~/.config/guidectl/config.yml.`,
		Example: `  # Point guidectl at a directory of books
  guidectl init --books-dir ~/guides

  # Persist a name fixture, replacing an existing config
  guidectl init --names names.yml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if booksDir != "" {
				cfg.BooksDir = util.ExpandHome(booksDir)
			}
			path := config.ResolvePath(flagConfig)
			if err := writeConfig(cfg, path, force); err != nil {
				return err
			}

			ok("Wrote %s", path)
			printField("books_dir", cfg.BooksDir)
			if cfg.HasNames() {
				printField("names_file", cfg.NamesFile)
			}
			if cfg.HasLang() {
				printField("lang_file", cfg.LangFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&booksDir, "books-dir", "", "Directory searched and watched for book files")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

// writeConfig saves c to path. An existing file is kept unless force is set.
func writeConfig(c *config.Config, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking config: %w", err)
		}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := config.Save(c, path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
