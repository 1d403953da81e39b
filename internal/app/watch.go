package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/guidectl/internal/library"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Validate books_dir continuously as files change",
		Long: `Load every book under books_dir, then reload each file after it is saved.

A file that stops decoding is reported and its last good version is kept.
Saves that leave the content unchanged are ignored. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := library.New(cfg.BooksDir, ld, log)
			report, err := lib.LoadAll()
			if err != nil {
				return err
			}
			for _, doc := range lib.List() {
				ok("%s", lib.Rel(doc.Path))
			}
			for path, ferr := range report.Failures {
				bad("%s: %v", lib.Rel(path), ferr)
			}
			header("watching %s (%d books)", lib.Dir(), report.Loaded)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return lib.Watch(ctx, library.WatchOptions{SettleDelay: cfg.Watch.SettleDelay}, func(c library.Change) {
				rel := lib.Rel(c.Path)
				switch c.Kind {
				case library.ChangeLoaded:
					cats, entries, pages := c.Doc.Book.Counts()
					ok("%s reloaded (%d categories, %d entries, %d pages)", rel, cats, entries, pages)
				case library.ChangeRemoved:
					warn("%s removed", rel)
				case library.ChangeFailed:
					bad("%s: %v", rel, c.Err)
				}
			})
		},
	}
}
