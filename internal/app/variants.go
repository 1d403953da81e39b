package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newVariantsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the registered category, entry and page variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regs := ld.Codec().Registries()
			families := []struct {
				Family string   `json:"family"`
				Tags   []string `json:"tags"`
			}{
				{regs.Categories.Family(), regs.Categories.Tags()},
				{regs.Entries.Family(), regs.Entries.Tags()},
				{regs.Pages.Family(), regs.Pages.Tags()},
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(families)
			}
			for _, f := range families {
				header("%s (%d)", f.Family, len(f.Tags))
				fmt.Println("  " + strings.Join(f.Tags, "\n  "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
