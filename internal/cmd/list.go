package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newListCmd creates the "list" command.
func newListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all stored configuration values",
		Long: `List all service/item entries, sorted by service then item.

Examples:
  dwc list
  dwc list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(app.Store.All())
			}

			entries := app.Store.List()
			if len(entries) == 0 {
				fmt.Fprintln(app.Out, "No values stored")
				return nil
			}

			fmt.Fprintf(app.Out, "Stored values (%d):\n", len(entries))
			for _, e := range entries {
				fmt.Fprintf(app.Out, "  %s/%s = %s\n", e.Service, e.Item, formatValue(e.Value))
			}
			return nil
		},
	}

	return cmd
}
