package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newGetCmd creates the "get" command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <service> <item>",
		Short: "Get a configuration value",
		Long: `Get the value stored under service/item.

Prints only the bare value to stdout so it can be piped or captured.
A missing entry prints nothing and exits 0.

Examples:
  dwc get aws region
  dwc get maxson port`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			service, item := args[0], args[1]
			value, found := app.Store.Get(service, item)

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"service": service,
					"item":    item,
					"value":   value,
					"found":   found,
				})
			}

			if found {
				fmt.Fprintln(app.Out, formatValue(value))
			}
			return nil
		},
	}

	return cmd
}

// formatValue renders a stored value for plain output. Strings print as-is;
// anything else prints as compact JSON.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
