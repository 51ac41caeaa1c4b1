package cmd

import (
	"encoding/json"
	"fmt"

	"dworshak-config/internal/settings"

	"github.com/spf13/cobra"
)

// newSetCmd creates the "set" command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	var noOverwrite bool
	var rawJSON bool

	cmd := &cobra.Command{
		Use:   "set <service> <item> <value>",
		Short: "Set a configuration value",
		Long: `Store a value under service/item and persist it immediately.

With --no-overwrite an existing entry is left untouched. The command
prints the value actually stored after the call, so under --no-overwrite
it echoes the preexisting value rather than the argument.

With --raw-json the value argument is parsed as a JSON document, so
numbers, booleans, null, arrays and objects are stored typed instead of
as strings.

Examples:
  dwc set aws region us-east-1
  dwc set maxson port 8080 --raw-json
  dwc set aws region us-west-2 --no-overwrite`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			service, item := args[0], args[1]
			var value any = args[2]
			if rawJSON {
				if err := json.Unmarshal([]byte(args[2]), &value); err != nil {
					return fmt.Errorf("parsing value as JSON: %w", err)
				}
			}

			opts := settings.SetOptions{SkipIfExists: noOverwrite}
			if err := app.Store.Set(service, item, value, opts); err != nil {
				return fmt.Errorf("setting %s/%s: %w", service, item, err)
			}

			// Read back what is actually stored and report that.
			stored, found := app.Store.Get(service, item)
			if !found {
				return fmt.Errorf("failed to read back %s/%s after set", service, item)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"service": service,
					"item":    item,
					"value":   stored,
				})
			}

			fmt.Fprintln(app.Out, formatValue(stored))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "Keep an existing value instead of overwriting it")
	cmd.Flags().BoolVar(&rawJSON, "raw-json", false, "Parse the value argument as JSON")

	return cmd
}
