package cmd

import (
	"encoding/json"
	"fmt"

	"dworshak-config/internal/settings"

	"github.com/spf13/cobra"
)

// newUnsetCmd creates the "unset" command.
func newUnsetCmd(provider *AppProvider) *cobra.Command {
	var failIfMissing bool

	cmd := &cobra.Command{
		Use:     "unset <service> <item>",
		Aliases: []string{"remove"},
		Short:   "Remove a configuration value",
		Long: `Remove the entry stored under service/item and persist immediately.

A missing entry is reported but not an error unless --fail is given.
Empty service groups are pruned from the file.

Examples:
  dwc unset aws region
  dwc unset aws region --fail`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			service, item := args[0], args[1]
			removed, err := app.Store.Unset(service, item)
			if err != nil {
				return fmt.Errorf("removing %s/%s: %w", service, item, err)
			}

			if !removed && failIfMissing {
				return fmt.Errorf("%s/%s: %w", service, item, settings.ErrNotFound)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"service": service,
					"item":    item,
					"removed": removed,
				})
			}

			if removed {
				fmt.Fprintln(app.Out, app.SuccessColor(fmt.Sprintf("Removed %s/%s", service, item)))
			} else {
				fmt.Fprintln(app.Out, app.WarnColor(fmt.Sprintf("No value found for %s/%s", service, item)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failIfMissing, "fail", false, "Exit with an error if the entry does not exist")

	return cmd
}
