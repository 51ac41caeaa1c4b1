package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newExportCmd creates the "export" command.
func newExportCmd(provider *AppProvider) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the full settings document to stdout",
		Long: `Write the entire service/item document to stdout.

The JSON form matches the on-disk file; the YAML form is convenient for
review or for feeding into "dwc import" elsewhere.

Examples:
  dwc export
  dwc export --format yaml > settings.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			data := app.Store.All()
			switch format {
			case "json":
				enc := json.NewEncoder(app.Out)
				enc.SetIndent("", "    ")
				return enc.Encode(data)
			case "yaml":
				enc := yaml.NewEncoder(app.Out)
				defer enc.Close()
				return enc.Encode(data)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")

	return cmd
}
