package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dworshak-config/internal/settings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newImportCmd creates the "import" command.
func newImportCmd(provider *AppProvider) *cobra.Command {
	var format string
	var noOverwrite bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a settings document into the store",
		Long: `Read a service/item document from file and merge it into the store.

The codec is inferred from the file extension (.json, .yaml, .yml) unless
--format is given. Existing entries are overwritten unless --no-overwrite
is set, in which case they are kept per entry.

Examples:
  dwc import settings.json
  dwc import settings.yaml --no-overwrite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			file := args[0]
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}

			codec := format
			if codec == "" {
				switch strings.ToLower(filepath.Ext(file)) {
				case ".yaml", ".yml":
					codec = "yaml"
				default:
					codec = "json"
				}
			}

			var data map[string]map[string]any
			switch codec {
			case "json":
				if err := json.Unmarshal(raw, &data); err != nil {
					return fmt.Errorf("parsing %s: %w", file, err)
				}
			case "yaml":
				if err := yaml.Unmarshal(raw, &data); err != nil {
					return fmt.Errorf("parsing %s: %w", file, err)
				}
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", codec)
			}

			opts := settings.SetOptions{SkipIfExists: noOverwrite}
			if err := app.Store.Replace(data, opts); err != nil {
				return fmt.Errorf("importing %s: %w", file, err)
			}

			count := 0
			for _, items := range data {
				count += len(items)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]any{
					"file":    file,
					"entries": count,
				})
			}

			fmt.Fprintln(app.Out, app.SuccessColor(fmt.Sprintf("Imported %d entries from %s", count, file)))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format: json or yaml (default: inferred from extension)")
	cmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "Keep existing values instead of overwriting them")

	return cmd
}
