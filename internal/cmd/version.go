package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the current version of dworshak-config. It can be overridden at
// build time via -ldflags "-X dworshak-config/internal/cmd.Version=1.2.3".
var Version = "0.4.0"

func newVersionCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if provider.JSONOutput {
				return json.NewEncoder(provider.Out).Encode(map[string]string{
					"version": Version,
				})
			}
			fmt.Fprintf(provider.Out, "dwc version %s\n", Version)
			return nil
		},
	}
	return cmd
}
