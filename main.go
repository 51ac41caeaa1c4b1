// dwc is the CLI for dworshak-config, a plaintext settings store
// backed by a JSON file.
package main

import (
	"fmt"
	"os"

	"dworshak-config/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
