package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"dworshak-config/internal/settings"
	"dworshak-config/internal/settings/jsonstore"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	ConfigPath string
	JSONOutput bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a buffer-backed App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	path, err := settings.ResolvePath(p.ConfigPath)
	if err != nil {
		return nil, err
	}

	store, err := jsonstore.New(path)
	if err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	app := &App{
		Store: store,
		Path:  path,
		Out:   out,
		Err:   errOut,
		JSON:  p.JSONOutput,
	}

	if store.State() == settings.LoadedCorrupt {
		fmt.Fprintln(errOut, app.WarnColor(fmt.Sprintf(
			"warning: settings file %s is corrupted; starting from an empty store", path)))
	}

	return app, nil
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dwc",
		Short: "Store and retrieve plaintext configuration values in JSON",
		Long: `dwc stores non-sensitive application settings in a JSON file,
addressed by a two-level service/item namespace (e.g. aws/region).

The file defaults to ~/.dworshak/config.json and can be overridden with
--path or the DWORSHAK_CONFIG environment variable. Missing or corrupted
files are treated as an empty store; writes are atomic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&provider.ConfigPath, "path", "", "Path to the settings file (default: ~/.dworshak/config.json)")

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newUnsetCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newExportCmd(provider))
	rootCmd.AddCommand(newImportCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
