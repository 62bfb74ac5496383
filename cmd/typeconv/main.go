package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/typeconv/pkg/typeconv/builtin"
	"github.com/randalmurphal/typeconv/pkg/typeconv/config"
	"github.com/randalmurphal/typeconv/pkg/typeconv/manager"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// defaultKind is the registry kind used when --kind is not given.
const defaultKind = "format"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "typeconv",
		Short: "Inspect type-directed converter registries",
		Long: `typeconv resolves query types against converter registries.

Registries are built from the builtin formatters, either all of them
under the "format" kind or as listed in a YAML or JSON settings file:

  log_level: debug
  registries:
    format: [nil, string, time, stringer, any]`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Settings file (.yaml, .yml or .json)")

	rootCmd.AddCommand(
		resolveCmd(&configPath),
		listCmd(&configPath),
		versionCmd(),
	)
	return rootCmd
}

// loadManager builds a manager from the settings at path, or from every
// builtin formatter when path is empty. Logs go to w.
func loadManager(path string, w io.Writer) (*manager.Manager, error) {
	settings := config.DefaultSettings()
	if path != "" {
		var err error
		if settings, err = config.LoadSettings(path); err != nil {
			return nil, err
		}
	} else {
		settings.Registries[defaultKind] = builtin.Catalog().Names()
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: settings.LogLevel}))
	return manager.FromSettings(settings, builtin.Catalog(), manager.WithLogger(logger))
}
