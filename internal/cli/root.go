// Package cli wires the combobox commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"combobox/internal/catalog"
	"combobox/internal/config"
	"combobox/internal/domain"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
)

// Version is overridden at build time with -ldflags "-X combobox/internal/cli.Version=..."
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath  string
	CatalogPath string
	LogLevel    string
}

// NewRootCommand creates the root command. Without a subcommand it runs
// the interactive demo.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	demo := &DemoOptions{}

	cmd := &cobra.Command{
		Use:   "combobox",
		Short: "Searchable multi-select combobox for the terminal",
		Long: `A searchable multi-select combobox for the terminal.

Type to filter a catalog by name or keyword, pick items with Enter or a
click, and remove them with Backspace or the tag's × glyph. The selected
values are printed when the program exits.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, demo, cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Sync()
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ./"+config.FileName+" or the user config dir)")
	cmd.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "YAML/TOML catalog file or directory (default: built-in frameworks)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error); logs go to the configured file")

	cmd.Flags().StringVar(&demo.Placeholder, "placeholder", "", "placeholder shown while nothing is selected")
	cmd.Flags().BoolVar(&demo.Async, "async", false, "search the catalog asynchronously")

	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// setup loads the config and starts logging. The log level comes from the
// flag, then the environment, then the config file.
func (o *RootOptions) setup(bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(o.ConfigPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := o.LogLevel
	if level == "" {
		level = os.Getenv(logging.LogLevelEnvVar)
	}
	if level == "" {
		level = cfg.Logging.Level
	}
	if err := logging.Initialize(level, cfg.Logging.File); err != nil {
		return nil, err
	}

	logging.Debug("Config loaded", zap.String("path", svc.Path()))
	return cfg, nil
}

// loadItems reads the catalog named by the flag or the config, falling
// back to the built-in list
func (o *RootOptions) loadItems(ctx context.Context, cfg *config.Config, bus eventbus.EventBus) ([]domain.Item, error) {
	path := o.CatalogPath
	if path == "" {
		path = cfg.Catalog
	}
	if path == "" {
		return catalog.Frameworks(), nil
	}
	return catalog.NewLoader(bus).Load(ctx, path)
}
