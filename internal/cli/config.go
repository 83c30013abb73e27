package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"combobox/internal/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(newConfigInitCommand(rootOpts))
	return cmd
}

func newConfigInitCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with default values",
		Long: `Write a config file with default values. The path defaults to
--config, or ./` + config.FileName + ` when that is not set.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rootOpts.ConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = config.FileName
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config file: %w", err)
			}

			if err := config.NewConfigService(path).Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
