package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"combobox/internal/catalog"
	"combobox/internal/combobox"
	"combobox/internal/eventbus"
)

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the catalog, optionally filtered",
		Long: `Print the items the combobox would offer.

With --query the list is filtered the same way the widget filters it:
case-insensitive substring on the name or any keyword.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(rootOpts, query, cmd)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter query")
	cmd.AddCommand(newCatalogExportCommand(rootOpts))

	return cmd
}

func runCatalog(opts *RootOptions, query string, cmd *cobra.Command) error {
	cfg, err := opts.setup(eventbus.NullBus{})
	if err != nil {
		return err
	}

	items, err := opts.loadItems(cmd.Context(), cfg, eventbus.NullBus{})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, item := range combobox.Filter(items, query) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Value, item.Name, item.KeywordList())
	}
	return w.Flush()
}

func newCatalogExportCommand(rootOpts *RootOptions) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the catalog to a YAML or TOML file",
		Long: `Write the (optionally filtered) catalog to a file. The format is
chosen from the extension: .yaml, .yml or .toml.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.setup(eventbus.NullBus{})
			if err != nil {
				return err
			}
			items, err := rootOpts.loadItems(cmd.Context(), cfg, eventbus.NullBus{})
			if err != nil {
				return err
			}

			items = combobox.Filter(items, query)
			if err := catalog.WriteFile(args[0], items); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d items to %s\n", len(items), args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter query")
	return cmd
}
