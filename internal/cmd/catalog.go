package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/option"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect catalog files",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a catalog file for errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogValidate,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print a catalog after normalization",
	Long: `Print a catalog after normalization.

Option lists are shown the way the storefront sees them: one entry per id,
with the fields of the last duplicate. Without a path the built-in demo
catalog is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogShow,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	c, err := catalog.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d products, %d packages, %d sort options)\n",
		args[0], len(c.Products), len(c.Packages), len(c.SortOptions))
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	c := catalog.Demo()
	if len(args) == 1 {
		var err error
		if c, err = catalog.Load(args[0]); err != nil {
			return err
		}
	}
	printCatalog(cmd.OutOrStdout(), c)
	return nil
}

func printCatalog(w io.Writer, c *catalog.Catalog) {
	if c.Hero.Title != "" {
		fmt.Fprintf(w, "hero: %s\n\n", c.Hero.Title)
	}

	fmt.Fprintln(w, "products:")
	for _, p := range c.Products {
		fmt.Fprintf(w, "  %-20s %-24s $%8.2f  %.1f★\n", p.ID, p.Name, p.Price, p.Rating)
		fmt.Fprintf(w, "    colors: %s\n", optionSummary(p.Colors))
		fmt.Fprintf(w, "    sizes:  %s\n", optionSummary(p.Sizes))
	}

	fmt.Fprintln(w, "\nsort:")
	for _, o := range c.SortOptions {
		fmt.Fprintf(w, "  %-12s %s\n", o.ID, o.Label)
	}

	fmt.Fprintln(w, "\npackages:")
	for _, p := range c.Packages {
		fmt.Fprintf(w, "  %-12s %-20s $%.0f  %s\n", p.ID, p.Name, p.Price, p.Duration)
	}
}

func optionSummary(opts []option.Option) string {
	switch {
	case opts == nil:
		return "(defaults)"
	case len(opts) == 0:
		return "(none)"
	}
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = o.ID
		if o.Label != o.ID {
			parts[i] += "=" + o.Label
		}
		if o.Hex != "" {
			parts[i] += " " + o.Hex
		}
	}
	return strings.Join(parts, ", ")
}
