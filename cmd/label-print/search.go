package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/labelkit/label-console/internal/model"
)

// newSearchCmd creates the product search command
func newSearchCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search products by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return fmt.Errorf("empty query")
			}

			products, err := opts.client.SearchProducts(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no products found")
				return nil
			}

			return writeProducts(cmd, products)
		},
	}
}

func writeProducts(cmd *cobra.Command, products []model.Product) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BARCODE\tNAME\tQTY\tMRP\tRP")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Barcode, p.Name, p.QuantityMeasure(), model.FormatNumber(p.MRP), model.FormatNumber(p.RetailPrice))
	}
	return w.Flush()
}
