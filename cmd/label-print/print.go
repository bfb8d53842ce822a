package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/labelkit/label-console/internal/console"
	"github.com/labelkit/label-console/internal/model"
)

// newPrintCmd creates the print submission command
func newPrintCmd(opts *cliOptions) *cobra.Command {
	var (
		count string
		exp   string
	)

	cmd := &cobra.Command{
		Use:   "print <barcode>",
		Short: "Print labels for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs := console.DefaultMessages()
			product := model.Product{Barcode: strings.TrimSpace(args[0])}
			req := model.NewPrintRequest(product, count, strings.TrimSpace(opts.storeName), strings.TrimSpace(exp))

			result, err := opts.client.Print(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("print %s: %w", req.Barcode, err)
			}

			if !result.OK {
				details := result.JoinedErrors()
				if details == "" {
					details = msgs.NoErrorDetails
				}
				opts.logger.Warn("print incomplete", zap.String("barcode", req.Barcode), zap.Int("printed", result.Printed))
				return fmt.Errorf(msgs.PrintPartial, result.Printed, req.Count, details)
			}

			fmt.Fprintf(cmd.OutOrStdout(), msgs.PrintSuccess+"\n", result.Printed)
			return nil
		},
	}

	cmd.Flags().StringVar(&count, "count", "1", "number of labels")
	cmd.Flags().StringVar(&opts.storeName, "store", opts.storeName, "store name printed on the label")
	cmd.Flags().StringVar(&exp, "exp", "", "expiry text printed on the label")

	return cmd
}
