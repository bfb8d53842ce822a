package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/labelkit/label-console/internal/platform"
)

// newPreviewCmd creates the command that saves a label preview image
func newPreviewCmd(opts *cliOptions) *cobra.Command {
	var (
		exp    string
		output string
		open   bool
	)

	cmd := &cobra.Command{
		Use:   "preview <barcode>",
		Short: "Save the label preview PNG for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			barcode := strings.TrimSpace(args[0])
			store := strings.TrimSpace(opts.storeName)
			exp = strings.TrimSpace(exp)

			data, err := opts.client.FetchPreview(cmd.Context(), barcode, store, exp)
			if err != nil {
				return fmt.Errorf("preview %s: %w", barcode, err)
			}

			path, err := writePreview(output, barcode, data)
			if err != nil {
				return err
			}
			opts.logger.Debug("preview written", zap.String("barcode", barcode), zap.String("path", path), zap.Int("bytes", len(data)))
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if open {
				return platform.OpenFileWithDefaultApp(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.storeName, "store", opts.storeName, "store name printed on the label")
	cmd.Flags().StringVar(&exp, "exp", "", "expiry text printed on the label")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default label-<barcode>.png in the current directory)")
	cmd.Flags().BoolVar(&open, "open", false, "open the saved preview with the default application")

	return cmd
}

func writePreview(output, barcode string, data []byte) (string, error) {
	if output == "" {
		return platform.SavePreview(".", barcode, data)
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(output)); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", output, err)
	}
	if err := os.WriteFile(output, data, platform.DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write preview: %w", err)
	}
	return output, nil
}
