package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/labelkit/label-console/internal/config"
	"github.com/labelkit/label-console/internal/labelapi"
	"github.com/labelkit/label-console/internal/logging"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(env).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cliOptions holds the global flags and what is built from them
type cliOptions struct {
	server    string
	timeout   time.Duration
	logLevel  string
	logFormat string
	storeName string

	logger *zap.Logger
	client *labelapi.Client
}

// newRootCmd creates and configures the root command
func newRootCmd(env *config.Env) *cobra.Command {
	opts := &cliOptions{
		logFormat: env.LogFormat,
		storeName: env.StoreName,
	}
	if opts.storeName == "" {
		opts.storeName = config.DefaultStoreName
	}

	rootCmd := &cobra.Command{
		Use:           "label-print",
		Short:         "Label server command line client",
		Long:          `Search products, save label previews and submit print jobs to a label server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.server, "server", env.ServerURLOrDefault(), "label server base URL")
	flags.DurationVar(&opts.timeout, "timeout", env.RequestTimeoutOrDefault(), "timeout for each request")
	flags.StringVar(&opts.logLevel, "log-level", env.LogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newPreviewCmd(opts))
	rootCmd.AddCommand(newPrintCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (o *cliOptions) init() error {
	logger, err := logging.New(o.logLevel, o.logFormat)
	if err != nil {
		return err
	}
	o.logger = logger

	client, err := labelapi.NewClient(o.server,
		labelapi.WithTimeout(o.timeout),
		labelapi.WithLogger(logger.Named("labelapi")))
	if err != nil {
		return err
	}
	o.client = client
	return nil
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "label-print version %s\n", version)
		},
	}
}
