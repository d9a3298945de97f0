package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

// -----------------------------------------------------------------------------

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// -----------------------------------------------------------------------------

type rootOptions struct {
	configPath string
	seed       int64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "preferred-observer",
		Short: "Preferred stock market data API",
		Long: `preferred-observer serves preferred stock listings, financial news and a
market overview over REST and websocket, overlaying live quotes when providers are reachable.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: serve
			return runServe(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "config/default.yaml", "path to config file")
	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "generator seed (0 uses the config value, then the clock)")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// -----------------------------------------------------------------------------

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST, websocket and gRPC health servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "preferred-observer %s\n", version)
		},
	}
}

// -----------------------------------------------------------------------------

// resolveSeed prefers the flag, then the config, then the clock.
func resolveSeed(flagSeed, configSeed int64) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case configSeed != 0:
		return configSeed
	default:
		return time.Now().UnixNano()
	}
}
