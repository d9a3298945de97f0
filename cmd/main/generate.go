package main

import (
	"encoding/json"
	"fmt"
	"time"

	"preferred-observer/src/config"
	"preferred-observer/src/generator"

	"github.com/spf13/cobra"
)

// -----------------------------------------------------------------------------

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var withNews bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the seeded dataset as JSON",
		Long: `Print the synthetic preferred stock dataset the server would seed with.
The same --seed always yields the same stocks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			now := time.Now().UTC()
			gen := generator.New(resolveSeed(opts.seed, cfg.Generator.Seed))

			out := map[string]interface{}{
				"seed":       gen.Seed(),
				"stocks":     gen.Stocks(now),
				"marketData": generator.InitialMarketData(now),
			}
			if withNews {
				out["news"] = generator.SampleNews(now)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&withNews, "news", false, "include the sample news articles")
	return cmd
}
