package services

import (
	"context"

	"preferred-observer/src/interfaces"
	"preferred-observer/src/models"

	"golang.org/x/sync/errgroup"
)

// fetchAll resolves symbols through the fetcher with at most limit in flight.
func fetchAll(ctx context.Context, fetcher interfaces.IQuoteFetcher, symbols []string, limit int) map[string]models.MQuoteResult {
	results := make([]models.MQuoteResult, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, symbol := range symbols {
		g.Go(func() error {
			results[i] = fetcher.FetchQuote(gctx, symbol)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]models.MQuoteResult, len(symbols))
	for i, symbol := range symbols {
		out[symbol] = results[i]
	}
	return out
}

// liveQuotes extracts the live quotes of a result set.
func liveQuotes(results map[string]models.MQuoteResult) []models.MQuote {
	quotes := make([]models.MQuote, 0, len(results))
	for _, r := range results {
		if r.IsLive() {
			quotes = append(quotes, *r.Quote)
		}
	}
	return quotes
}
