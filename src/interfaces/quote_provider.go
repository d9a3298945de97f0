package interfaces

import (
	"context"

	"preferred-observer/src/models"
)

//go:generate mockgen -source=quote_provider.go -destination=mocks/mock_quote_provider.go -package=mocks

// -----------------------------------------------------------------------------
// IQuoteProvider fetches a single live quote from one upstream.
// -----------------------------------------------------------------------------

type IQuoteProvider interface {

	// Name returns the unique identifier of the provider
	Name() string

	// -----------------------------------------------------------------------------

	// FetchQuote returns an error when the upstream fails or the quote is not usable.
	FetchQuote(ctx context.Context, symbol string) (*models.MQuote, error)
}

// -----------------------------------------------------------------------------
// IQuoteFetcher resolves a quote across providers and tags the outcome.
// -----------------------------------------------------------------------------

type IQuoteFetcher interface {
	FetchQuote(ctx context.Context, symbol string) models.MQuoteResult
}
