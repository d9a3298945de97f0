package models

import "time"

// MQuote is a normalized live quote from any provider.
type MQuote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	LastTrade     time.Time `json:"lastTrade"`
	Provider      string    `json:"provider"`
}

const (
	QuoteStatusLive     = "live"
	QuoteStatusFallback = "fallback"
)

// MQuoteResult tags a fetch outcome as live data or a fallback with its reason.
type MQuoteResult struct {
	Quote    *MQuote `json:"-"`
	Status   string  `json:"status"`
	Provider string  `json:"provider,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}

func Live(q *MQuote) MQuoteResult {
	return MQuoteResult{Quote: q, Status: QuoteStatusLive, Provider: q.Provider}
}

func Fallback(reason string) MQuoteResult {
	return MQuoteResult{Status: QuoteStatusFallback, Reason: reason}
}

func (r MQuoteResult) IsLive() bool {
	return r.Status == QuoteStatusLive && r.Quote != nil
}
