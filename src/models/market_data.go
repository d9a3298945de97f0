package models

import "time"

// Data status of a market snapshot.
const (
	DataStatusLive     = "live"
	DataStatusPartial  = "partial"
	DataStatusFallback = "fallback"
	DataStatusManual   = "manual"
)

// MMarketData is the single current market snapshot.
type MMarketData struct {
	ID                      int       `json:"id"`
	SP500                   float64   `json:"sp500"`
	SP500Change             float64   `json:"sp500Change"`
	Dow                     float64   `json:"dow"`
	DowChange               float64   `json:"dowChange"`
	Nasdaq                  float64   `json:"nasdaq"`
	NasdaqChange            float64   `json:"nasdaqChange"`
	Treasury10y             float64   `json:"treasury10y"`
	Treasury10yChange       float64   `json:"treasury10yChange"`
	VIX                     float64   `json:"vix"`
	VIXChange               float64   `json:"vixChange"`
	PreferredAvgYield       float64   `json:"preferredAvgYield"`
	PreferredAvgYieldChange float64   `json:"preferredAvgYieldChange"`
	UpdatedAt               time.Time `json:"updatedAt"`

	DataStatus string         `json:"dataStatus"`
	Sources    []MIndexSource `json:"sources,omitempty"`
}

// MIndexSource tells where one snapshot field came from.
type MIndexSource struct {
	Field    string `json:"field"`
	Symbol   string `json:"symbol"`
	Status   string `json:"status"`
	Provider string `json:"provider,omitempty"`
	Reason   string `json:"reason,omitempty"`
}
