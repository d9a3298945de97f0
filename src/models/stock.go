package models

import "time"

// MPreferredStock is a single preferred share keyed by ticker.
type MPreferredStock struct {
	ID            int       `json:"id"`
	Ticker        string    `json:"ticker"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	DividendYield float64   `json:"dividendYield"`
	MarketCap     string    `json:"marketCap"`
	Volume        int64     `json:"volume"`
	LastTrade     time.Time `json:"lastTrade"`
	Sector        *string   `json:"sector,omitempty"`
	Description   *string   `json:"description,omitempty"`
	IsActive      bool      `json:"isActive"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MStockPatch holds the mutable fields of a stock; nil means "leave as is".
type MStockPatch struct {
	Name          *string    `json:"name,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	Change        *float64   `json:"change,omitempty"`
	ChangePercent *float64   `json:"changePercent,omitempty"`
	DividendYield *float64   `json:"dividendYield,omitempty"`
	MarketCap     *string    `json:"marketCap,omitempty"`
	Volume        *int64     `json:"volume,omitempty"`
	LastTrade     *time.Time `json:"lastTrade,omitempty"`
	Sector        *string    `json:"sector,omitempty"`
	Description   *string    `json:"description,omitempty"`
	IsActive      *bool      `json:"isActive,omitempty"`
}

// Apply merges the non-nil patch fields onto s.
func (p MStockPatch) Apply(s MPreferredStock) MPreferredStock {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Change != nil {
		s.Change = *p.Change
	}
	if p.ChangePercent != nil {
		s.ChangePercent = *p.ChangePercent
	}
	if p.DividendYield != nil {
		s.DividendYield = *p.DividendYield
	}
	if p.MarketCap != nil {
		s.MarketCap = *p.MarketCap
	}
	if p.Volume != nil {
		s.Volume = *p.Volume
	}
	if p.LastTrade != nil {
		s.LastTrade = *p.LastTrade
	}
	if p.Sector != nil {
		s.Sector = p.Sector
	}
	if p.Description != nil {
		s.Description = p.Description
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	return s
}

// MSearchResult is the body of the live ticker lookup.
type MSearchResult struct {
	Type   string          `json:"type"` // preferred | regular
	Data   MPreferredStock `json:"data"`
	Status *MQuoteResult   `json:"status,omitempty"`
}

const (
	SearchTypePreferred = "preferred"
	SearchTypeRegular   = "regular"
)
