package store

import (
	"fmt"
	"sort"

	"preferred-observer/src/models"
)

// FeaturedPolicy selects the featured subset from a snapshot of stocks.
type FeaturedPolicy interface {
	Name() string
	Select(stocks []models.MPreferredStock) []models.MPreferredStock
}

const (
	PolicyTopByYield = "top_by_yield"
	PolicyCurated    = "curated"
)

// -----------------------------------------------------------------------------

// TopByYield keeps stocks yielding strictly above Threshold, best first.
type TopByYield struct {
	Threshold float64
	Count     int
}

func (p TopByYield) Name() string { return PolicyTopByYield }

func (p TopByYield) Select(stocks []models.MPreferredStock) []models.MPreferredStock {
	out := make([]models.MPreferredStock, 0, len(stocks))
	for _, s := range stocks {
		if s.DividendYield > p.Threshold {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DividendYield > out[j].DividendYield
	})
	if p.Count > 0 && len(out) > p.Count {
		out = out[:p.Count]
	}
	return out
}

// -----------------------------------------------------------------------------

// Curated returns the listed tickers in list order, skipping unknown ones.
type Curated struct {
	Tickers []string
}

func (p Curated) Name() string { return PolicyCurated }

func (p Curated) Select(stocks []models.MPreferredStock) []models.MPreferredStock {
	byTicker := make(map[string]models.MPreferredStock, len(stocks))
	for _, s := range stocks {
		byTicker[s.Ticker] = s
	}

	out := make([]models.MPreferredStock, 0, len(p.Tickers))
	for _, t := range p.Tickers {
		if s, ok := byTicker[t]; ok {
			out = append(out, s)
		}
	}
	return out
}

// -----------------------------------------------------------------------------

// PolicyFromConfig builds the configured featured policy.
func PolicyFromConfig(cfg models.MFeaturedConfig) (FeaturedPolicy, error) {
	switch cfg.Policy {
	case "", PolicyTopByYield:
		return TopByYield{Threshold: cfg.Threshold, Count: cfg.Count}, nil
	case PolicyCurated:
		return Curated{Tickers: cfg.Tickers}, nil
	default:
		return nil, fmt.Errorf("unknown featured policy %q", cfg.Policy)
	}
}
