package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"preferred-observer/src/models"
	"preferred-observer/src/utils"

	"github.com/shopspring/decimal"
)

// Generator produces the synthetic preferred-stock universe. The same seed
// yields the same universe for the same reference time.
type Generator struct {
	seed int64
	rng  *rand.Rand
	mu   sync.Mutex
}

// -----------------------------------------------------------------------------

func New(seed int64) *Generator {
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (g *Generator) Seed() int64 { return g.seed }

// -----------------------------------------------------------------------------

// Tickers returns every listed preferred ticker once, in table order.
func Tickers() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 1000)
	for _, r := range tickerTable {
		for s := r.First; s <= r.Last; s++ {
			ticker := fmt.Sprintf("%s-P%c", r.Prefix, s)
			if _, dup := seen[ticker]; dup {
				continue
			}
			seen[ticker] = struct{}{}
			out = append(out, ticker)
		}
	}
	return out
}

// -----------------------------------------------------------------------------

// Describe returns the display name and sector for a ticker.
func Describe(ticker string) (name, sector string) {
	prefix, series, _ := strings.Cut(ticker, "-P")

	info, ok := companies[prefix]
	if !ok {
		return prefix + " Preferred Stock", sectorFinancial
	}
	return fmt.Sprintf("%s Preferred Series %s", info.Name, series), info.Sector
}

// -----------------------------------------------------------------------------

// Stocks generates one record per ticker relative to now.
func (g *Generator) Stocks(now time.Time) []models.MPreferredStock {
	g.mu.Lock()
	defer g.mu.Unlock()

	tickers := Tickers()
	out := make([]models.MPreferredStock, 0, len(tickers))
	for _, ticker := range tickers {
		out = append(out, g.stock(ticker, now))
	}
	return out
}

func (g *Generator) stock(ticker string, now time.Time) models.MPreferredStock {
	name, sector := Describe(ticker)

	price := 20 + g.rng.Float64()*15
	change := -1 + g.rng.Float64()*2
	yield := 4 + g.rng.Float64()*4
	capMillions := 500 + g.rng.Intn(2000)
	volume := 10000 + g.rng.Int63n(100000)
	age := time.Duration(g.rng.Int63n(int64(time.Hour)))

	description := fmt.Sprintf("%s preferred stock with %.1f%% dividend yield", name, yield)

	return models.MPreferredStock{
		Ticker:        ticker,
		Name:          name,
		Price:         round2(price),
		Change:        round2(change),
		ChangePercent: round2(change / price * 100),
		DividendYield: round2(yield),
		MarketCap:     fmt.Sprintf("$%dM", capMillions),
		Volume:        volume,
		LastTrade:     now.Add(-age),
		Sector:        &sector,
		Description:   &description,
		IsActive:      true,
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// -----------------------------------------------------------------------------

// InitialMarketData is the seeded snapshot built from the index fallbacks.
func InitialMarketData(now time.Time) models.MMarketData {
	m := models.MMarketData{
		ID:                      1,
		PreferredAvgYield:       utils.FallbackPreferredAvgYield,
		PreferredAvgYieldChange: utils.FallbackPreferredAvgYieldChange,
		UpdatedAt:               now,
		DataStatus:              models.DataStatusFallback,
	}

	for _, idx := range utils.IndexFallbacks {
		SetIndex(&m, idx.Field, idx.Level, idx.Change)
		m.Sources = append(m.Sources, models.MIndexSource{
			Field:  idx.Field,
			Symbol: idx.Symbol,
			Status: models.QuoteStatusFallback,
			Reason: "seeded",
		})
	}
	return m
}

// SetIndex writes level and change into the snapshot field named by field.
func SetIndex(m *models.MMarketData, field string, level, change float64) {
	switch field {
	case utils.FieldSP500:
		m.SP500, m.SP500Change = level, change
	case utils.FieldDow:
		m.Dow, m.DowChange = level, change
	case utils.FieldNasdaq:
		m.Nasdaq, m.NasdaqChange = level, change
	case utils.FieldTreasury10y:
		m.Treasury10y, m.Treasury10yChange = level, change
	case utils.FieldVIX:
		m.VIX, m.VIXChange = level, change
	}
}
