package services

import (
	"context"
	"strings"
	"time"

	"preferred-observer/src/events"
	"preferred-observer/src/helpers"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/models"
	"preferred-observer/src/store"
)

const (
	regularMarketCap = "N/A"
	regularSector    = "Unknown"
)

// StockService implements the preferred stock operations on top of the store.
type StockService struct {
	Store          *store.MemoryStore
	Quotes         interfaces.IQuoteFetcher
	Events         interfaces.IEventPublisher
	Archive        interfaces.IDatabase
	Policy         store.FeaturedPolicy
	OverlayTickers []string
	TopLimit       int
	Concurrency    int
	Logger         *logger.Logger
}

// -----------------------------------------------------------------------------

func NewStockService(
	cfg *models.MConfig,
	st *store.MemoryStore,
	quotes interfaces.IQuoteFetcher,
	pub interfaces.IEventPublisher,
	archive interfaces.IDatabase,
	log *logger.Logger,
) (*StockService, error) {
	policy, err := store.PolicyFromConfig(cfg.Featured)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		pub = events.Nop{}
	}

	return &StockService{
		Store:          st,
		Quotes:         quotes,
		Events:         pub,
		Archive:        archive,
		Policy:         policy,
		OverlayTickers: cfg.Featured.OverlayTickers,
		TopLimit:       cfg.Featured.TopPerformers,
		Concurrency:    cfg.Network.ConcurrentRequests,
		Logger:         log,
	}, nil
}

// -----------------------------------------------------------------------------

// List returns the search result for a non-empty query, every stock otherwise.
func (s *StockService) List(search string) []models.MPreferredStock {
	if strings.TrimSpace(search) != "" {
		return s.Store.Search(search)
	}
	return s.Store.List()
}

func (s *StockService) Get(ticker string) (models.MPreferredStock, error) {
	return s.Store.Get(ticker)
}

func (s *StockService) TopPerformers() []models.MPreferredStock {
	return s.Store.TopPerformers(s.TopLimit)
}

// -----------------------------------------------------------------------------

// Featured refreshes the overlay tickers with live quotes, then applies the policy.
func (s *StockService) Featured(ctx context.Context) []models.MPreferredStock {
	s.OverlayLive(ctx, s.OverlayTickers)
	return s.Store.Featured(s.Policy)
}

// OverlayLive writes live price fields onto the known tickers. Failures are
// ignored. Returns the number of stocks updated.
func (s *StockService) OverlayLive(ctx context.Context, tickers []string) int {
	known := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if _, err := s.Store.Get(t); err == nil {
			known = append(known, t)
		}
	}
	if len(known) == 0 {
		return 0
	}

	results := fetchAll(ctx, s.Quotes, known, s.Concurrency)

	updated := 0
	for _, ticker := range known {
		res := results[ticker]
		if !res.IsLive() {
			continue
		}
		if _, err := s.Store.Update(ticker, quotePatch(res.Quote)); err == nil {
			updated++
		}
	}

	s.archiveQuotes(liveQuotes(results))
	if updated > 0 {
		s.Logger.Debug("Overlaid live quotes on %d/%d stocks", updated, len(known))
	}
	return updated
}

// -----------------------------------------------------------------------------

// Upsert stores the stock keyed by ticker, overwriting any prior record.
func (s *StockService) Upsert(ctx context.Context, stock models.MPreferredStock) models.MPreferredStock {
	saved := s.Store.Upsert(stock)
	s.publish(ctx, models.EventStockUpserted, saved.Ticker, saved)
	return saved
}

// Update merges a live quote and then the patch onto an existing stock. The
// patch wins on overlapping fields.
func (s *StockService) Update(ctx context.Context, ticker string, patch models.MStockPatch) (models.MPreferredStock, error) {
	if _, err := s.Store.Get(ticker); err != nil {
		return models.MPreferredStock{}, err
	}

	merged := patch
	if res := s.Quotes.FetchQuote(ctx, ticker); res.IsLive() {
		merged = overridePatch(quotePatch(res.Quote), patch)
		s.archiveQuotes([]models.MQuote{*res.Quote})
	}

	updated, err := s.Store.Update(ticker, merged)
	if err != nil {
		return models.MPreferredStock{}, err
	}
	s.publish(ctx, models.EventStockUpdated, updated.Ticker, updated)
	return updated, nil
}

// -----------------------------------------------------------------------------

// SearchLive resolves a ticker locally first and falls back to a live quote.
func (s *StockService) SearchLive(ctx context.Context, ticker string) (models.MSearchResult, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	if stock, err := s.Store.Get(ticker); err == nil {
		return models.MSearchResult{Type: models.SearchTypePreferred, Data: stock}, nil
	}

	res := s.Quotes.FetchQuote(ctx, ticker)
	if !res.IsLive() {
		s.Logger.Debug("No live quote for %s: %s", ticker, res.Reason)
		return models.MSearchResult{}, helpers.ErrStockNotFound
	}

	return models.MSearchResult{
		Type:   models.SearchTypeRegular,
		Data:   regularStock(ticker, res.Quote),
		Status: &res,
	}, nil
}

func regularStock(ticker string, q *models.MQuote) models.MPreferredStock {
	sector := regularSector
	description := "Real-time data for " + ticker
	return models.MPreferredStock{
		Ticker:        ticker,
		Name:          ticker + " Stock",
		Price:         q.Price,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		MarketCap:     regularMarketCap,
		LastTrade:     q.LastTrade,
		Sector:        &sector,
		Description:   &description,
		IsActive:      true,
		UpdatedAt:     time.Now(),
	}
}

// -----------------------------------------------------------------------------

func quotePatch(q *models.MQuote) models.MStockPatch {
	price, change, pct, last := q.Price, q.Change, q.ChangePercent, q.LastTrade
	return models.MStockPatch{
		Price:         &price,
		Change:        &change,
		ChangePercent: &pct,
		LastTrade:     &last,
	}
}

// overridePatch returns base with every non-nil field of top applied over it.
func overridePatch(base, top models.MStockPatch) models.MStockPatch {
	if top.Name != nil {
		base.Name = top.Name
	}
	if top.Price != nil {
		base.Price = top.Price
	}
	if top.Change != nil {
		base.Change = top.Change
	}
	if top.ChangePercent != nil {
		base.ChangePercent = top.ChangePercent
	}
	if top.DividendYield != nil {
		base.DividendYield = top.DividendYield
	}
	if top.MarketCap != nil {
		base.MarketCap = top.MarketCap
	}
	if top.Volume != nil {
		base.Volume = top.Volume
	}
	if top.LastTrade != nil {
		base.LastTrade = top.LastTrade
	}
	if top.Sector != nil {
		base.Sector = top.Sector
	}
	if top.Description != nil {
		base.Description = top.Description
	}
	if top.IsActive != nil {
		base.IsActive = top.IsActive
	}
	return base
}

// -----------------------------------------------------------------------------

func (s *StockService) archiveQuotes(quotes []models.MQuote) {
	if s.Archive == nil || len(quotes) == 0 {
		return
	}
	if err := s.Archive.SaveQuotes(quotes); err != nil {
		s.Logger.Warning("Failed to archive %d quotes: %v", len(quotes), err)
	}
}

func (s *StockService) publish(ctx context.Context, eventType, ticker string, payload interface{}) {
	if err := s.Events.Publish(ctx, events.New(eventType, ticker, payload)); err != nil {
		s.Logger.Warning("Failed to publish %s: %v", eventType, err)
	}
}
