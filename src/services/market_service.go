package services

import (
	"context"
	"time"

	"preferred-observer/src/events"
	"preferred-observer/src/generator"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/metrics"
	"preferred-observer/src/models"
	"preferred-observer/src/store"
	"preferred-observer/src/utils"

	"github.com/shopspring/decimal"
)

// MarketService builds and serves the market snapshot.
type MarketService struct {
	Store           *store.MemoryStore
	Quotes          interfaces.IQuoteFetcher
	Events          interfaces.IEventPublisher
	Archive         interfaces.IDatabase
	RecomputeOnRead bool
	Concurrency     int
	Logger          *logger.Logger
}

// -----------------------------------------------------------------------------

func NewMarketService(
	cfg *models.MConfig,
	st *store.MemoryStore,
	quotes interfaces.IQuoteFetcher,
	pub interfaces.IEventPublisher,
	archive interfaces.IDatabase,
	log *logger.Logger,
) *MarketService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &MarketService{
		Store:           st,
		Quotes:          quotes,
		Events:          pub,
		Archive:         archive,
		RecomputeOnRead: cfg.Market.RecomputeOnRead,
		Concurrency:     cfg.Network.ConcurrentRequests,
		Logger:          log,
	}
}

// -----------------------------------------------------------------------------

// Seed stores the fallback snapshot.
func (s *MarketService) Seed(now time.Time) models.MMarketData {
	return s.Store.SetMarketData(generator.InitialMarketData(now))
}

// -----------------------------------------------------------------------------

// FetchSnapshot computes a fresh snapshot without storing it. Indexes without
// a live quote keep their constant fallback.
func (s *MarketService) FetchSnapshot(ctx context.Context) models.MMarketData {
	symbols := make([]string, 0, len(utils.IndexFallbacks))
	for _, idx := range utils.IndexFallbacks {
		symbols = append(symbols, idx.Symbol)
	}
	results := fetchAll(ctx, s.Quotes, symbols, s.Concurrency)

	var snap models.MMarketData
	live := 0
	for _, idx := range utils.IndexFallbacks {
		res := results[idx.Symbol]
		src := models.MIndexSource{Field: idx.Field, Symbol: idx.Symbol, Status: res.Status, Provider: res.Provider, Reason: res.Reason}

		if res.IsLive() {
			generator.SetIndex(&snap, idx.Field, res.Quote.Price, res.Quote.ChangePercent)
			live++
		} else {
			generator.SetIndex(&snap, idx.Field, idx.Level, idx.Change)
			src.Status = models.QuoteStatusFallback
		}
		snap.Sources = append(snap.Sources, src)
	}

	switch live {
	case len(utils.IndexFallbacks):
		snap.DataStatus = models.DataStatusLive
	case 0:
		snap.DataStatus = models.DataStatusFallback
	default:
		snap.DataStatus = models.DataStatusPartial
	}

	snap.PreferredAvgYield, snap.PreferredAvgYieldChange = s.preferredYield()
	s.archiveQuotes(liveQuotes(results))
	return snap
}

func (s *MarketService) preferredYield() (float64, float64) {
	avg, ok := s.Store.AverageYield()
	if !ok {
		return utils.FallbackPreferredAvgYield, utils.FallbackPreferredAvgYieldChange
	}

	prev, err := s.Store.GetMarketData()
	if err != nil {
		return avg, utils.FallbackPreferredAvgYieldChange
	}
	delta := decimal.NewFromFloat(avg).Sub(decimal.NewFromFloat(prev.PreferredAvgYield)).Round(2)
	return avg, delta.InexactFloat64()
}

// -----------------------------------------------------------------------------

// Recompute fetches, stores and publishes a new snapshot.
func (s *MarketService) Recompute(ctx context.Context) models.MMarketData {
	saved := s.Store.SetMarketData(s.FetchSnapshot(ctx))
	metrics.MarketSnapshots.WithLabelValues(saved.DataStatus).Inc()
	s.archiveSnapshot(saved)
	s.publish(ctx, saved)
	return saved
}

// Current returns a recomputed snapshot or the stored one, depending on config.
func (s *MarketService) Current(ctx context.Context) (models.MMarketData, error) {
	if s.RecomputeOnRead {
		return s.Recompute(ctx), nil
	}
	return s.Store.GetMarketData()
}

// Replace stores a caller-provided snapshot.
func (s *MarketService) Replace(ctx context.Context, m models.MMarketData) models.MMarketData {
	m.DataStatus = models.DataStatusManual
	m.Sources = nil
	saved := s.Store.SetMarketData(m)
	metrics.MarketSnapshots.WithLabelValues(saved.DataStatus).Inc()
	s.archiveSnapshot(saved)
	s.publish(ctx, saved)
	return saved
}

// -----------------------------------------------------------------------------

func (s *MarketService) archiveQuotes(quotes []models.MQuote) {
	if s.Archive == nil || len(quotes) == 0 {
		return
	}
	if err := s.Archive.SaveQuotes(quotes); err != nil {
		s.Logger.Warning("Failed to archive index quotes: %v", err)
	}
}

func (s *MarketService) archiveSnapshot(m models.MMarketData) {
	if s.Archive == nil {
		return
	}
	if err := s.Archive.SaveMarketSnapshot(m); err != nil {
		s.Logger.Warning("Failed to archive market snapshot: %v", err)
	}
}

func (s *MarketService) publish(ctx context.Context, m models.MMarketData) {
	if err := s.Events.Publish(ctx, events.New(models.EventMarketUpdated, "", m)); err != nil {
		s.Logger.Warning("Failed to publish market update: %v", err)
	}
}
