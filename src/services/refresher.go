package services

import (
	"context"
	"time"

	"preferred-observer/src/helpers"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/models"
	"preferred-observer/src/utils"
)

const (
	newsRefreshAttempts = 3
	cleanupInterval     = 24 * time.Hour
)

// Refresher periodically overlays live quotes, recomputes the market snapshot
// and refreshes news while the market is open.
type Refresher struct {
	Stocks    *StockService
	Market    *MarketService
	News      *NewsService
	Archive   interfaces.IDatabase
	Scheduler *utils.MarketScheduler
	Errors    *helpers.ErrorHandler
	Logger    *logger.Logger

	Interval          time.Duration
	NewsEvery         int
	IgnoreMarketHours bool
	Tickers           []string

	ticks       int
	lastCleanup time.Time
}

// -----------------------------------------------------------------------------

func NewRefresher(
	cfg *models.MConfig,
	stocks *StockService,
	market *MarketService,
	news *NewsService,
	archive interfaces.IDatabase,
	log *logger.Logger,
) *Refresher {
	newsEvery := cfg.Refresher.NewsEvery
	if newsEvery <= 0 {
		newsEvery = 1
	}
	return &Refresher{
		Stocks:            stocks,
		Market:            market,
		News:              news,
		Archive:           archive,
		Scheduler:         utils.NewMarketScheduler(cfg.Refresher.CalendarSymbol, log),
		Errors:            helpers.NewErrorHandler(log),
		Logger:            log,
		Interval:          time.Duration(cfg.Refresher.IntervalSeconds) * time.Second,
		NewsEvery:         newsEvery,
		IgnoreMarketHours: cfg.Refresher.IgnoreMarketHours,
		Tickers:           cfg.Featured.OverlayTickers,
	}
}

// -----------------------------------------------------------------------------

// Run blocks until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	if r.Interval <= 0 {
		r.Logger.Warning("Refresher interval is not positive, not starting")
		return
	}

	r.Logger.Info("Refresher started, interval %s", r.Interval)
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("Refresher stopped")
			return
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick runs one refresh cycle and reports whether it did any work.
func (r *Refresher) Tick(ctx context.Context) bool {
	if !r.IgnoreMarketHours && !r.Scheduler.MarketOpen() {
		r.Logger.Debug("Market closed, skipping refresh")
		return false
	}

	r.ticks++
	updated := r.Stocks.OverlayLive(ctx, r.Tickers)
	snap := r.Market.Recompute(ctx)
	r.Logger.Debug("Refresh #%d: %d stocks overlaid, market %s", r.ticks, updated, snap.DataStatus)

	if r.ticks%r.NewsEvery == 0 {
		err := r.Errors.ExecuteWithRetry(ctx, "refresh news", newsRefreshAttempts, func(ctx context.Context) error {
			_, err := r.News.Refresh(ctx)
			return err
		})
		r.Errors.Handle(err, "news refresh")
	}

	r.cleanup()
	return true
}

func (r *Refresher) cleanup() {
	if r.Archive == nil {
		return
	}
	now := r.Scheduler.Now()
	if !r.lastCleanup.IsZero() && now.Sub(r.lastCleanup) < cleanupInterval {
		return
	}
	r.lastCleanup = now
	if err := r.Archive.CleanupOldData(); err != nil {
		r.Logger.Warning("Archive cleanup failed: %v", err)
	}
}
