package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"preferred-observer/src/config"
	"preferred-observer/src/generator"
	"preferred-observer/src/helpers"
	"preferred-observer/src/interfaces/mocks"
	"preferred-observer/src/logger"
	"preferred-observer/src/models"
	"preferred-observer/src/store"
	"preferred-observer/src/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recorder struct {
	mu     sync.Mutex
	events []models.MEvent
}

func (r *recorder) Publish(_ context.Context, e models.MEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type archiveStub struct {
	mu        sync.Mutex
	quotes    []models.MQuote
	snapshots []models.MMarketData
	cleanups  int
}

func (a *archiveStub) Initialize() error { return nil }
func (a *archiveStub) Close() error      { return nil }

func (a *archiveStub) SaveQuotes(q []models.MQuote) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.quotes = append(a.quotes, q...)
	return nil
}

func (a *archiveStub) SaveMarketSnapshot(m models.MMarketData) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snapshots = append(a.snapshots, m)
	return nil
}

func (a *archiveStub) CleanupOldData() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cleanups++
	return nil
}

func live(symbol string, price, change, pct float64) models.MQuoteResult {
	return models.Live(&models.MQuote{Symbol: symbol, Price: price, Change: change, ChangePercent: pct, LastTrade: time.Now(), Provider: "finnhub"})
}

func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore(logger.NewNop())
	for _, s := range generator.New(42).Stocks(time.Now()) {
		st.Upsert(s)
	}
	return st
}

// -----------------------------------------------------------------------------

func TestSearchLiveLocalHit(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), gomock.Any()).Times(0)
	svc, err := NewStockService(config.Default(), seededStore(t), fetcher, nil, nil, logger.NewNop())
	require.NoError(t, err)

	// Act
	res, err := svc.SearchLive(context.Background(), " jpm-pa ")

	// Assert
	require.NoError(t, err)
	require.Equal(t, models.SearchTypePreferred, res.Type)
	require.Equal(t, "JPM-PA", res.Data.Ticker)
	require.Nil(t, res.Status)
}

func TestSearchLiveRegularQuote(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), "AAPL").Return(live("AAPL", 210.5, 1.5, 0.72))
	svc, err := NewStockService(config.Default(), seededStore(t), fetcher, nil, nil, logger.NewNop())
	require.NoError(t, err)

	res, err := svc.SearchLive(context.Background(), "aapl")

	require.NoError(t, err)
	require.Equal(t, models.SearchTypeRegular, res.Type)
	require.Equal(t, "AAPL Stock", res.Data.Name)
	require.Equal(t, 210.5, res.Data.Price)
	require.Equal(t, "N/A", res.Data.MarketCap)
	require.Equal(t, "Unknown", *res.Data.Sector)
	require.Equal(t, "Real-time data for AAPL", *res.Data.Description)
	require.Zero(t, res.Data.Volume)
	require.Zero(t, res.Data.DividendYield)
	require.True(t, res.Data.IsActive)
	require.Equal(t, models.QuoteStatusLive, res.Status.Status)
}

func TestSearchLiveFallbackIsNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), "NOPE-PZ").Return(models.Fallback("all providers failed"))
	svc, err := NewStockService(config.Default(), seededStore(t), fetcher, nil, nil, logger.NewNop())
	require.NoError(t, err)

	_, err = svc.SearchLive(context.Background(), "NOPE-PZ")

	require.ErrorIs(t, err, helpers.ErrStockNotFound)
}

func TestFeaturedOverlaysLiveQuotes(t *testing.T) {
	t.Parallel()

	// Arrange: only BAC-PB gets a live quote.
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), "BAC-PB").Return(live("BAC-PB", 24.11, 0.05, 0.21))
	fetcher.EXPECT().FetchQuote(gomock.Any(), gomock.Not("BAC-PB")).Return(models.Fallback("down")).Times(5)

	archive := &archiveStub{}
	st := seededStore(t)
	svc, err := NewStockService(config.Default(), st, fetcher, nil, archive, logger.NewNop())
	require.NoError(t, err)

	// Act
	featured := svc.Featured(context.Background())

	// Assert
	require.LessOrEqual(t, len(featured), 6)
	for _, s := range featured {
		require.Greater(t, s.DividendYield, 6.0)
	}
	bac, err := st.Get("BAC-PB")
	require.NoError(t, err)
	require.Equal(t, 24.11, bac.Price)
	require.Equal(t, 0.21, bac.ChangePercent)
	require.Len(t, archive.quotes, 1)
}

func TestUpdatePatchWinsOverLiveQuote(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), "GS-PA").Return(live("GS-PA", 22.0, -0.1, -0.45))
	pub := &recorder{}
	svc, err := NewStockService(config.Default(), seededStore(t), fetcher, pub, nil, logger.NewNop())
	require.NoError(t, err)
	price := 23.5

	// Act
	got, err := svc.Update(context.Background(), "GS-PA", models.MStockPatch{Price: &price})

	// Assert
	require.NoError(t, err)
	require.Equal(t, 23.5, got.Price)
	require.Equal(t, -0.45, got.ChangePercent)
	require.Equal(t, []string{models.EventStockUpdated}, pub.types())
}

func TestUpdateUnknownTicker(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), gomock.Any()).Times(0)
	svc, err := NewStockService(config.Default(), seededStore(t), fetcher, nil, nil, logger.NewNop())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "NOPE-PZ", models.MStockPatch{})

	require.ErrorIs(t, err, helpers.ErrStockNotFound)
}

func TestUpsertPublishesEvent(t *testing.T) {
	t.Parallel()

	pub := &recorder{}
	st := store.NewMemoryStore(logger.NewNop())
	svc, err := NewStockService(config.Default(), st, nil, pub, nil, logger.NewNop())
	require.NoError(t, err)

	saved := svc.Upsert(context.Background(), models.MPreferredStock{Ticker: "XYZ-PA", Name: "XYZ", IsActive: true})

	require.Equal(t, 1, saved.ID)
	require.Equal(t, []string{models.EventStockUpserted}, pub.types())
}

func TestNewStockServiceRejectsUnknownPolicy(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Featured.Policy = "random"
	_, err := NewStockService(cfg, store.NewMemoryStore(logger.NewNop()), nil, nil, nil, logger.NewNop())
	require.Error(t, err)
}

// -----------------------------------------------------------------------------

func TestNewsRefreshReplacesAndRenumbers(t *testing.T) {
	t.Parallel()

	// Arrange
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockINewsProvider(ctrl)
	now := time.Now()
	fresh := []models.MNewsArticle{
		{Title: "Fresh one", Excerpt: "a", Source: "Finnhub", PublishedAt: now.Add(-time.Hour)},
		{Title: "Fresh two", Excerpt: "b", Source: "Finnhub", PublishedAt: now.Add(-2 * time.Hour)},
	}
	provider.EXPECT().FetchMultipleCompanyNews(gomock.Any(), config.Default().News.Symbols).Return(fresh, nil).Times(2)

	st := store.NewMemoryStore(logger.NewNop())
	for _, a := range generator.SampleNews(now) {
		st.CreateNews(a)
	}
	pub := &recorder{}
	svc := NewNewsService(config.Default(), st, provider, pub, logger.NewNop())

	// Act
	first, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	keys := []string{st.ListNews()[0].Key, st.ListNews()[1].Key}
	second, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	// Assert
	require.Equal(t, 2, first)
	require.Equal(t, 2, second)
	latest := svc.Latest(10)
	require.Len(t, latest, 2)
	require.Equal(t, 1, latest[0].ID)
	require.Equal(t, "Fresh one", latest[0].Title)
	require.Equal(t, keys, []string{latest[0].Key, latest[1].Key})
	require.Equal(t, []string{models.EventNewsRefreshed, models.EventNewsRefreshed}, pub.types())
}

func TestNewsRefreshEmpty(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		keepOnEmpty bool
		want        int
		wantEvents  []string
	}{
		"clears by default": {keepOnEmpty: false, want: 0, wantEvents: []string{models.EventNewsRefreshed}},
		"keeps when asked":  {keepOnEmpty: true, want: 4, wantEvents: []string{}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Arrange
			ctrl := gomock.NewController(t)
			provider := mocks.NewMockINewsProvider(ctrl)
			provider.EXPECT().FetchMultipleCompanyNews(gomock.Any(), gomock.Any()).Return(nil, nil)

			cfg := config.Default()
			cfg.News.KeepOnEmpty = tc.keepOnEmpty
			st := store.NewMemoryStore(logger.NewNop())
			for _, a := range generator.SampleNews(time.Now()) {
				st.CreateNews(a)
			}
			pub := &recorder{}
			svc := NewNewsService(cfg, st, provider, pub, logger.NewNop())

			// Act
			count, err := svc.Refresh(context.Background())

			// Assert
			require.NoError(t, err)
			require.Equal(t, tc.want, count)
			require.Equal(t, tc.want, st.NewsCount())
			require.Equal(t, tc.wantEvents, pub.types())
		})
	}
}

func TestNewsRefreshPropagatesCancellation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := mocks.NewMockINewsProvider(ctrl)
	provider.EXPECT().FetchMultipleCompanyNews(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)
	svc := NewNewsService(config.Default(), store.NewMemoryStore(logger.NewNop()), provider, nil, logger.NewNop())

	_, err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewsGetByIDOrKey(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore(logger.NewNop())
	svc := NewNewsService(config.Default(), st, nil, nil, logger.NewNop())
	created := svc.Create(context.Background(), models.MNewsArticle{Title: "Rates", Excerpt: "x", Source: "Reuters", PublishedAt: time.Now()})

	byID, err := svc.Get("1")
	require.NoError(t, err)
	byKey, err := svc.Get(created.Key)
	require.NoError(t, err)
	require.Equal(t, byID, byKey)

	_, err = svc.Get("99")
	require.ErrorIs(t, err, helpers.ErrArticleNotFound)
	_, err = svc.Get("")
	require.ErrorIs(t, err, helpers.ErrArticleNotFound)
}

// -----------------------------------------------------------------------------

func TestMarketSnapshotPartial(t *testing.T) {
	t.Parallel()

	// Arrange: SPY is live, everything else falls back.
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), "SPY").Return(live("SPY", 6301.2, 12.4, 0.2))
	fetcher.EXPECT().FetchQuote(gomock.Any(), gomock.Not("SPY")).Return(models.Fallback("down")).Times(4)

	st := store.NewMemoryStore(logger.NewNop())
	archive := &archiveStub{}
	svc := NewMarketService(config.Default(), st, fetcher, nil, archive, logger.NewNop())

	// Act
	snap, err := svc.Current(context.Background())

	// Assert
	require.NoError(t, err)
	require.Equal(t, models.DataStatusPartial, snap.DataStatus)
	require.Equal(t, 6301.2, snap.SP500)
	require.Equal(t, 0.2, snap.SP500Change)
	require.Equal(t, 44500.0, snap.Dow)
	require.Equal(t, 4.407, snap.Treasury10y)
	require.Equal(t, utils.FallbackPreferredAvgYield, snap.PreferredAvgYield)
	require.Equal(t, utils.FallbackPreferredAvgYieldChange, snap.PreferredAvgYieldChange)
	require.Equal(t, 1, snap.ID)
	require.Len(t, snap.Sources, 5)
	require.Len(t, archive.snapshots, 1)
	require.Len(t, archive.quotes, 1)
}

func TestMarketYieldChangeIsDeltaFromPrevious(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), gomock.Any()).Return(models.Fallback("down")).AnyTimes()

	st := store.NewMemoryStore(logger.NewNop())
	st.Upsert(models.MPreferredStock{Ticker: "A-PA", Name: "A", DividendYield: 6.0})
	st.Upsert(models.MPreferredStock{Ticker: "B-PA", Name: "B", DividendYield: 7.0})
	svc := NewMarketService(config.Default(), st, fetcher, nil, nil, logger.NewNop())

	first := svc.Recompute(context.Background())
	require.Equal(t, models.DataStatusFallback, first.DataStatus)
	require.Equal(t, 6.5, first.PreferredAvgYield)
	require.Equal(t, 0.15, first.PreferredAvgYieldChange)

	st.Upsert(models.MPreferredStock{Ticker: "C-PA", Name: "C", DividendYield: 8.0})
	second := svc.Recompute(context.Background())
	require.Equal(t, 7.0, second.PreferredAvgYield)
	require.Equal(t, 0.5, second.PreferredAvgYieldChange)
}

func TestMarketReplaceAndStoredRead(t *testing.T) {
	t.Parallel()

	// Arrange
	cfg := config.Default()
	cfg.Market.RecomputeOnRead = false
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), gomock.Any()).Times(0)
	pub := &recorder{}
	svc := NewMarketService(cfg, store.NewMemoryStore(logger.NewNop()), fetcher, pub, nil, logger.NewNop())

	_, err := svc.Current(context.Background())
	require.ErrorIs(t, err, helpers.ErrMarketDataNotFound)

	// Act
	svc.Replace(context.Background(), models.MMarketData{ID: 7, SP500: 6000, VIX: 20})
	got, err := svc.Current(context.Background())

	// Assert
	require.NoError(t, err)
	require.Equal(t, 1, got.ID)
	require.Equal(t, 6000.0, got.SP500)
	require.Equal(t, models.DataStatusManual, got.DataStatus)
	require.Equal(t, []string{models.EventMarketUpdated}, pub.types())
}

// -----------------------------------------------------------------------------

func newRefresher(t *testing.T, cfg *models.MConfig, fetcher *mocks.MockIQuoteFetcher, provider *mocks.MockINewsProvider, archive *archiveStub) *Refresher {
	t.Helper()
	st := seededStore(t)
	stocks, err := NewStockService(cfg, st, fetcher, nil, archive, logger.NewNop())
	require.NoError(t, err)
	market := NewMarketService(cfg, st, fetcher, nil, archive, logger.NewNop())
	news := NewNewsService(cfg, st, provider, nil, logger.NewNop())
	return NewRefresher(cfg, stocks, market, news, archive, logger.NewNop())
}

func TestRefresherSkipsWhenMarketClosed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), gomock.Any()).Times(0)
	provider := mocks.NewMockINewsProvider(ctrl)

	r := newRefresher(t, config.Default(), fetcher, provider, &archiveStub{})
	r.Scheduler.Now = func() time.Time { return time.Date(2025, 7, 12, 15, 0, 0, 0, time.UTC) }

	require.False(t, r.Tick(context.Background()))
}

func TestRefresherTickRefreshesEverything(t *testing.T) {
	t.Parallel()

	// Arrange
	cfg := config.Default()
	cfg.Refresher.IgnoreMarketHours = true
	cfg.Refresher.NewsEvery = 2

	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockIQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchQuote(gomock.Any(), gomock.Any()).Return(models.Fallback("down")).AnyTimes()
	provider := mocks.NewMockINewsProvider(ctrl)
	provider.EXPECT().FetchMultipleCompanyNews(gomock.Any(), gomock.Any()).
		Return([]models.MNewsArticle{{Title: "t", Excerpt: "e", Source: "s", PublishedAt: time.Now()}}, nil).
		Times(1)
	archive := &archiveStub{}
	r := newRefresher(t, cfg, fetcher, provider, archive)

	// Act
	require.True(t, r.Tick(context.Background()))
	require.True(t, r.Tick(context.Background()))

	// Assert: news on the second tick only, cleanup once per day.
	require.Len(t, archive.snapshots, 2)
	require.Equal(t, 1, archive.cleanups)
	require.Equal(t, 1, r.News.Store.NewsCount())
}

func TestRefresherRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Refresher.IntervalSeconds = 3600
	ctrl := gomock.NewController(t)
	r := newRefresher(t, cfg, mocks.NewMockIQuoteFetcher(ctrl), mocks.NewMockINewsProvider(ctrl), &archiveStub{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher did not stop")
	}
}
