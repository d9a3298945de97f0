package store

import (
	"strconv"
	"testing"
	"time"

	"preferred-observer/src/config"
	"preferred-observer/src/helpers"
	"preferred-observer/src/logger"
	"preferred-observer/src/models"

	"github.com/stretchr/testify/require"
)

func newTestStore() *MemoryStore {
	return NewMemoryStore(logger.NewNop())
}

func stock(ticker, name string, yield, changePercent float64) models.MPreferredStock {
	return models.MPreferredStock{
		Ticker:        ticker,
		Name:          name,
		Price:         25,
		DividendYield: yield,
		ChangePercent: changePercent,
		MarketCap:     "$1.0B",
		IsActive:      true,
	}
}

func ptr[T any](v T) *T { return &v }

func TestGetAfterUpsert(t *testing.T) {
	t.Parallel()

	// Arrange
	s := newTestStore()
	in := stock("XYZ-PA", "XYZ Corp Preferred Series A", 6.25, 0.4)
	in.Volume = 12000

	// Act
	saved := s.Upsert(in)
	got, err := s.Get("XYZ-PA")

	// Assert
	require.NoError(t, err)
	require.Equal(t, 1, saved.ID)
	require.Equal(t, saved, got)
	require.Equal(t, "XYZ Corp Preferred Series A", got.Name)
	require.EqualValues(t, 12000, got.Volume)
	require.False(t, got.UpdatedAt.IsZero())
}

func TestUpsertOverwriteKeepsID(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	first := s.Upsert(stock("BAC-PB", "Bank of America Preferred Series B", 6.1, 0.1))
	s.Upsert(stock("JPM-PA", "JPMorgan Chase Preferred Series A", 5.2, 0.2))

	second := s.Upsert(stock("BAC-PB", "renamed", 7.0, -0.5))

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 2, s.Len())
	got, _ := s.Get("BAC-PB")
	require.Equal(t, "renamed", got.Name)
}

func TestGetUnknownTicker(t *testing.T) {
	t.Parallel()

	_, err := newTestStore().Get("NOPE-PZ")
	require.ErrorIs(t, err, helpers.ErrStockNotFound)
}

func TestSearchMatchesTickerOrName(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	s.Upsert(stock("JPM-PA", "JPMorgan Chase Preferred Series A", 5.0, 0))
	s.Upsert(stock("JPM-PB", "JPMorgan Chase Preferred Series B", 5.0, 0))
	s.Upsert(stock("BAC-PA", "Bank of America Preferred Series A", 5.0, 0))
	s.Upsert(stock("USB-PA", "U.S. Bancorp Preferred Series A", 5.0, 0))

	jpm := s.Search("JPM")
	require.Len(t, jpm, 2)
	for _, st := range jpm {
		require.Contains(t, st.Ticker, "JPM")
	}

	// Case-insensitive match on the name only.
	byName := s.Search("bancorp")
	require.Len(t, byName, 1)
	require.Equal(t, "USB-PA", byName[0].Ticker)

	require.Len(t, s.Search(""), 4)
	require.Empty(t, s.Search("zzz"))
}

func TestTopPerformersOrderAndCap(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	for i := 0; i < 15; i++ {
		s.Upsert(stock("T-P"+strconv.Itoa(i), "T", 5, float64(i%7)-3))
	}

	top := s.TopPerformers(10)
	require.Len(t, top, 10)
	for i := 1; i < len(top); i++ {
		require.GreaterOrEqual(t, top[i-1].ChangePercent, top[i].ChangePercent)
	}

	require.Len(t, s.TopPerformers(0), DefaultTopPerformersLimit)
	require.Len(t, s.TopPerformers(50), 15)
}

func TestUpdateMergesPatch(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	orig := s.Upsert(stock("WFC-PC", "Wells Fargo Preferred Series C", 6.4, 0.3))

	updated, err := s.Update("WFC-PC", models.MStockPatch{
		Price:       ptr(26.10),
		Description: ptr("updated"),
	})
	require.NoError(t, err)

	require.Equal(t, orig.ID, updated.ID)
	require.Equal(t, "WFC-PC", updated.Ticker)
	require.Equal(t, 26.10, updated.Price)
	require.Equal(t, "updated", *updated.Description)
	// Untouched fields survive.
	require.Equal(t, orig.Name, updated.Name)
	require.Equal(t, orig.DividendYield, updated.DividendYield)
}

func TestUpdateUnknownLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	s.Upsert(stock("GS-PA", "Goldman Sachs Preferred Series A", 6.0, 0))

	_, err := s.Update("NOPE-PZ", models.MStockPatch{Price: ptr(1.0)})

	require.ErrorIs(t, err, helpers.ErrStockNotFound)
	require.Equal(t, 1, s.Len())
	_, err = s.Get("NOPE-PZ")
	require.ErrorIs(t, err, helpers.ErrStockNotFound)
}

func TestFeaturedPolicies(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	yields := []float64{5.9, 6.0, 6.1, 7.5, 6.8, 7.9, 6.2, 7.1, 6.05}
	for i, y := range yields {
		s.Upsert(stock("F-P"+strconv.Itoa(i), "F", y, 0))
	}

	top := s.Featured(TopByYield{Threshold: 6.0, Count: 6})
	require.Len(t, top, 6)
	require.Equal(t, 7.9, top[0].DividendYield)
	for i := range top {
		require.Greater(t, top[i].DividendYield, 6.0)
		if i > 0 {
			require.GreaterOrEqual(t, top[i-1].DividendYield, top[i].DividendYield)
		}
	}

	curated := s.Featured(Curated{Tickers: []string{"F-P3", "MISSING", "F-P0"}})
	require.Len(t, curated, 2)
	require.Equal(t, "F-P3", curated[0].Ticker)
	require.Equal(t, "F-P0", curated[1].Ticker)
}

func TestPolicyFromConfig(t *testing.T) {
	t.Parallel()

	p, err := PolicyFromConfig(config.Default().Featured)
	require.NoError(t, err)
	require.Equal(t, TopByYield{Threshold: 6.0, Count: 6}, p)

	p, err = PolicyFromConfig(models.MFeaturedConfig{Policy: PolicyCurated, Tickers: []string{"C-PB"}})
	require.NoError(t, err)
	require.Equal(t, PolicyCurated, p.Name())

	_, err = PolicyFromConfig(models.MFeaturedConfig{Policy: "random"})
	require.Error(t, err)
}

func TestAverageYield(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	_, ok := s.AverageYield()
	require.False(t, ok)

	s.Upsert(stock("A-PA", "A", 6.0, 0))
	s.Upsert(stock("B-PA", "B", 7.0, 0))
	s.Upsert(stock("C-PA", "C", 6.335, 0))

	avg, ok := s.AverageYield()
	require.True(t, ok)
	require.Equal(t, 6.45, avg)
}

func article(title string, age time.Duration, tickers ...string) models.MNewsArticle {
	return models.MNewsArticle{
		Title:          title,
		Excerpt:        title,
		Source:         "Reuters",
		PublishedAt:    time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC).Add(-age),
		RelatedTickers: tickers,
		IsActive:       true,
	}
}

func TestNewsQueries(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	oldest := s.CreateNews(article("oldest", 8*time.Hour, "JPM-PA"))
	s.CreateNews(article("newest", 1*time.Hour, "BAC-PB", "JPM-PA"))
	s.CreateNews(article("middle", 4*time.Hour, "BAC-PB"))

	require.Equal(t, 1, oldest.ID)
	require.NotEmpty(t, oldest.Key)

	latest := s.LatestNews(2)
	require.Len(t, latest, 2)
	require.Equal(t, "newest", latest[0].Title)
	require.Equal(t, "middle", latest[1].Title)
	require.Empty(t, s.LatestNews(0))
	require.NotNil(t, s.LatestNews(0))
	require.Len(t, s.LatestNews(10), 3)

	jpm := s.NewsByTicker("JPM-PA")
	require.Len(t, jpm, 2)
	require.Equal(t, "newest", jpm[0].Title)
	require.Empty(t, s.NewsByTicker("JPM"))

	byKey, err := s.GetNewsByKey(oldest.Key)
	require.NoError(t, err)
	require.Equal(t, oldest.ID, byKey.ID)

	_, err = s.GetNews(99)
	require.ErrorIs(t, err, helpers.ErrArticleNotFound)
}

func TestReplaceNewsRenumbersAndKeepsKeys(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	s.CreateNews(article("stale", time.Hour))
	batch := []models.MNewsArticle{
		article("one", time.Hour, "C-PB"),
		article("two", 2*time.Hour, "C-PB"),
	}

	first := s.ReplaceNews(batch)
	second := s.ReplaceNews(batch)

	require.Len(t, first, 2)
	require.Equal(t, 1, first[0].ID)
	require.Equal(t, 2, first[1].ID)
	require.Equal(t, first, second)
	require.Equal(t, 2, s.NewsCount())

	_, err := s.GetNewsByKey(article("stale", time.Hour).ContentKey())
	require.ErrorIs(t, err, helpers.ErrArticleNotFound)

	// New articles continue after the replaced batch.
	created := s.CreateNews(article("three", 0))
	require.Equal(t, 3, created.ID)
}

func TestMarketData(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	_, err := s.GetMarketData()
	require.ErrorIs(t, err, helpers.ErrMarketDataNotFound)

	saved := s.SetMarketData(models.MMarketData{ID: 42, SP500: 6259.74, DataStatus: models.DataStatusManual})
	require.Equal(t, 1, saved.ID)

	got, err := s.GetMarketData()
	require.NoError(t, err)
	require.Equal(t, 6259.74, got.SP500)
	require.Equal(t, models.DataStatusManual, got.DataStatus)
}
