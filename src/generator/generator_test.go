package generator

import (
	"strings"
	"testing"
	"time"

	"preferred-observer/src/models"

	"github.com/stretchr/testify/require"
)

var refTime = time.Date(2025, 7, 9, 15, 0, 0, 0, time.UTC)

func TestSameSeedSameUniverse(t *testing.T) {
	t.Parallel()

	a := New(42).Stocks(refTime)
	b := New(42).Stocks(refTime)
	c := New(43).Stocks(refTime)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestTickersAreUnique(t *testing.T) {
	t.Parallel()

	tickers := Tickers()
	seen := make(map[string]bool, len(tickers))
	for _, tk := range tickers {
		require.False(t, seen[tk], "duplicate ticker %s", tk)
		seen[tk] = true
	}

	require.Len(t, tickers, 890)
	require.True(t, seen["BAC-PU"])
	require.False(t, seen["BAC-PA"])
	require.True(t, seen["AXP-PJ"])
	require.Equal(t, "BAC-PB", tickers[0])
}

func TestGeneratedValueRanges(t *testing.T) {
	t.Parallel()

	for _, s := range New(7).Stocks(refTime) {
		require.GreaterOrEqual(t, s.Price, 20.0)
		require.LessOrEqual(t, s.Price, 35.0)
		require.GreaterOrEqual(t, s.Change, -1.0)
		require.LessOrEqual(t, s.Change, 1.0)
		require.GreaterOrEqual(t, s.DividendYield, 4.0)
		require.LessOrEqual(t, s.DividendYield, 8.0)
		require.GreaterOrEqual(t, s.Volume, int64(10000))
		require.Less(t, s.Volume, int64(110000))
		require.True(t, strings.HasPrefix(s.MarketCap, "$"))
		require.True(t, strings.HasSuffix(s.MarketCap, "M"))
		require.False(t, s.LastTrade.After(refTime))
		require.True(t, s.LastTrade.After(refTime.Add(-time.Hour)))
		require.True(t, s.IsActive)
		require.NotNil(t, s.Sector)
		require.Contains(t, *s.Description, "preferred stock with")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	name, sector := Describe("JPM-PA")
	require.Equal(t, "JPMorgan Chase Preferred Series A", name)
	require.Equal(t, "Financial Services", sector)

	name, sector = Describe("NEE-PC")
	require.Equal(t, "NextEra Energy Preferred Series C", name)
	require.Equal(t, "Utilities", sector)

	name, sector = Describe("XYZ-PA")
	require.Equal(t, "XYZ Preferred Stock", name)
	require.Equal(t, "Financial Services", sector)
}

func TestSampleNews(t *testing.T) {
	t.Parallel()

	news := SampleNews(refTime)
	require.Len(t, news, 4)

	sources := []string{"Reuters", "MarketWatch", "Financial Times", "Bloomberg"}
	for i, a := range news {
		require.Equal(t, sources[i], a.Source)
		require.Equal(t, refTime.Add(-time.Duration(2*(i+1))*time.Hour), a.PublishedAt)
		require.NotEmpty(t, a.RelatedTickers)
		require.True(t, strings.HasSuffix(a.Excerpt, "..."))
	}
	require.True(t, news[0].MentionsTicker("BAC-PB"))
}

func TestInitialMarketData(t *testing.T) {
	t.Parallel()

	m := InitialMarketData(refTime)

	require.Equal(t, 6259.74, m.SP500)
	require.Equal(t, -0.33, m.SP500Change)
	require.Equal(t, 44500.0, m.Dow)
	require.Equal(t, 19850.0, m.Nasdaq)
	require.Equal(t, 4.407, m.Treasury10y)
	require.Equal(t, 16.40, m.VIX)
	require.Equal(t, 3.93, m.VIXChange)
	require.Equal(t, 6.9, m.PreferredAvgYield)
	require.Equal(t, models.DataStatusFallback, m.DataStatus)
	require.Len(t, m.Sources, 5)
}
