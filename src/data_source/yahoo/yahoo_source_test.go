package yahoo

import (
	"context"
	"errors"
	"testing"

	"preferred-observer/src/config"
	"preferred-observer/src/helpers"
	"preferred-observer/src/interfaces/mocks"
	"preferred-observer/src/logger"

	"github.com/piquette/finance-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSource(t *testing.T) (*YahooFinanceSource, *mocks.MockINetworkManager) {
	ctrl := gomock.NewController(t)
	netMgr := mocks.NewMockINetworkManager(ctrl)
	cfg := config.Default()
	return NewYahooFinanceSource(cfg, netMgr, logger.NewNop()), netMgr
}

func TestFetchQuoteFromChartMeta(t *testing.T) {
	t.Parallel()

	// Arrange
	src, netMgr := newSource(t)
	src.Quote = func(string) (*finance.Quote, error) {
		t.Fatal("quote API must not be called when the chart succeeds")
		return nil, nil
	}
	netMgr.EXPECT().
		Get(gomock.Any(), "https://query1.finance.yahoo.com/v8/finance/chart/%5EVIX", map[string]string{"interval": "1d", "range": "1d"}).
		Return([]byte(`{"chart":{"result":[{"meta":{"symbol":"^VIX","regularMarketTime":1752328800,
			"regularMarketPrice":16.4,"chartPreviousClose":15.78}}],"error":null}}`), nil)

	// Act
	q, err := src.FetchQuote(context.Background(), "VIX")

	// Assert
	require.NoError(t, err)
	require.Equal(t, "VIX", q.Symbol)
	require.Equal(t, 16.4, q.Price)
	require.Equal(t, 0.62, q.Change)
	require.Equal(t, 3.93, q.ChangePercent)
	require.Equal(t, ProviderName, q.Provider)
}

func TestFetchQuoteFallsBackToQuoteAPI(t *testing.T) {
	t.Parallel()

	src, netMgr := newSource(t)
	netMgr.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`), nil)
	src.Quote = func(symbol string) (*finance.Quote, error) {
		require.Equal(t, "BAC-PB", symbol)
		return &finance.Quote{
			RegularMarketPrice:         25.1,
			RegularMarketChange:        0.1,
			RegularMarketChangePercent: 0.4,
			RegularMarketTime:          1752328800,
		}, nil
	}

	q, err := src.FetchQuote(context.Background(), "BAC-PB")
	require.NoError(t, err)
	require.Equal(t, 25.1, q.Price)
	require.Equal(t, 0.4, q.ChangePercent)
}

func TestFetchQuoteBothPathsFail(t *testing.T) {
	t.Parallel()

	src, netMgr := newSource(t)
	netMgr.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	src.Quote = func(string) (*finance.Quote, error) { return &finance.Quote{}, nil }

	_, err := src.FetchQuote(context.Background(), "NOPE-PZ")

	var dsErr *helpers.DataSourceError
	require.ErrorAs(t, err, &dsErr)
	require.Equal(t, ProviderName, dsErr.Provider)
}
