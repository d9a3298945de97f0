package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"preferred-observer/src/helpers"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/models"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

const ProviderName = "yahoo"

// QuoteFunc fetches a quote through the finance-go client.
type QuoteFunc func(symbol string) (*finance.Quote, error)

// Yahoo spells some index symbols differently.
var symbolAliases = map[string]string{
	"VIX": "^VIX",
}

// YahooFinanceSource reads the chart endpoint and falls back to the v7 quote API.
type YahooFinanceSource struct {
	Config  models.MProviderConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
	Quote   QuoteFunc
}

// -----------------------------------------------------------------------------

func NewYahooFinanceSource(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *YahooFinanceSource {
	return &YahooFinanceSource{
		Config:  cfg.Providers.Yahoo,
		Network: netMgr,
		Logger:  log,
		Quote:   quote.Get,
	}
}

func (s *YahooFinanceSource) Name() string { return ProviderName }

// -----------------------------------------------------------------------------

func (s *YahooFinanceSource) FetchQuote(ctx context.Context, symbol string) (*models.MQuote, error) {
	yahooSymbol := symbol
	if alias, ok := symbolAliases[symbol]; ok {
		yahooSymbol = alias
	}

	q, chartErr := s.fetchChart(ctx, symbol, yahooSymbol)
	if chartErr == nil {
		return q, nil
	}
	s.Logger.Debug("Chart lookup for %s failed, trying quote API: %v", symbol, chartErr)

	if s.Quote == nil {
		return nil, helpers.NewDataSourceError(ProviderName, "no quote for "+symbol, chartErr)
	}
	q, err := s.fetchQuoteAPI(ctx, symbol, yahooSymbol)
	if err != nil {
		return nil, helpers.NewDataSourceError(ProviderName, "no quote for "+symbol, errors.Join(chartErr, err))
	}
	return q, nil
}

// -----------------------------------------------------------------------------

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
				PreviousClose      float64 `json:"previousClose"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (s *YahooFinanceSource) fetchChart(ctx context.Context, symbol, yahooSymbol string) (*models.MQuote, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", s.Config.BaseURL, url.PathEscape(yahooSymbol))
	body, err := s.Network.Get(ctx, endpoint, map[string]string{
		"interval": "1d",
		"range":    "1d",
	})
	if err != nil {
		return nil, fmt.Errorf("network error for %s: %w", yahooSymbol, err)
	}

	var resp chartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("json unmarshal failed: %w", err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s - %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no result in response for %s", yahooSymbol)
	}

	meta := resp.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return nil, fmt.Errorf("no price for %s", yahooSymbol)
	}

	prevClose := meta.ChartPreviousClose
	if prevClose <= 0 {
		prevClose = meta.PreviousClose
	}
	return buildQuote(symbol, meta.RegularMarketPrice, prevClose, meta.RegularMarketTime), nil
}

// -----------------------------------------------------------------------------

func (s *YahooFinanceSource) fetchQuoteAPI(ctx context.Context, symbol, yahooSymbol string) (*models.MQuote, error) {
	type result struct {
		q   *finance.Quote
		err error
	}
	// finance-go has no context support.
	done := make(chan result, 1)
	go func() {
		q, err := s.Quote(yahooSymbol)
		done <- result{q, err}
	}()

	var r result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r = <-done:
	}

	if r.err != nil {
		return nil, r.err
	}
	if r.q == nil || r.q.RegularMarketPrice <= 0 {
		return nil, fmt.Errorf("no price for %s", yahooSymbol)
	}

	q := &models.MQuote{
		Symbol:        symbol,
		Price:         r.q.RegularMarketPrice,
		Change:        r.q.RegularMarketChange,
		ChangePercent: r.q.RegularMarketChangePercent,
		LastTrade:     time.Now().UTC(),
		Provider:      ProviderName,
	}
	if r.q.RegularMarketTime > 0 {
		q.LastTrade = time.Unix(int64(r.q.RegularMarketTime), 0).UTC()
	}
	return q, nil
}

// -----------------------------------------------------------------------------

func buildQuote(symbol string, price, prevClose float64, ts int64) *models.MQuote {
	q := &models.MQuote{
		Symbol:    symbol,
		Price:     price,
		LastTrade: time.Now().UTC(),
		Provider:  ProviderName,
	}
	if ts > 0 {
		q.LastTrade = time.Unix(ts, 0).UTC()
	}
	if prevClose > 0 {
		p := decimal.NewFromFloat(price)
		pc := decimal.NewFromFloat(prevClose)
		change := p.Sub(pc)
		q.Change = change.Round(4).InexactFloat64()
		q.ChangePercent = change.Div(pc).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return q
}
