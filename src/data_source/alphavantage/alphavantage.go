package alphavantage

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"preferred-observer/src/helpers"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/models"

	"github.com/shopspring/decimal"
)

const ProviderName = "alphavantage"

// QuoteSource reads GLOBAL_QUOTE from Alpha Vantage.
type QuoteSource struct {
	Config  models.MProviderConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

type globalQuoteResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
	Note        string            `json:"Note"`
	Information string            `json:"Information"`
}

// -----------------------------------------------------------------------------

func NewQuoteSource(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *QuoteSource {
	return &QuoteSource{
		Config:  cfg.Providers.AlphaVantage,
		Network: netMgr,
		Logger:  log,
	}
}

func (s *QuoteSource) Name() string { return ProviderName }

// -----------------------------------------------------------------------------

func (s *QuoteSource) FetchQuote(ctx context.Context, symbol string) (*models.MQuote, error) {
	body, err := s.Network.Get(ctx, s.Config.BaseURL+"/query", map[string]string{
		"function": "GLOBAL_QUOTE",
		"symbol":   symbol,
		"apikey":   s.Config.APIKey,
	})
	if err != nil {
		return nil, helpers.NewDataSourceError(ProviderName, "quote request for "+symbol+" failed", err)
	}

	var resp globalQuoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, helpers.NewDataSourceError(ProviderName, "malformed quote for "+symbol, err)
	}

	// Rate limiting comes back as 200 with a note instead of a quote.
	if len(resp.GlobalQuote) == 0 {
		reason := "empty quote for " + symbol
		if resp.Note != "" || resp.Information != "" {
			reason = "rate limited: " + strings.TrimSpace(resp.Note+" "+resp.Information)
		}
		return nil, helpers.NewDataSourceError(ProviderName, reason, nil)
	}

	price, err := parseDecimal(resp.GlobalQuote["05. price"])
	if err != nil || !price.IsPositive() {
		return nil, helpers.NewDataSourceError(ProviderName, "no price for "+symbol, err)
	}
	change, _ := parseDecimal(resp.GlobalQuote["09. change"])
	changePct, _ := parseDecimal(strings.TrimSuffix(resp.GlobalQuote["10. change percent"], "%"))

	q := &models.MQuote{
		Symbol:        symbol,
		Price:         price.InexactFloat64(),
		Change:        change.InexactFloat64(),
		ChangePercent: changePct.InexactFloat64(),
		LastTrade:     time.Now().UTC(),
		Provider:      ProviderName,
	}
	if day, err := time.Parse("2006-01-02", resp.GlobalQuote["07. latest trading day"]); err == nil {
		q.LastTrade = day
	}
	return q, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
