package finnhub

import (
	"context"
	"encoding/json"
	"time"

	"preferred-observer/src/helpers"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/models"
)

const ProviderName = "finnhub"

// QuoteSource reads /quote from Finnhub.
type QuoteSource struct {
	Config  models.MProviderConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
	now     func() time.Time
}

type quoteResponse struct {
	C  float64  `json:"c"`
	D  *float64 `json:"d"`
	DP *float64 `json:"dp"`
	T  int64    `json:"t"`
}

// -----------------------------------------------------------------------------

func NewQuoteSource(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *QuoteSource {
	return &QuoteSource{
		Config:  cfg.Providers.Finnhub,
		Network: netMgr,
		Logger:  log,
		now:     time.Now,
	}
}

func (s *QuoteSource) Name() string { return ProviderName }

// -----------------------------------------------------------------------------

// FetchQuote accepts the quote only when the current price is positive.
func (s *QuoteSource) FetchQuote(ctx context.Context, symbol string) (*models.MQuote, error) {
	body, err := s.Network.Get(ctx, s.Config.BaseURL+"/quote", map[string]string{
		"symbol": symbol,
		"token":  s.Config.APIKey,
	})
	if err != nil {
		return nil, helpers.NewDataSourceError(ProviderName, "quote request for "+symbol+" failed", err)
	}

	var resp quoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, helpers.NewDataSourceError(ProviderName, "malformed quote for "+symbol, err)
	}
	if resp.C <= 0 {
		return nil, helpers.NewDataSourceError(ProviderName, "no price for "+symbol, nil)
	}

	q := &models.MQuote{
		Symbol:    symbol,
		Price:     resp.C,
		LastTrade: s.now(),
		Provider:  ProviderName,
	}
	if resp.D != nil {
		q.Change = *resp.D
	}
	if resp.DP != nil {
		q.ChangePercent = *resp.DP
	}
	if resp.T > 0 {
		q.LastTrade = time.Unix(resp.T, 0).UTC()
	}
	return q, nil
}
