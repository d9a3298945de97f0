package datasource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"preferred-observer/src/data_source/alphavantage"
	"preferred-observer/src/data_source/finnhub"
	"preferred-observer/src/data_source/yahoo"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/metrics"
	"preferred-observer/src/models"
)

// QuoteChain tries quote providers in order and tags the outcome.
type QuoteChain struct {
	providers []interfaces.IQuoteProvider
	Logger    *logger.Logger
	mu        sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewQuoteChain(providers []interfaces.IQuoteProvider, log *logger.Logger) *QuoteChain {
	return &QuoteChain{
		providers: append([]interfaces.IQuoteProvider(nil), providers...),
		Logger:    log,
	}
}

// -----------------------------------------------------------------------------

// BuildProviders instantiates the enabled providers in configured order.
func BuildProviders(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) ([]interfaces.IQuoteProvider, error) {
	providers := make([]interfaces.IQuoteProvider, 0, len(cfg.Providers.Order))
	for _, name := range cfg.Providers.Order {
		switch name {
		case finnhub.ProviderName:
			if cfg.Providers.Finnhub.Enabled {
				providers = append(providers, finnhub.NewQuoteSource(cfg, netMgr, log.Named("Finnhub")))
			}
		case alphavantage.ProviderName:
			if cfg.Providers.AlphaVantage.Enabled {
				providers = append(providers, alphavantage.NewQuoteSource(cfg, netMgr, log.Named("AlphaVantage")))
			}
		case yahoo.ProviderName:
			if cfg.Providers.Yahoo.Enabled {
				providers = append(providers, yahoo.NewYahooFinanceSource(cfg, netMgr, log.Named("Yahoo")))
			}
		default:
			return nil, fmt.Errorf("unknown quote provider %q", name)
		}
	}
	return providers, nil
}

// -----------------------------------------------------------------------------

// Names returns the provider names in chain order.
func (c *QuoteChain) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

func (c *QuoteChain) snapshot() []interfaces.IQuoteProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]interfaces.IQuoteProvider(nil), c.providers...)
}

// -----------------------------------------------------------------------------

// FetchQuote returns the first valid quote as live, or a fallback with the
// joined provider errors.
func (c *QuoteChain) FetchQuote(ctx context.Context, symbol string) models.MQuoteResult {
	providers := c.snapshot()
	if len(providers) == 0 {
		return models.Fallback("no quote providers configured")
	}

	var errs []error
	for _, p := range providers {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		q, err := p.FetchQuote(ctx, symbol)
		if err == nil && q != nil && q.Price > 0 {
			metrics.QuoteFetches.WithLabelValues(p.Name(), "live").Inc()
			if q.Provider == "" {
				q.Provider = p.Name()
			}
			return models.Live(q)
		}
		if err == nil {
			err = fmt.Errorf("%s: no usable quote", p.Name())
		}
		metrics.QuoteFetches.WithLabelValues(p.Name(), "error").Inc()
		c.Logger.Debug("Quote for %s from %s failed: %v", symbol, p.Name(), err)
		errs = append(errs, err)
	}

	reason := strings.ReplaceAll(errors.Join(errs...).Error(), "\n", "; ")
	return models.Fallback(reason)
}
