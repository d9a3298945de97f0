package network

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"preferred-observer/src/helpers"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/metrics"
	"preferred-observer/src/models"

	"github.com/go-resty/resty/v2"
)

// RestyNetworkManager performs upstream GETs with retries, user-agent rotation
// and proxy rotation on blocking responses.
type RestyNetworkManager struct {
	Config       *models.MConfig
	ProxyManager interfaces.IProxyManager
	Client       *resty.Client
	Logger       *logger.Logger
	RetryBackoff time.Duration
	mu           sync.Mutex
}

// -----------------------------------------------------------------------------

func NewRestyNetworkManager(cfg *models.MConfig, log *logger.Logger) *RestyNetworkManager {
	var proxies []string
	if cfg.Network.ProxiesEnabled {
		proxies = cfg.Network.Proxies
	}

	nm := &RestyNetworkManager{
		Config:       cfg,
		ProxyManager: helpers.NewProxyManager(proxies, cfg.Network.UserAgent, log),
		Logger:       log,
		RetryBackoff: time.Second,
	}
	nm.Client = nm.createClient()
	return nm
}

// -----------------------------------------------------------------------------

func (nm *RestyNetworkManager) createClient() *resty.Client {
	timeout := time.Duration(nm.Config.Network.RequestTimeout) * time.Second
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	nm.applyProxy(client)
	return client
}

// -----------------------------------------------------------------------------

func (nm *RestyNetworkManager) applyProxy(client *resty.Client) {
	if !nm.ProxyManager.HasProxies() {
		return
	}
	proxyStr, err := nm.ProxyManager.GetCurrentProxy()
	if err == nil && proxyStr != "" {
		client.SetProxy(proxyStr)
	}
}

// -----------------------------------------------------------------------------

func (nm *RestyNetworkManager) rotateProxy() {
	if !nm.ProxyManager.HasProxies() {
		return
	}

	nm.mu.Lock()
	defer nm.mu.Unlock()
	nm.ProxyManager.RotateProxy()
	nm.applyProxy(nm.Client)
}

// -----------------------------------------------------------------------------

// Get performs a GET request with retries and proxy rotation.
func (nm *RestyNetworkManager) Get(ctx context.Context, urlStr string, params map[string]string) ([]byte, error) {
	reqURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, err
	}
	host := reqURL.Host

	maxRetries := nm.Config.Network.MaxRetries
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(i*i) * nm.RetryBackoff):
			}
		}

		start := time.Now()
		resp, err := nm.Client.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetHeader("User-Agent", nm.ProxyManager.GetUserAgent()).
			Get(urlStr)
		metrics.UpstreamLatency.WithLabelValues(host).Observe(time.Since(start).Seconds())

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = helpers.NewNetworkError(0, "request failed", err)
			metrics.UpstreamRequests.WithLabelValues(host, "error").Inc()
			nm.Logger.Info("Request to %s failed (attempt %d/%d): %v", host, i+1, maxRetries+1, err)
			continue
		}

		status := resp.StatusCode()
		if status == http.StatusTooManyRequests || status == http.StatusForbidden {
			lastErr = helpers.NewNetworkError(status, fmt.Sprintf("blocked (status %d)", status), nil)
			metrics.UpstreamRequests.WithLabelValues(host, "blocked").Inc()
			nm.Logger.Info("Request to %s blocked (%d). Rotating proxy.", host, status)
			nm.rotateProxy()
			continue
		}

		if status < 200 || status > 299 {
			lastErr = helpers.NewNetworkError(status, fmt.Sprintf("bad status: %d", status), nil)
			metrics.UpstreamRequests.WithLabelValues(host, "bad_status").Inc()
			nm.Logger.Info("Bad status %d from %s", status, host)
			continue
		}

		metrics.UpstreamRequests.WithLabelValues(host, "ok").Inc()
		return resp.Body(), nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
