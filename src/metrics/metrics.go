package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// API metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	APIRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total API requests",
		},
		[]string{"method", "route", "status"},
	)

	// Upstream metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Upstream HTTP requests by host and outcome",
		},
		[]string{"host", "outcome"},
	)
	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"host"},
	)
	QuoteFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_fetches_total",
			Help: "Quote lookups by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	// News metrics
	NewsRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_refresh_total",
			Help: "News refresh attempts by outcome",
		},
		[]string{"outcome"},
	)
	NewsArticles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_articles",
			Help: "Articles currently held in memory",
		})

	// Store metrics
	StoreStocks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_preferred_stocks",
			Help: "Preferred stocks currently held in memory",
		})
	MarketSnapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_snapshots_total",
			Help: "Market snapshots computed by data status",
		},
		[]string{"status"},
	)

	// Push metrics
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_active_connections",
			Help: "Number of active websocket connections",
		})
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Change events published by sink and outcome",
		},
		[]string{"sink", "outcome"},
	)

	// Archive metrics
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "database_operation_duration_seconds",
			Help:    "Database operation duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)
)

// Outcome maps an error to a label value.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// ObserveDB records the duration of a database operation.
func ObserveDB(operation string, start time.Time, err error) {
	DatabaseOperationDuration.WithLabelValues(operation, Outcome(err)).Observe(time.Since(start).Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
