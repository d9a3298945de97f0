package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"preferred-observer/src/logger"
	"preferred-observer/src/metrics"
	"preferred-observer/src/models"
	"preferred-observer/src/services"

	"github.com/gin-gonic/gin"
)

const (
	eventQueueSize    = 256
	readHeaderTimeout = 10 * time.Second
)

var (
	ErrEventQueueFull = errors.New("event queue full")

	modeOnce sync.Once
)

// -----------------------------------------------------------------------------
// APIServer
// -----------------------------------------------------------------------------

type APIServer struct {
	Config *models.MConfig
	Logger *logger.Logger
	engine *gin.Engine
	http   *http.Server

	Stocks *services.StockService
	News   *services.NewsService
	Market *services.MarketService

	// WebSocket clients, owned by the hub loop
	clients     map[*Client]struct{}
	broadcast   chan models.MEvent
	register    chan *Client
	unregister  chan *Client
	replay      chan *Client
	done        chan struct{}
	connections atomic.Int64
	hubOnce     sync.Once
	stopOnce    sync.Once

	// Latest event per type, replayed to new subscribers
	latest      map[string]models.MEvent
	latestMutex sync.RWMutex
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewAPIServer(
	cfg *models.MConfig,
	log *logger.Logger,
	stocks *services.StockService,
	news *services.NewsService,
	market *services.MarketService,
) *APIServer {
	modeOnce.Do(func() {
		if !strings.EqualFold(cfg.LogLevel, "debug") {
			gin.SetMode(gin.ReleaseMode)
		}
	})
	RegisterValidators()

	s := &APIServer{
		Config:     cfg,
		Logger:     log,
		engine:     gin.New(),
		Stocks:     stocks,
		News:       news,
		Market:     market,
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan models.MEvent, eventQueueSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		replay:     make(chan *Client),
		done:       make(chan struct{}),
		latest:     make(map[string]models.MEvent),
	}

	s.engine.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(log),
		requestMetrics(),
		cors(),
	)
	s.setupRoutes()

	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *APIServer) setupRoutes() {
	api := s.engine.Group("/api")

	stocks := api.Group("/stocks")
	stocks.GET("", s.listStocks)
	stocks.GET("/featured", s.featuredStocks)
	stocks.GET("/top-performers", s.topPerformers)
	stocks.GET("/search/:ticker", s.searchStock)
	stocks.GET("/:ticker", s.getStock)
	stocks.POST("", s.createStock)
	stocks.PATCH("/:ticker", s.updateStock)

	news := api.Group("/news")
	news.GET("", s.latestNews)
	news.GET("/ticker/:ticker", s.newsByTicker)
	news.GET("/:id", s.getArticle)
	news.POST("", s.createArticle)
	news.POST("/refresh", s.refreshNews)

	api.GET("/market-data", s.getMarketData)
	api.POST("/market-data", s.replaceMarketData)

	api.GET("/health", s.getHealth)
	s.engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// Handler exposes the router, mainly for tests.
func (s *APIServer) Handler() http.Handler {
	return s.engine
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

// Start serves HTTP until Stop is called.
func (s *APIServer) Start() error {
	s.Logger.Info("Starting server on %s", s.http.Addr)

	s.startHub()

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// -----------------------------------------------------------------------------

// Stop drains in-flight requests and disconnects websocket clients.
func (s *APIServer) Stop(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	s.stopOnce.Do(func() { close(s.done) })
	return err
}

// -----------------------------------------------------------------------------

// providerLister is satisfied by the quote chain.
type providerLister interface {
	Names() []string
}

func (s *APIServer) getHealth(c *gin.Context) {
	providers := []string{}
	if chain, ok := s.Stocks.Quotes.(providerLister); ok {
		providers = chain.Names()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"stocks":      s.Stocks.Store.Len(),
		"articles":    s.News.Store.NewsCount(),
		"connections": s.connections.Load(),
		"providers":   providers,
		"timestamp":   time.Now().Unix(),
	})
}
