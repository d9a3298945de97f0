package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"preferred-observer/src/config"
	"preferred-observer/src/control"
	datasource "preferred-observer/src/data_source"
	"preferred-observer/src/data_source/finnhub"
	"preferred-observer/src/events"
	"preferred-observer/src/generator"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/network"
	"preferred-observer/src/server"
	"preferred-observer/src/services"
	"preferred-observer/src/storage"
	"preferred-observer/src/store"
)

const shutdownTimeout = 10 * time.Second

// -----------------------------------------------------------------------------

func runServe(parent context.Context, opts *rootOptions) error {

	// 1. Config & logger
	cfg, err := config.NewConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	appLogger := logger.NewLogger(cfg.MConfig, cfg.Name)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Archive (optional)
	db := openArchive(cfg, appLogger)
	defer db.Close()

	// 3. Providers
	netMgr := network.NewRestyNetworkManager(cfg.MConfig, appLogger.Named("Network"))

	providers, err := datasource.BuildProviders(cfg.MConfig, netMgr, appLogger.Named("Providers"))
	if err != nil {
		return err
	}
	quotes := datasource.NewQuoteChain(providers, appLogger.Named("Quotes"))
	newsSource := finnhub.NewNewsSource(cfg.MConfig, netMgr, appLogger.Named("News"))

	// 4. Store & services
	st := store.NewMemoryStore(appLogger.Named("Store"))
	fanout := events.NewFanout(appLogger.Named("Events"))

	stocks, err := services.NewStockService(cfg.MConfig, st, quotes, fanout, db, appLogger.Named("Stocks"))
	if err != nil {
		return err
	}
	news := services.NewNewsService(cfg.MConfig, st, newsSource, fanout, appLogger.Named("NewsService"))
	market := services.NewMarketService(cfg.MConfig, st, quotes, fanout, db, appLogger.Named("Market"))

	// 5. Seed data
	seed := resolveSeed(opts.seed, cfg.Generator.Seed)
	now := time.Now().UTC()
	gen := generator.New(seed)
	for _, stock := range gen.Stocks(now) {
		st.Upsert(stock)
	}
	for _, article := range generator.SampleNews(now) {
		st.CreateNews(article)
	}
	market.Seed(now)
	appLogger.Info("Seeded %d stocks and %d articles (seed %d)", st.Len(), st.NewsCount(), gen.Seed())

	if cfg.News.RefreshOnStart {
		go func() {
			count, err := news.Refresh(ctx)
			if err != nil {
				appLogger.Warning("Initial news refresh failed: %v", err)
				return
			}
			appLogger.Info("Initial news refresh stored %d articles", count)
		}()
	}

	// 6. API server & event sinks
	var srv interfaces.IDataExchanger = server.NewAPIServer(cfg.MConfig, appLogger.Named("API"), stocks, news, market)
	fanout.Add("websocket", srv)

	if cfg.Events.RedisURL != "" {
		redisPub, err := events.NewRedisPublisher(cfg.MConfig, appLogger.Named("Redis"))
		if err != nil {
			appLogger.Warning("Redis events disabled: %v", err)
		} else {
			if err := redisPub.Ping(ctx); err != nil {
				appLogger.Warning("Redis not reachable yet: %v", err)
			}
			fanout.Add("redis", redisPub)
			defer redisPub.Close()
		}
	}

	errCh := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- fmt.Errorf("api server: %w", err)
		}
	}()

	// 7. gRPC health
	ctrl := control.NewServer(cfg.MConfig, appLogger.Named("Control"))
	if ctrl.Enabled() {
		go func() {
			if err := ctrl.Start(); err != nil {
				errCh <- fmt.Errorf("control plane: %w", err)
			}
		}()
		ctrl.MarkServing()
	}

	// 8. Background refresh
	if cfg.Refresher.Enabled {
		refresher := services.NewRefresher(cfg.MConfig, stocks, market, news, db, appLogger.Named("Refresher"))
		go refresher.Run(ctx)
	}

	// 9. Wait
	select {
	case <-ctx.Done():
		appLogger.Info("Shutting down...")
	case err = <-errCh:
		appLogger.Error("Server failed: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if stopErr := srv.Stop(shutdownCtx); stopErr != nil {
		appLogger.Warning("API shutdown: %v", stopErr)
	}
	if ctrl.Enabled() {
		ctrl.Stop()
	}
	return err
}

// -----------------------------------------------------------------------------

// openArchive falls back to the no-op archive so a broken database never
// blocks the API.
func openArchive(cfg *config.Config, log *logger.Logger) interfaces.IDatabase {
	dbType := cfg.Storage.DBType
	db, err := storage.New(cfg.MConfig, log.Named("Storage"))
	if err != nil {
		log.Warning("Archive %q unavailable: %v", dbType, err)
		return storage.Nop{}
	}
	if err := db.Initialize(); err != nil {
		log.Warning("Archive %q failed to initialize: %v", dbType, err)
		db.Close()
		return storage.Nop{}
	}
	return db
}
