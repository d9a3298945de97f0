package services

import (
	"context"
	"strconv"

	"preferred-observer/src/events"
	"preferred-observer/src/helpers"
	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/metrics"
	"preferred-observer/src/models"
	"preferred-observer/src/store"
)

// NewsService serves articles from the store and refreshes them from the provider.
type NewsService struct {
	Store       *store.MemoryStore
	Provider    interfaces.INewsProvider
	Events      interfaces.IEventPublisher
	Symbols     []string
	KeepOnEmpty bool
	Logger      *logger.Logger
}

// -----------------------------------------------------------------------------

func NewNewsService(
	cfg *models.MConfig,
	st *store.MemoryStore,
	provider interfaces.INewsProvider,
	pub interfaces.IEventPublisher,
	log *logger.Logger,
) *NewsService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &NewsService{
		Store:       st,
		Provider:    provider,
		Events:      pub,
		Symbols:     cfg.News.Symbols,
		KeepOnEmpty: cfg.News.KeepOnEmpty,
		Logger:      log,
	}
}

// -----------------------------------------------------------------------------

func (s *NewsService) Latest(limit int) []models.MNewsArticle {
	return s.Store.LatestNews(limit)
}

func (s *NewsService) ByTicker(ticker string) []models.MNewsArticle {
	return s.Store.NewsByTicker(ticker)
}

// Get resolves a numeric id first and a content key otherwise.
func (s *NewsService) Get(idOrKey string) (models.MNewsArticle, error) {
	if id, err := strconv.Atoi(idOrKey); err == nil {
		return s.Store.GetNews(id)
	}
	if idOrKey == "" {
		return models.MNewsArticle{}, helpers.ErrArticleNotFound
	}
	return s.Store.GetNewsByKey(idOrKey)
}

func (s *NewsService) Create(ctx context.Context, article models.MNewsArticle) models.MNewsArticle {
	saved := s.Store.CreateNews(article)
	s.publish(ctx, events.New(models.EventNewsCreated, "", saved))
	return saved
}

// -----------------------------------------------------------------------------

// Refresh replaces the whole collection with fresh provider news and returns
// the number of articles held afterwards. An empty fetch clears the collection
// unless KeepOnEmpty is set.
func (s *NewsService) Refresh(ctx context.Context) (int, error) {
	articles, err := s.Provider.FetchMultipleCompanyNews(ctx, s.Symbols)
	if err != nil {
		metrics.NewsRefreshTotal.WithLabelValues("error").Inc()
		return 0, err
	}

	if len(articles) == 0 && s.KeepOnEmpty {
		metrics.NewsRefreshTotal.WithLabelValues("empty").Inc()
		s.Logger.Warning("News refresh returned no articles, keeping %d existing", s.Store.NewsCount())
		return s.Store.NewsCount(), nil
	}

	if len(articles) == 0 {
		s.Logger.Warning("News refresh returned no articles, clearing %d existing", s.Store.NewsCount())
	}

	replaced := s.Store.ReplaceNews(articles)
	metrics.NewsRefreshTotal.WithLabelValues("replaced").Inc()
	s.publish(ctx, events.New(models.EventNewsRefreshed, "", map[string]int{"count": len(replaced)}))
	return len(replaced), nil
}

func (s *NewsService) publish(ctx context.Context, e models.MEvent) {
	if err := s.Events.Publish(ctx, e); err != nil {
		s.Logger.Warning("Failed to publish %s: %v", e.Type, err)
	}
}
