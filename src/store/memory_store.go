package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"preferred-observer/src/helpers"
	"preferred-observer/src/logger"
	"preferred-observer/src/metrics"
	"preferred-observer/src/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultNewsLimit          = 10
	DefaultTopPerformersLimit = 10
)

// MemoryStore holds stocks, news and the market snapshot for the process lifetime.
type MemoryStore struct {
	mu sync.RWMutex

	stocks      map[string]models.MPreferredStock
	nextStockID int

	news       []models.MNewsArticle
	nextNewsID int

	market *models.MMarketData

	now    func() time.Time
	logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		stocks:      make(map[string]models.MPreferredStock),
		nextStockID: 1,
		nextNewsID:  1,
		now:         time.Now,
		logger:      log,
	}
}

// -----------------------------------------------------------------------------
// Stocks
// -----------------------------------------------------------------------------

func (s *MemoryStore) Get(ticker string) (models.MPreferredStock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stock, ok := s.stocks[ticker]
	if !ok {
		return models.MPreferredStock{}, helpers.ErrStockNotFound
	}
	return stock, nil
}

// List returns every stock sorted by ticker.
func (s *MemoryStore) List() []models.MPreferredStock {
	s.mu.RLock()
	out := make([]models.MPreferredStock, 0, len(s.stocks))
	for _, stock := range s.stocks {
		out = append(out, stock)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out
}

func (s *MemoryStore) Featured(policy FeaturedPolicy) []models.MPreferredStock {
	return policy.Select(s.List())
}

// TopPerformers returns up to limit stocks by descending changePercent.
func (s *MemoryStore) TopPerformers(limit int) []models.MPreferredStock {
	if limit <= 0 {
		limit = DefaultTopPerformersLimit
	}

	out := s.List()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChangePercent > out[j].ChangePercent
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Search matches query case-insensitively against ticker or name.
func (s *MemoryStore) Search(query string) []models.MPreferredStock {
	all := s.List()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	out := make([]models.MPreferredStock, 0)
	for _, stock := range all {
		if strings.Contains(strings.ToLower(stock.Ticker), q) ||
			strings.Contains(strings.ToLower(stock.Name), q) {
			out = append(out, stock)
		}
	}
	return out
}

// Upsert inserts or overwrites by ticker, keeping the prior id.
func (s *MemoryStore) Upsert(stock models.MPreferredStock) models.MPreferredStock {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.stocks[stock.Ticker]; ok {
		stock.ID = prev.ID
	} else {
		stock.ID = s.nextStockID
		s.nextStockID++
	}
	stock.UpdatedAt = s.now()
	s.stocks[stock.Ticker] = stock

	metrics.StoreStocks.Set(float64(len(s.stocks)))
	return stock
}

// Update merges patch onto an existing stock.
func (s *MemoryStore) Update(ticker string, patch models.MStockPatch) (models.MPreferredStock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.stocks[ticker]
	if !ok {
		return models.MPreferredStock{}, helpers.ErrStockNotFound
	}

	next := patch.Apply(prev)
	next.ID = prev.ID
	next.Ticker = prev.Ticker
	next.UpdatedAt = s.now()
	s.stocks[ticker] = next
	return next, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stocks)
}

// AverageYield returns the mean dividend yield rounded to 2 dp, false when empty.
func (s *MemoryStore) AverageYield() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.stocks) == 0 {
		return 0, false
	}

	sum := decimal.Zero
	for _, stock := range s.stocks {
		sum = sum.Add(decimal.NewFromFloat(stock.DividendYield))
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(s.stocks)))).Round(2)
	return avg.InexactFloat64(), true
}

// -----------------------------------------------------------------------------
// News
// -----------------------------------------------------------------------------

func (s *MemoryStore) GetNews(id int) (models.MNewsArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.news {
		if a.ID == id {
			return a, nil
		}
	}
	return models.MNewsArticle{}, helpers.ErrArticleNotFound
}

func (s *MemoryStore) GetNewsByKey(key string) (models.MNewsArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.news {
		if a.Key == key {
			return a, nil
		}
	}
	return models.MNewsArticle{}, helpers.ErrArticleNotFound
}

// ListNews returns all articles, newest first.
func (s *MemoryStore) ListNews() []models.MNewsArticle {
	s.mu.RLock()
	out := make([]models.MNewsArticle, len(s.news))
	copy(out, s.news)
	s.mu.RUnlock()

	sortNewestFirst(out)
	return out
}

// LatestNews returns the newest limit articles. A non-positive limit yields none.
func (s *MemoryStore) LatestNews(limit int) []models.MNewsArticle {
	if limit <= 0 {
		return []models.MNewsArticle{}
	}
	out := s.ListNews()
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *MemoryStore) NewsByTicker(ticker string) []models.MNewsArticle {
	all := s.ListNews()
	out := make([]models.MNewsArticle, 0)
	for _, a := range all {
		if a.MentionsTicker(ticker) {
			out = append(out, a)
		}
	}
	return out
}

func (s *MemoryStore) NewsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.news)
}

// CreateNews appends an article under the next id.
func (s *MemoryStore) CreateNews(article models.MNewsArticle) models.MNewsArticle {
	s.mu.Lock()
	defer s.mu.Unlock()

	article.ID = s.nextNewsID
	s.nextNewsID++
	article.Key = article.ContentKey()
	s.news = append(s.news, article)

	metrics.NewsArticles.Set(float64(len(s.news)))
	return article
}

// ReplaceNews drops every article and stores the given ones renumbered from 1.
func (s *MemoryStore) ReplaceNews(articles []models.MNewsArticle) []models.MNewsArticle {
	next := make([]models.MNewsArticle, len(articles))
	for i, a := range articles {
		a.ID = i + 1
		a.Key = a.ContentKey()
		next[i] = a
	}

	s.mu.Lock()
	s.news = next
	s.nextNewsID = len(next) + 1
	s.mu.Unlock()

	metrics.NewsArticles.Set(float64(len(next)))
	s.logger.Info("Replaced news collection with %d articles", len(next))

	out := make([]models.MNewsArticle, len(next))
	copy(out, next)
	return out
}

func sortNewestFirst(articles []models.MNewsArticle) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

// -----------------------------------------------------------------------------
// Market data
// -----------------------------------------------------------------------------

func (s *MemoryStore) GetMarketData() (models.MMarketData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.market == nil {
		return models.MMarketData{}, helpers.ErrMarketDataNotFound
	}
	return *s.market, nil
}

// SetMarketData replaces the single snapshot.
func (s *MemoryStore) SetMarketData(m models.MMarketData) models.MMarketData {
	m.ID = 1
	m.UpdatedAt = s.now()

	s.mu.Lock()
	s.market = &m
	s.mu.Unlock()

	return m
}
