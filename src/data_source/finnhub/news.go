package finnhub

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

const (
	dateLayout      = "2006-01-02"
	defaultCategory = "Company News"
)

// NewsSource reads /company-news from Finnhub.
type NewsSource struct {
	Config      models.MProviderConfig
	News        models.MNewsConfig
	Concurrency int
	Network     interfaces.INetworkManager
	Logger      *logger.Logger
	now         func() time.Time
}

type newsItem struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// -----------------------------------------------------------------------------

func NewNewsSource(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *NewsSource {
	return &NewsSource{
		Config:      cfg.Providers.Finnhub,
		News:        cfg.News,
		Concurrency: cfg.Network.ConcurrentRequests,
		Network:     netMgr,
		Logger:      log,
		now:         time.Now,
	}
}

// -----------------------------------------------------------------------------

// FetchCompanyNews never fails: upstream problems are logged and yield nothing.
func (s *NewsSource) FetchCompanyNews(ctx context.Context, symbol string, from, to time.Time) []models.MNewsArticle {
	if s.Config.APIKey == "" {
		s.Logger.Warning("Finnhub API key is not configured, skipping news for %s", symbol)
		return nil
	}

	body, err := s.Network.Get(ctx, s.Config.BaseURL+"/company-news", map[string]string{
		"symbol": symbol,
		"from":   from.Format(dateLayout),
		"to":     to.Format(dateLayout),
		"token":  s.Config.APIKey,
	})
	if err != nil {
		s.Logger.Warning("Finnhub news request for %s failed: %v", symbol, err)
		return nil
	}

	var items []newsItem
	if err := json.Unmarshal(body, &items); err != nil {
		s.Logger.Warning("Invalid news payload from Finnhub for %s: %v", symbol, err)
		return nil
	}

	articles := make([]models.MNewsArticle, 0, len(items))
	for _, item := range items {
		if a, ok := s.toArticle(symbol, item); ok {
			articles = append(articles, a)
		}
	}
	return articles
}

func (s *NewsSource) toArticle(symbol string, item newsItem) (models.MNewsArticle, bool) {
	title := strings.TrimSpace(item.Headline)
	content := StripHTML(item.Summary)
	if title == "" || content == "" {
		return models.MNewsArticle{}, false
	}

	category := item.Category
	if category == "" {
		category = defaultCategory
	}

	a := models.MNewsArticle{
		Title:          title,
		Excerpt:        Excerpt(content, s.News.ExcerptLength),
		Content:        &content,
		Source:         item.Source,
		PublishedAt:    time.Unix(item.Datetime, 0).UTC(),
		RelatedTickers: []string{symbol},
		Category:       &category,
		IsActive:       true,
	}
	if item.URL != "" {
		u := item.URL
		a.URL = &u
	}
	if item.Image != "" {
		img := item.Image
		a.ImageURL = &img
	}
	return a, true
}

// -----------------------------------------------------------------------------

// FetchMultipleCompanyNews queries every symbol over the lookback window and
// merges the results newest first. Duplicates across symbols are kept.
func (s *NewsSource) FetchMultipleCompanyNews(ctx context.Context, symbols []string) ([]models.MNewsArticle, error) {
	to := s.now().UTC()
	from := to.AddDate(0, 0, -s.lookbackDays())

	results := make([][]models.MNewsArticle, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}
	for i, symbol := range symbols {
		g.Go(func() error {
			results[i] = s.FetchCompanyNews(gctx, symbol, from, to)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var all []models.MNewsArticle
	for _, r := range results {
		all = append(all, r...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})

	s.Logger.Info("Fetched %d articles for %d symbols", len(all), len(symbols))
	return all, nil
}

func (s *NewsSource) lookbackDays() int {
	if s.News.LookbackDays > 0 {
		return s.News.LookbackDays
	}
	return 30
}

// -----------------------------------------------------------------------------

// StripHTML returns the text content of an HTML fragment.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.TrimSpace(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}

// Excerpt truncates text to limit runes and marks the cut with "...".
func Excerpt(text string, limit int) string {
	if limit <= 0 {
		limit = 200
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
