package generator

import (
	"time"

	"preferred-observer/src/models"
)

type sampleArticle struct {
	title    string
	body     string
	source   string
	url      string
	age      time.Duration
	tickers  []string
	category string
}

var sampleArticles = []sampleArticle{
	{
		title:    "Federal Reserve Signals Continued Support for Preferred Stock Market",
		body:     "The Federal Reserve's latest monetary policy statement indicates continued support for financial markets, benefiting preferred stock investors",
		source:   "Reuters",
		url:      "https://reuters.com/markets/fed-preferred-stocks",
		age:      2 * time.Hour,
		tickers:  []string{"JPM-PA", "BAC-PB"},
		category: "Market News",
	},
	{
		title:    "Bank of America Issues New Preferred Stock Series",
		body:     "Bank of America announces the issuance of a new preferred stock series with attractive dividend yields for income-focused investors",
		source:   "MarketWatch",
		url:      "https://marketwatch.com/story/bac-preferred-stock",
		age:      4 * time.Hour,
		tickers:  []string{"BAC-PB"},
		category: "Company News",
	},
	{
		title:    "Rising Interest Rates Impact Preferred Stock Valuations",
		body:     "Analysis shows how recent interest rate changes are affecting preferred stock prices and dividend yields across major financial institutions",
		source:   "Financial Times",
		url:      "https://ft.com/content/preferred-stocks-rates",
		age:      6 * time.Hour,
		tickers:  []string{"JPM-PA", "WFC-PC", "MS-PA"},
		category: "Analysis",
	},
	{
		title:    "JPMorgan Chase Preferred Stock Dividend Announcement",
		body:     "JPMorgan Chase declares quarterly dividend on its preferred stock series, maintaining consistent returns for shareholders",
		source:   "Bloomberg",
		url:      "https://bloomberg.com/news/jpm-dividend",
		age:      8 * time.Hour,
		tickers:  []string{"JPM-PA"},
		category: "Dividends",
	},
}

// SampleNews returns the static seed articles, published relative to now.
func SampleNews(now time.Time) []models.MNewsArticle {
	out := make([]models.MNewsArticle, 0, len(sampleArticles))
	for _, s := range sampleArticles {
		content := s.body + "."
		url := s.url
		category := s.category
		tickers := append([]string(nil), s.tickers...)

		out = append(out, models.MNewsArticle{
			Title:          s.title,
			Excerpt:        s.body + "...",
			Content:        &content,
			Source:         s.source,
			URL:            &url,
			PublishedAt:    now.Add(-s.age),
			RelatedTickers: tickers,
			Category:       &category,
			IsActive:       true,
		})
	}
	return out
}
