package server

import (
	"time"

	"preferred-observer/src/models"
)

// Request bodies use pointers so that "required" rejects missing fields while
// still accepting zero values.

type stockRequest struct {
	Ticker        *string    `json:"ticker" binding:"required"`
	Name          *string    `json:"name" binding:"required"`
	Price         *float64   `json:"price" binding:"required"`
	Change        *float64   `json:"change" binding:"required"`
	ChangePercent *float64   `json:"changePercent" binding:"required"`
	DividendYield *float64   `json:"dividendYield" binding:"required"`
	MarketCap     *string    `json:"marketCap" binding:"required"`
	Volume        *int64     `json:"volume" binding:"required"`
	LastTrade     *time.Time `json:"lastTrade" binding:"required"`
	Sector        *string    `json:"sector"`
	Description   *string    `json:"description"`
	IsActive      *bool      `json:"isActive"`
}

func (r stockRequest) toModel() models.MPreferredStock {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return models.MPreferredStock{
		Ticker:        *r.Ticker,
		Name:          *r.Name,
		Price:         *r.Price,
		Change:        *r.Change,
		ChangePercent: *r.ChangePercent,
		DividendYield: *r.DividendYield,
		MarketCap:     *r.MarketCap,
		Volume:        *r.Volume,
		LastTrade:     *r.LastTrade,
		Sector:        r.Sector,
		Description:   r.Description,
		IsActive:      active,
	}
}

// -----------------------------------------------------------------------------

type articleRequest struct {
	Title          *string    `json:"title" binding:"required"`
	Excerpt        *string    `json:"excerpt" binding:"required"`
	Content        *string    `json:"content"`
	Source         *string    `json:"source" binding:"required"`
	URL            *string    `json:"url"`
	ImageURL       *string    `json:"imageUrl"`
	PublishedAt    *time.Time `json:"publishedAt" binding:"required"`
	RelatedTickers []string   `json:"relatedTickers"`
	Category       *string    `json:"category"`
	IsActive       *bool      `json:"isActive"`
}

func (r articleRequest) toModel() models.MNewsArticle {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return models.MNewsArticle{
		Title:          *r.Title,
		Excerpt:        *r.Excerpt,
		Content:        r.Content,
		Source:         *r.Source,
		URL:            r.URL,
		ImageURL:       r.ImageURL,
		PublishedAt:    *r.PublishedAt,
		RelatedTickers: r.RelatedTickers,
		Category:       r.Category,
		IsActive:       active,
	}
}

// -----------------------------------------------------------------------------

type marketDataRequest struct {
	SP500                   *float64 `json:"sp500" binding:"required"`
	SP500Change             *float64 `json:"sp500Change" binding:"required"`
	Dow                     *float64 `json:"dow" binding:"required"`
	DowChange               *float64 `json:"dowChange" binding:"required"`
	Nasdaq                  *float64 `json:"nasdaq" binding:"required"`
	NasdaqChange            *float64 `json:"nasdaqChange" binding:"required"`
	Treasury10y             *float64 `json:"treasury10y" binding:"required"`
	Treasury10yChange       *float64 `json:"treasury10yChange" binding:"required"`
	VIX                     *float64 `json:"vix" binding:"required"`
	VIXChange               *float64 `json:"vixChange" binding:"required"`
	PreferredAvgYield       *float64 `json:"preferredAvgYield" binding:"required"`
	PreferredAvgYieldChange *float64 `json:"preferredAvgYieldChange" binding:"required"`
}

func (r marketDataRequest) toModel() models.MMarketData {
	return models.MMarketData{
		SP500:                   *r.SP500,
		SP500Change:             *r.SP500Change,
		Dow:                     *r.Dow,
		DowChange:               *r.DowChange,
		Nasdaq:                  *r.Nasdaq,
		NasdaqChange:            *r.NasdaqChange,
		Treasury10y:             *r.Treasury10y,
		Treasury10yChange:       *r.Treasury10yChange,
		VIX:                     *r.VIX,
		VIXChange:               *r.VIXChange,
		PreferredAvgYield:       *r.PreferredAvgYield,
		PreferredAvgYieldChange: *r.PreferredAvgYieldChange,
	}
}
