package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// MNewsArticle Structure
type MNewsArticle struct {
	ID             int       `json:"id"`
	Key            string    `json:"key"`
	Title          string    `json:"title"`
	Excerpt        string    `json:"excerpt"`
	Content        *string   `json:"content,omitempty"`
	Source         string    `json:"source"`
	URL            *string   `json:"url,omitempty"`
	ImageURL       *string   `json:"imageUrl,omitempty"`
	PublishedAt    time.Time `json:"publishedAt"`
	RelatedTickers []string  `json:"relatedTickers,omitempty"`
	Category       *string   `json:"category,omitempty"`
	IsActive       bool      `json:"isActive"`
}

// -----------------------------------------------------------------------------

// ContentKey identifies an article independently of its sequential id.
// The URL is used when present, otherwise title, source and publish time.
func (a MNewsArticle) ContentKey() string {
	var seed string
	if a.URL != nil && *a.URL != "" {
		seed = *a.URL
	} else {
		seed = a.Title + "|" + a.Source + "|" + a.PublishedAt.UTC().Format(time.RFC3339)
	}
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// -----------------------------------------------------------------------------

// MentionsTicker reports whether ticker is one of the related tickers.
func (a MNewsArticle) MentionsTicker(ticker string) bool {
	for _, t := range a.RelatedTickers {
		if t == ticker {
			return true
		}
	}
	return false
}
