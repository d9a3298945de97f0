package interfaces

import (
	"context"
	"time"

	"preferred-observer/src/models"
)

//go:generate mockgen -source=news_provider.go -destination=mocks/mock_news_provider.go -package=mocks

// -----------------------------------------------------------------------------
// INewsProvider fetches company news. Upstream failures yield empty results.
// -----------------------------------------------------------------------------

type INewsProvider interface {

	// FetchCompanyNews returns articles for one symbol published between from and to.
	FetchCompanyNews(ctx context.Context, symbol string, from, to time.Time) []models.MNewsArticle

	// -----------------------------------------------------------------------------

	// FetchMultipleCompanyNews fans out over symbols and returns the merged list
	// sorted newest first. The error is only set when ctx is done.
	FetchMultipleCompanyNews(ctx context.Context, symbols []string) ([]models.MNewsArticle, error)
}
