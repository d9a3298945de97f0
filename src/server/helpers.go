package server

import (
	"errors"
	"net/http"
	"strconv"

	"preferred-observer/src/helpers"
	"preferred-observer/src/store"

	"github.com/gin-gonic/gin"
)

// Client-facing messages
const (
	msgStockNotFound      = "Stock not found"
	msgArticleNotFound    = "Article not found"
	msgMarketDataNotFound = "Market data not found"
	msgInvalidStock       = "Invalid stock data"
	msgInvalidArticle     = "Invalid article data"
	msgInvalidMarketData  = "Invalid market data"
	msgNewsRefreshed      = "News refreshed successfully"
)

// notFoundMessages maps lookup errors to their client message
var notFoundMessages = map[error]string{
	helpers.ErrStockNotFound:      msgStockNotFound,
	helpers.ErrArticleNotFound:    msgArticleNotFound,
	helpers.ErrMarketDataNotFound: msgMarketDataNotFound,
}

func notFoundMessage(err error) string {
	for sentinel, msg := range notFoundMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return "Not found"
}

// -----------------------------------------------------------------------------

// respondError maps err to a status code. Only not-found and validation
// errors are distinguished; everything else is a 500 with fallback as the
// message, and err is logged.
func (s *APIServer) respondError(c *gin.Context, err error, fallback string) {
	var validation *helpers.ValidationError

	switch {
	case helpers.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage(err)})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"message": validation.Message})
	default:
		s.Logger.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}

// badRequest logs the binding error at debug level and answers with a
// generic message.
func (s *APIServer) badRequest(c *gin.Context, err error, message string) {
	s.Logger.Debug("Rejected %s %s: %s", c.Request.Method, c.Request.URL.Path, describeBinding(err))
	s.respondError(c, helpers.NewValidationError(message), message)
}

// recovered turns a handler panic into a 500 with the route's fixed message.
func (s *APIServer) recovered(c *gin.Context, message string) {
	if r := recover(); r != nil {
		s.Logger.Error("Panic in %s %s: %v", c.Request.Method, c.FullPath(), r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": message})
	}
}

// -----------------------------------------------------------------------------

// queryLimit parses ?limit=. Absent or non-numeric values give the default
// and negative ones are clamped to 0.
func queryLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	switch {
	case err != nil:
		return store.DefaultNewsLimit
	case n < 0:
		return 0
	}
	return n
}

// -----------------------------------------------------------------------------

func toSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
