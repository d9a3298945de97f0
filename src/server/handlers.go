package server

import (
	"net/http"

	"preferred-observer/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// Stocks
// -----------------------------------------------------------------------------

func (s *APIServer) listStocks(c *gin.Context) {
	defer s.recovered(c, "Failed to fetch stocks")
	c.JSON(http.StatusOK, s.Stocks.List(c.Query("search")))
}

func (s *APIServer) featuredStocks(c *gin.Context) {
	defer s.recovered(c, "Failed to fetch featured stocks")
	c.JSON(http.StatusOK, s.Stocks.Featured(c.Request.Context()))
}

func (s *APIServer) topPerformers(c *gin.Context) {
	defer s.recovered(c, "Failed to fetch top performers")
	c.JSON(http.StatusOK, s.Stocks.TopPerformers())
}

// -----------------------------------------------------------------------------

func (s *APIServer) getStock(c *gin.Context) {
	stock, err := s.Stocks.Get(c.Param("ticker"))
	if err != nil {
		s.respondError(c, err, "Failed to fetch stock")
		return
	}
	c.JSON(http.StatusOK, stock)
}

func (s *APIServer) searchStock(c *gin.Context) {
	res, err := s.Stocks.SearchLive(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		s.respondError(c, err, "Failed to search for stock")
		return
	}
	c.JSON(http.StatusOK, res)
}

// -----------------------------------------------------------------------------

func (s *APIServer) createStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err, msgInvalidStock)
		return
	}
	c.JSON(http.StatusCreated, s.Stocks.Upsert(c.Request.Context(), req.toModel()))
}

func (s *APIServer) updateStock(c *gin.Context) {
	var patch models.MStockPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.badRequest(c, err, msgInvalidStock)
		return
	}

	stock, err := s.Stocks.Update(c.Request.Context(), c.Param("ticker"), patch)
	if err != nil {
		s.respondError(c, err, "Failed to update stock")
		return
	}
	c.JSON(http.StatusOK, stock)
}

// -----------------------------------------------------------------------------
// News
// -----------------------------------------------------------------------------

func (s *APIServer) latestNews(c *gin.Context) {
	defer s.recovered(c, "Failed to fetch news")
	c.JSON(http.StatusOK, s.News.Latest(queryLimit(c)))
}

func (s *APIServer) getArticle(c *gin.Context) {
	article, err := s.News.Get(c.Param("id"))
	if err != nil {
		s.respondError(c, err, "Failed to fetch article")
		return
	}
	c.JSON(http.StatusOK, article)
}

func (s *APIServer) newsByTicker(c *gin.Context) {
	defer s.recovered(c, "Failed to fetch news for ticker")
	c.JSON(http.StatusOK, s.News.ByTicker(c.Param("ticker")))
}

func (s *APIServer) createArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err, msgInvalidArticle)
		return
	}
	c.JSON(http.StatusCreated, s.News.Create(c.Request.Context(), req.toModel()))
}

func (s *APIServer) refreshNews(c *gin.Context) {
	count, err := s.News.Refresh(c.Request.Context())
	if err != nil {
		s.respondError(c, err, "Failed to refresh news")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgNewsRefreshed, "count": count})
}

// -----------------------------------------------------------------------------
// Market data
// -----------------------------------------------------------------------------

func (s *APIServer) getMarketData(c *gin.Context) {
	data, err := s.Market.Current(c.Request.Context())
	if err != nil {
		s.respondError(c, err, "Failed to fetch market data")
		return
	}
	c.JSON(http.StatusOK, data)
}

func (s *APIServer) replaceMarketData(c *gin.Context) {
	var req marketDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err, msgInvalidMarketData)
		return
	}
	c.JSON(http.StatusCreated, s.Market.Replace(c.Request.Context(), req.toModel()))
}
