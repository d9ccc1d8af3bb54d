package api

import (
	"net/http"

	"newsrag/config"

	"github.com/gin-gonic/gin"
)

// FetchRequest selects categories and an overall article budget.
type FetchRequest struct {
	Categories    []string `json:"categories"`
	MaxArticles   int      `json:"max_articles"`
	SummaryLength string   `json:"summary_length"`
}

func (s *Server) registerNewsRoutes(r *gin.Engine) {
	r.POST("/fetch-news", s.handleFetchNews)
	r.POST("/api/fetch-and-summarize", s.handleFetchAndSummarize)
}

// handleFetchNews fetches articles, indexes them, and returns them raw.
func (s *Server) handleFetchNews(c *gin.Context) {
	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MaxArticles <= 0 {
		req.MaxArticles = config.DefaultMaxArticles
	}

	articles := s.fetcher.FetchNews(req.MaxArticles, req.Categories)
	if err := s.indexer.Index(articles); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(articles),
		"articles": articles,
	})
}

// handleFetchAndSummarize fetches articles, indexes them, and returns
// one summary record per article.
func (s *Server) handleFetchAndSummarize(c *gin.Context) {
	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MaxArticles <= 0 {
		req.MaxArticles = config.DefaultMaxArticles
	}

	articles := s.fetcher.FetchNews(req.MaxArticles, req.Categories)
	if err := s.indexer.Index(articles); err != nil {
		serverError(c, err)
		return
	}

	results := s.summarizer.SummarizeArticles(articles, req.SummaryLength)
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}
