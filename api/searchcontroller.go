package api

import (
	"net/http"

	"newsrag/config"

	"github.com/gin-gonic/gin"
)

// SearchRequest is a free-text query over the vector index.
type SearchRequest struct {
	Query string `json:"query"`
	K     int    `json:"k"`
}

func (s *Server) registerSearchRoutes(r *gin.Engine) {
	r.POST("/search", s.handleSearch)
}

func (s *Server) handleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.K <= 0 {
		req.K = config.DefaultSearchK
	}

	results, err := s.retriever.Search(req.Query, req.K)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}
