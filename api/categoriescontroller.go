package api

import (
	"net/http"

	"newsrag/rssfeeds"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerCategoryRoutes(r *gin.Engine) {
	r.GET("/api/categories", s.handleCategories)
}

func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": rssfeeds.Categories()})
}
