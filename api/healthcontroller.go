package api

import (
	"net/http"
	"os"
	"path/filepath"

	"newsrag/rag"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerHealthRoutes(r *gin.Engine) {
	r.GET("/health", s.handleHealth)
}

// handleHealth reports whether the frontend assets are present, whether
// an inference credential is configured, and how many chunks the index
// holds. A missing credential is tolerated, not a startup failure.
func (s *Server) handleHealth(c *gin.Context) {
	frontendOK := false
	if _, err := os.Stat(filepath.Join(s.frontendDir, "index.html")); err == nil {
		frontendOK = true
	}

	inferenceConfigured := os.Getenv("COHERE_API_KEY") != "" ||
		os.Getenv("OPENAI_API_KEY") != "" ||
		os.Getenv("HF_API_TOKEN") != ""

	chunkCount := 0
	if store, err := rag.OpenRead(s.indexPath); err == nil && store != nil {
		if n, err := store.Count(); err == nil {
			chunkCount = n
		}
		store.Close()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "ok",
		"frontend":             frontendOK,
		"inference_configured": inferenceConfigured,
		"indexed_chunks":       chunkCount,
	})
}
