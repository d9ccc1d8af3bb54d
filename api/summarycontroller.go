package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SummarizeRequest carries raw text and an optional length profile
// (Brief/Short, Medium, Detailed/Long).
type SummarizeRequest struct {
	Text          string `json:"text"`
	SummaryLength string `json:"summary_length"`
}

func (s *Server) registerSummaryRoutes(r *gin.Engine) {
	r.POST("/summarize", s.handleSummarize)
}

func (s *Server) handleSummarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": s.summarizer.Summarize(req.Text, req.SummaryLength),
	})
}
