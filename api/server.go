package api

import (
	"net/http"
	"os"
	"path/filepath"

	"newsrag/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Fetcher produces articles from the configured category feeds.
type Fetcher interface {
	FetchNews(maxArticles int, categories []string) []types.Article
}

// Indexer persists articles into the vector index.
type Indexer interface {
	Index(articles []types.Article) error
}

// Retriever answers semantic queries against the vector index.
type Retriever interface {
	Search(query string, k int) ([]types.SearchResult, error)
}

// Summarizer produces best-effort summaries; it never returns errors.
type Summarizer interface {
	Summarize(text, profile string) string
	SummarizeArticles(articles []types.Article, profile string) []types.SummaryRecord
}

// Server wires the pipeline components behind the HTTP API.
type Server struct {
	fetcher     Fetcher
	indexer     Indexer
	retriever   Retriever
	summarizer  Summarizer
	frontendDir string
	indexPath   string
}

// NewServer creates an API server over the given components.
func NewServer(fetcher Fetcher, indexer Indexer, retriever Retriever, summarizer Summarizer, frontendDir, indexPath string) *Server {
	return &Server{
		fetcher:     fetcher,
		indexer:     indexer,
		retriever:   retriever,
		summarizer:  summarizer,
		frontendDir: frontendDir,
		indexPath:   indexPath,
	}
}

// Router constructs a Gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	// API endpoints first, static frontend last
	s.registerNewsRoutes(r)
	s.registerSummaryRoutes(r)
	s.registerSearchRoutes(r)
	s.registerCategoryRoutes(r)
	s.registerHealthRoutes(r)
	s.registerFrontendRoutes(r)
	return r
}

func (s *Server) registerFrontendRoutes(r *gin.Engine) {
	index := filepath.Join(s.frontendDir, "index.html")
	r.GET("/", func(c *gin.Context) {
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "frontend not available"})
			return
		}
		c.File(index)
	})
	r.Static("/static", s.frontendDir)
}

// serverError is the uniform error response: the failure message and no
// partial data.
func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
