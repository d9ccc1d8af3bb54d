package main

import (
	"log"
	"os"

	"newsrag/api"
	"newsrag/config"
	"newsrag/rag"
	"newsrag/rssfeeds"
	"newsrag/summarize"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	indexPath := os.Getenv("VECTOR_DB_PATH")
	if indexPath == "" {
		indexPath = config.DefaultVectorDBPath
	}

	embedder := rag.NewEmbeddingsFromEnv()
	if embedder != nil {
		log.Printf("Embeddings provider: %s", embedder.ModelName())
	} else {
		log.Println("Warning: no embeddings provider configured; indexing and search will fail")
	}

	urlFilter, err := rag.NewURLFilterFromEnv()
	if err != nil {
		log.Printf("Warning: URL dedup filter disabled: %v", err)
	} else if urlFilter != nil {
		defer urlFilter.Close()
		log.Println("URL dedup filter enabled")
	}

	server := api.NewServer(
		rssfeeds.NewScraper(),
		rag.NewIndexer(embedder, indexPath, urlFilter),
		rag.NewRetriever(embedder, indexPath),
		summarize.NewServiceFromEnv(),
		"frontend",
		indexPath,
	)

	r := server.Router()
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  POST /fetch-news")
	log.Println("  POST /api/fetch-and-summarize")
	log.Println("  POST /summarize")
	log.Println("  POST /search")
	log.Println("  GET  /api/categories")
	log.Println("  GET  /health")
	log.Println("  GET  /")

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
