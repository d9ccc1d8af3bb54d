package rag

import (
	"fmt"
	"log"

	"newsrag/config"
	"newsrag/types"
)

// Retriever answers semantic queries against the persisted index. The
// index file is reopened read-only on every call so searches always see
// the latest appended chunks.
type Retriever struct {
	embedder EmbeddingsProvider
	path     string
}

// NewRetriever creates a Retriever over the index file at path. The
// embedder must match the one used at index time.
func NewRetriever(embedder EmbeddingsProvider, path string) *Retriever {
	return &Retriever{embedder: embedder, path: path}
}

// Search returns the k nearest chunks to the query as normalized search
// results. A missing index yields an empty result set, not an error.
func (r *Retriever) Search(query string, k int) ([]types.SearchResult, error) {
	if k <= 0 {
		k = config.DefaultSearchK
	}

	store, err := OpenRead(r.path)
	if err != nil {
		// Missing and unreadable indexes both degrade to no results
		log.Printf("Warning: could not open vector index: %v", err)
		return []types.SearchResult{}, nil
	}
	if store == nil {
		return []types.SearchResult{}, nil
	}
	defer store.Close()

	if r.embedder == nil {
		return nil, fmt.Errorf("no embeddings provider configured (set COHERE_API_KEY or OPENAI_API_KEY)")
	}

	vector, err := r.embedder.EmbedQuery(query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scored, err := store.Search(vector, k)
	if err != nil {
		return nil, err
	}

	results := make([]types.SearchResult, 0, len(scored))
	for _, sc := range scored {
		title := sc.Metadata.Title
		if title == "" {
			title = sc.Metadata.Source
		}
		results = append(results, types.SearchResult{
			Title:     title,
			Source:    sc.Metadata.Source,
			URL:       sc.Metadata.URL,
			Published: sc.Metadata.Published,
			Snippet:   makeSnippet(sc.Text),
		})
	}
	return results, nil
}

func makeSnippet(text string) string {
	runes := []rune(text)
	if len(runes) <= config.SnippetLimit {
		return text
	}
	return string(runes[:config.SnippetLimit]) + "..."
}
