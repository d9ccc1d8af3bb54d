package rag

import (
	"fmt"
	"log"

	"newsrag/types"
)

// Indexer persists article chunks into the vector index.
type Indexer struct {
	embedder EmbeddingsProvider
	path     string
	filter   *URLFilter
}

// NewIndexer creates an Indexer writing to the index file at path.
// filter may be nil, in which case re-fetched articles are re-indexed
// verbatim (append-only, duplicates allowed).
func NewIndexer(embedder EmbeddingsProvider, path string, filter *URLFilter) *Indexer {
	return &Indexer{embedder: embedder, path: path, filter: filter}
}

// Index chunks, embeds, and appends the given articles to the index.
// Articles with empty content are skipped; with a URL filter configured,
// previously indexed URLs are skipped too.
func (ix *Indexer) Index(articles []types.Article) error {
	if ix.embedder == nil {
		return fmt.Errorf("no embeddings provider configured (set COHERE_API_KEY or OPENAI_API_KEY)")
	}

	var chunks []Chunk
	var indexedURLs []string

	for _, article := range articles {
		if article.Content == "" {
			continue
		}

		if ix.filter != nil {
			seen, err := ix.filter.Seen(article.URL)
			if err != nil {
				log.Printf("Warning: URL filter check failed for %s: %v", article.URL, err)
			} else if seen {
				log.Printf("Skipping already indexed article: %s", article.URL)
				continue
			}
		}

		composite := fmt.Sprintf("Title: %s\n\n%s", article.Title, article.Content)
		metadata := ChunkMetadata{
			Title:     article.Title,
			Source:    article.Source,
			URL:       article.URL,
			Published: article.Published,
			Image:     article.Image,
			Category:  article.Category,
		}
		for _, text := range SplitText(composite) {
			chunks = append(chunks, Chunk{Text: text, Metadata: metadata})
		}
		indexedURLs = append(indexedURLs, article.URL)
	}

	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	vectors, err := ix.embedder.EmbedDocuments(texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}
	for i := range chunks {
		chunks[i].Vector = vectors[i]
	}

	store, err := Open(ix.path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Append(chunks); err != nil {
		return fmt.Errorf("failed to write chunks: %w", err)
	}
	log.Printf("Indexed %d chunks from %d articles", len(chunks), len(indexedURLs))

	if ix.filter != nil {
		for _, url := range indexedURLs {
			if err := ix.filter.Record(url); err != nil {
				log.Printf("Warning: URL filter record failed for %s: %v", url, err)
			}
		}
	}
	return nil
}
