package rag

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"newsrag/types"
)

// fakeEmbedder maps text to a normalized letter-frequency vector, so
// identical texts embed identically and similar texts score close.
type fakeEmbedder struct {
	fail bool
}

func (f *fakeEmbedder) ModelName() string { return "fake-letter-freq" }

func (f *fakeEmbedder) EmbedDocuments(texts []string) ([][]float32, error) {
	if f.fail {
		return nil, errors.New("embedding backend down")
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = letterFreqVector(text)
	}
	return out, nil
}

func (f *fakeEmbedder) EmbedQuery(text string) ([]float32, error) {
	if f.fail {
		return nil, errors.New("embedding backend down")
	}
	return letterFreqVector(text), nil
}

func letterFreqVector(text string) []float32 {
	vec := make([]float32, 27)
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			vec[r-'a']++
		} else {
			vec[26]++
		}
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec
}

func testArticle(title, url, content string) types.Article {
	return types.Article{
		Title:     title,
		URL:       url,
		Source:    "Unit Test Wire",
		Category:  "Technology",
		Published: "Mon, 02 Jan 2006 15:04:05 GMT",
		Content:   content,
	}
}

func TestIndexerWritesChunksWithMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")
	indexer := NewIndexer(&fakeEmbedder{}, path, nil)

	articles := []types.Article{
		testArticle("Quantum leap", "http://example.com/quantum", strings.Repeat("quantum computing news. ", 60)),
	}
	if err := indexer.Index(articles); err != nil {
		t.Fatalf("Index: %v", err)
	}

	store, err := OpenRead(path)
	if err != nil || store == nil {
		t.Fatalf("OpenRead: store=%v err=%v", store, err)
	}
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	// ~1440 chars composite text at 500/50 chunking → more than one chunk
	if count < 2 {
		t.Fatalf("expected multiple chunks, got %d", count)
	}

	results, err := store.Search(letterFreqVector("quantum computing news"), count)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, r := range results {
		if r.Metadata.URL != "http://example.com/quantum" {
			t.Errorf("chunk metadata URL = %q", r.Metadata.URL)
		}
		if r.Metadata.Title != "Quantum leap" {
			t.Errorf("chunk metadata title = %q", r.Metadata.Title)
		}
		if r.Metadata.Category != "Technology" {
			t.Errorf("chunk metadata category = %q", r.Metadata.Category)
		}
	}
}

func TestIndexerSkipsEmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")
	indexer := NewIndexer(&fakeEmbedder{}, path, nil)

	articles := []types.Article{
		{Title: "No body", URL: "http://example.com/empty"},
	}
	if err := indexer.Index(articles); err != nil {
		t.Fatalf("Index: %v", err)
	}

	store, err := OpenRead(path)
	if err != nil {
		t.Fatalf("OpenRead: %v", err)
	}
	if store != nil {
		defer store.Close()
		count, _ := store.Count()
		if count != 0 {
			t.Fatalf("expected empty index, got %d chunks", count)
		}
	}
}

func TestIndexerEmbeddingFailureSurfaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")
	indexer := NewIndexer(&fakeEmbedder{fail: true}, path, nil)

	err := indexer.Index([]types.Article{testArticle("t", "http://x", "some content")})
	if err == nil {
		t.Fatal("expected error when embedding fails")
	}
}

func TestIndexerNoEmbedderConfigured(t *testing.T) {
	indexer := NewIndexer(nil, filepath.Join(t.TempDir(), "vectors.db"), nil)
	if err := indexer.Index([]types.Article{testArticle("t", "http://x", "content")}); err == nil {
		t.Fatal("expected error with nil embedder")
	}
}
