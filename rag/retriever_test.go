package rag

import (
	"path/filepath"
	"strings"
	"testing"

	"newsrag/config"
	"newsrag/types"
)

func TestRetrieverMissingIndexReturnsEmpty(t *testing.T) {
	retriever := NewRetriever(&fakeEmbedder{}, filepath.Join(t.TempDir(), "missing.db"))

	results, err := retriever.Search("", 5)
	if err != nil {
		t.Fatalf("Search on missing index: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
	if results == nil {
		t.Fatal("expected empty slice, not nil, so the API serializes results: []")
	}
}

func TestRetrieverRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")
	embedder := &fakeEmbedder{}

	articles := []types.Article{
		testArticle("Mars rover", "http://example.com/mars", "the rover drilled a rock sample on mars"),
		testArticle("Rate cut", "http://example.com/rates", "the central bank lowered interest rates today"),
	}
	if err := NewIndexer(embedder, path, nil).Index(articles); err != nil {
		t.Fatalf("Index: %v", err)
	}

	retriever := NewRetriever(embedder, path)
	results, err := retriever.Search("Title: Mars rover\n\nthe rover drilled a rock sample on mars", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].URL != "http://example.com/mars" {
		t.Errorf("top result URL = %q, want the mars article", results[0].URL)
	}
	if results[0].Title != "Mars rover" {
		t.Errorf("top result title = %q", results[0].Title)
	}
}

func TestRetrieverTitleFallsBackToSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	chunk := Chunk{
		Text:   "untitled content",
		Vector: letterFreqVector("untitled content"),
		Metadata: ChunkMetadata{
			Source: "Anonymous Wire",
			URL:    "http://example.com/untitled",
		},
	}
	if err := store.Append([]Chunk{chunk}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	store.Close()

	retriever := NewRetriever(&fakeEmbedder{}, path)
	results, err := retriever.Search("untitled content", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Title != "Anonymous Wire" {
		t.Errorf("title = %q, want source name fallback", results[0].Title)
	}
}

func TestRetrieverSnippetCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")
	embedder := &fakeEmbedder{}

	longContent := strings.Repeat("massive news payload ", 40) // > 400 chars, < 500
	shortContent := "tiny"

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	chunks := []Chunk{
		{Text: longContent, Vector: letterFreqVector(longContent), Metadata: ChunkMetadata{Title: "long", URL: "http://l"}},
		{Text: shortContent, Vector: letterFreqVector(shortContent), Metadata: ChunkMetadata{Title: "short", URL: "http://s"}},
	}
	if err := store.Append(chunks); err != nil {
		t.Fatalf("Append: %v", err)
	}
	store.Close()

	retriever := NewRetriever(embedder, path)
	results, err := retriever.Search("massive news payload tiny", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	for _, r := range results {
		switch r.Title {
		case "long":
			if len([]rune(r.Snippet)) != config.SnippetLimit+3 {
				t.Errorf("long snippet has %d chars, want %d", len([]rune(r.Snippet)), config.SnippetLimit+3)
			}
			if !strings.HasSuffix(r.Snippet, "...") {
				t.Error("long snippet missing ellipsis marker")
			}
		case "short":
			if r.Snippet != shortContent {
				t.Errorf("short snippet = %q, want source text verbatim", r.Snippet)
			}
		}
	}
}
