package rag

import (
	"path/filepath"
	"testing"
)

func testChunk(text, url string, vector []float32) Chunk {
	return Chunk{
		Text:   text,
		Vector: vector,
		Metadata: ChunkMetadata{
			Title:     "title of " + text,
			Source:    "Test Source",
			URL:       url,
			Published: "Mon, 02 Jan 2006 15:04:05 GMT",
		},
	}
}

func TestStoreAppendAndSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	chunks := []Chunk{
		testChunk("alpha", "http://a", []float32{1, 0, 0}),
		testChunk("beta", "http://b", []float32{0, 1, 0}),
		testChunk("gamma", "http://c", []float32{0.9, 0.1, 0}),
	}
	if err := store.Append(chunks); err != nil {
		t.Fatalf("Append: %v", err)
	}
	store.Close()

	reader, err := OpenRead(path)
	if err != nil {
		t.Fatalf("OpenRead: %v", err)
	}
	if reader == nil {
		t.Fatal("OpenRead returned nil store for existing file")
	}
	defer reader.Close()

	results, err := reader.Search([]float32{1, 0, 0}, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Text != "alpha" {
		t.Errorf("top result = %q, want alpha", results[0].Text)
	}
	if results[1].Text != "gamma" {
		t.Errorf("second result = %q, want gamma", results[1].Text)
	}
	if results[0].Score < results[1].Score {
		t.Error("results are not in descending similarity order")
	}
}

func TestStoreAppendIsCumulative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")

	for i := 0; i < 2; i++ {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("Open (pass %d): %v", i, err)
		}
		if err := store.Append([]Chunk{testChunk("dup", "http://dup", []float32{1, 1})}); err != nil {
			t.Fatalf("Append (pass %d): %v", i, err)
		}
		store.Close()
	}

	reader, err := OpenRead(path)
	if err != nil {
		t.Fatalf("OpenRead: %v", err)
	}
	defer reader.Close()

	// No dedup: indexing the same chunk twice stores it twice
	count, err := reader.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 chunks after two appends, got %d", count)
	}
}

func TestOpenReadMissingFile(t *testing.T) {
	store, err := OpenRead(filepath.Join(t.TempDir(), "does-not-exist.db"))
	if err != nil {
		t.Fatalf("OpenRead on missing file returned error: %v", err)
	}
	if store != nil {
		t.Fatal("OpenRead on missing file should return nil store")
	}
}

func TestSearchKLargerThanIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.Append([]Chunk{testChunk("only", "http://x", []float32{1})}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	results, err := store.Search([]float32{1}, 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}
