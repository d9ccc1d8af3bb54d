package rag

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

var chunksBucket = []byte("chunks")

// ChunkMetadata is the article metadata carried by every stored chunk.
type ChunkMetadata struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	URL       string `json:"url"`
	Published string `json:"published"`
	Image     string `json:"image,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Chunk is the unit stored in the vector index: a bounded slice of an
// article's text, its embedding, and the parent article's metadata.
type Chunk struct {
	Text     string        `json:"text"`
	Vector   []float32     `json:"vector"`
	Metadata ChunkMetadata `json:"metadata"`
}

// ScoredChunk is a chunk paired with its similarity to a query vector.
type ScoredChunk struct {
	Chunk
	Score float64 `json:"score"`
}

// Store is a file-backed vector index. Records are append-only; bbolt's
// exclusive file lock serializes concurrent writers from separate
// requests, and write transactions within one process are serialized by
// bbolt itself.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the index file for writing.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create index directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open vector index: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(chunksBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize vector index: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenRead opens the index read-only. A missing index file is not an
// error; it returns (nil, nil) and callers treat that as an empty index.
func OpenRead(path string) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout:  5 * time.Second,
		ReadOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open vector index: %w", err)
	}

	return &Store{db: db}, nil
}

// Append adds chunks to the index. Existing records are never touched;
// re-indexing the same article produces duplicate chunks.
func (s *Store) Append(chunks []Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(chunksBucket)
		for _, chunk := range chunks {
			seq, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			value, err := json.Marshal(chunk)
			if err != nil {
				return err
			}
			if err := bucket.Put(itob(seq), value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Search returns the k most similar chunks to the query vector, in
// descending cosine-similarity order.
func (s *Store) Search(vector []float32, k int) ([]ScoredChunk, error) {
	if k <= 0 {
		return nil, nil
	}

	var scored []ScoredChunk
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(chunksBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, value []byte) error {
			var chunk Chunk
			if err := json.Unmarshal(value, &chunk); err != nil {
				return err
			}
			scored = append(scored, ScoredChunk{
				Chunk: chunk,
				Score: cosineSimilarity(vector, chunk.Vector),
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vector index: %w", err)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

// Count returns the number of chunks in the index.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(chunksBucket)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})
	return count, err
}

// Close closes the underlying index file.
func (s *Store) Close() error {
	return s.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
