package config

import "time"

// Feed Fetching Constants
const (
	// MaxEntriesPerFeed caps how many entries are considered from one feed
	MaxEntriesPerFeed = 5

	// ExtractionDelay is the politeness pause between per-entry extraction attempts
	ExtractionDelay = 200 * time.Millisecond

	// ExtractorTimeout bounds a single full-text extraction request
	ExtractorTimeout = 30 * time.Second

	// DefaultMaxArticles is used when a fetch request omits max_articles
	DefaultMaxArticles = 20
)

// Indexing Constants
const (
	// ChunkSize is the maximum chunk length in characters
	ChunkSize = 500

	// ChunkOverlap is the character overlap between consecutive chunks
	ChunkOverlap = 50

	// DefaultVectorDBPath is where the vector index file lives unless
	// VECTOR_DB_PATH overrides it
	DefaultVectorDBPath = "data/vectors.db"
)

// Retrieval Constants
const (
	// DefaultSearchK is used when a search request omits k
	DefaultSearchK = 5

	// SnippetLimit caps the snippet length of one search result
	SnippetLimit = 400
)

// Summarization Constants
const (
	// DefaultMaxInputWords caps the text sent to the summarization model;
	// SUMMARY_MAX_INPUT_WORDS overrides it
	DefaultMaxInputWords = 3000

	// FallbackExcerptLength is how much of the input is returned when the
	// model call fails
	FallbackExcerptLength = 200
)
