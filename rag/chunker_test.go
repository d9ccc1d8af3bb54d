package rag

import (
	"strings"
	"testing"

	"newsrag/config"
)

func TestSplitTextShortInputSingleChunk(t *testing.T) {
	chunks := SplitText("a short piece of text")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "a short piece of text" {
		t.Errorf("chunk = %q", chunks[0])
	}
}

func TestSplitTextEmpty(t *testing.T) {
	if chunks := SplitText(""); chunks != nil {
		t.Fatalf("expected no chunks for empty input, got %d", len(chunks))
	}
}

func TestSplitTextBoundsAndOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 200) // 2000 chars
	chunks := SplitText(text)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i, chunk := range chunks {
		if n := len([]rune(chunk)); n > config.ChunkSize {
			t.Errorf("chunk %d has %d chars, max is %d", i, n, config.ChunkSize)
		}
	}

	// Consecutive chunks share ChunkOverlap characters
	for i := 0; i < len(chunks)-1; i++ {
		tail := chunks[i][len(chunks[i])-config.ChunkOverlap:]
		if !strings.HasPrefix(chunks[i+1], tail) {
			t.Errorf("chunk %d does not start with the %d-char tail of chunk %d", i+1, config.ChunkOverlap, i)
		}
	}

	// Nothing lost: stitching chunks minus overlaps reproduces the input
	var rebuilt strings.Builder
	rebuilt.WriteString(chunks[0])
	for i := 1; i < len(chunks); i++ {
		rebuilt.WriteString(chunks[i][config.ChunkOverlap:])
	}
	if rebuilt.String() != text {
		t.Error("stitched chunks do not reproduce the original text")
	}
}

func TestSplitTextExactChunkSize(t *testing.T) {
	text := strings.Repeat("x", config.ChunkSize)
	chunks := SplitText(text)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk for input of exactly ChunkSize, got %d", len(chunks))
	}
}
