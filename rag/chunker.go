package rag

import "newsrag/config"

// SplitText splits text into chunks of at most config.ChunkSize
// characters with config.ChunkOverlap characters shared between
// consecutive chunks. Splitting is character-based (runes), not
// token-based, so chunk boundaries may fall mid-sentence.
func SplitText(text string) []string {
	return splitRunes([]rune(text), config.ChunkSize, config.ChunkOverlap)
}

func splitRunes(runes []rune, size, overlap int) []string {
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= size {
		return []string{string(runes)}
	}

	step := size - overlap
	if step < 1 {
		step = 1
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
