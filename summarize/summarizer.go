package summarize

import (
	"log"
	"os"
	"strconv"
	"strings"

	"newsrag/config"
	"newsrag/types"
)

// Backend generates a summary within the given length bounds. min and
// max are target token counts passed through to the model.
type Backend interface {
	Generate(text string, minLength, maxLength int) (string, error)
	Name() string
}

// LengthBounds maps a summary length profile to (min, max) token
// bounds. Both naming generations are accepted; unknown profiles fall
// back to Medium.
func LengthBounds(profile string) (int, int) {
	switch strings.ToLower(strings.TrimSpace(profile)) {
	case "brief", "short":
		return 30, 50
	case "detailed", "long":
		return 100, 150
	default:
		return 50, 100
	}
}

// Service produces best-effort article summaries. Every failure path
// degrades to a truncated excerpt of the input; callers never see an
// error from Summarize.
type Service struct {
	backend       Backend
	maxInputWords int
}

// NewService creates a Service over the given backend. backend may be
// nil, in which case every call takes the excerpt fallback.
func NewService(backend Backend) *Service {
	maxWords := config.DefaultMaxInputWords
	if v := os.Getenv("SUMMARY_MAX_INPUT_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxWords = n
		}
	}
	return &Service{backend: backend, maxInputWords: maxWords}
}

// NewServiceFromEnv selects a backend from configured credentials:
// Cohere chat when COHERE_API_KEY is set, the Hugging Face inference
// endpoint when HF_API_TOKEN is set, otherwise excerpt-only fallback.
func NewServiceFromEnv() *Service {
	var backend Backend
	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		backend = NewCohereBackend(key)
	} else if token := os.Getenv("HF_API_TOKEN"); token != "" {
		backend = NewHFBackend(token)
	}
	if backend != nil {
		log.Printf("Summarization backend: %s", backend.Name())
	} else {
		log.Printf("No summarization backend configured; summaries will be truncated excerpts")
	}
	return NewService(backend)
}

// Summarize returns a summary of text sized by the given length
// profile. The input is capped to a fixed word count before the model
// call; on any failure the first config.FallbackExcerptLength
// characters of the (possibly truncated) input are returned with a
// trailing ellipsis.
func (s *Service) Summarize(text, profile string) string {
	minLen, maxLen := LengthBounds(profile)

	truncated := truncateWords(text, s.maxInputWords)

	if s.backend == nil {
		return fallbackExcerpt(truncated)
	}

	summary, err := s.backend.Generate(truncated, minLen, maxLen)
	if err != nil {
		log.Printf("Summarize error: %v", err)
		return fallbackExcerpt(truncated)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return fallbackExcerpt(truncated)
	}
	return summary
}

// SummarizeArticles summarizes articles one at a time, preferring full
// content and falling back to the feed description. Articles with
// neither are skipped. Per-article failures degrade to excerpts inside
// Summarize, so the bulk path never fails as a whole.
func (s *Service) SummarizeArticles(articles []types.Article, profile string) []types.SummaryRecord {
	records := make([]types.SummaryRecord, 0, len(articles))
	for _, article := range articles {
		text := article.Content
		if text == "" {
			text = article.Description
		}
		if text == "" {
			continue
		}

		records = append(records, types.SummaryRecord{
			Title:     article.Title,
			Summary:   s.Summarize(text, profile),
			Source:    article.Source,
			URL:       article.URL,
			Image:     article.Image,
			Category:  article.Category,
			Published: article.Published,
		})
	}
	return records
}

func truncateWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ")
}

func fallbackExcerpt(text string) string {
	runes := []rune(text)
	if len(runes) > config.FallbackExcerptLength {
		runes = runes[:config.FallbackExcerptLength]
	}
	return string(runes) + "..."
}
