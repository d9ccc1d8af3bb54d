package rssfeeds

import (
	"fmt"
	"strings"

	"newsrag/config"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Extraction holds the usable parts of a full-text extraction.
type Extraction struct {
	Text  string
	Image string
}

// ExtractArticle fetches a page and extracts its readable text and lead
// image using go-readability.
func ExtractArticle(url string) (Extraction, error) {
	if url == "" {
		return Extraction{}, fmt.Errorf("article URL is empty")
	}

	article, err := readability.FromURL(url, config.ExtractorTimeout)
	if err != nil {
		return Extraction{}, fmt.Errorf("readability extraction failed: %w", err)
	}

	return Extraction{
		Text:  strings.TrimSpace(article.TextContent),
		Image: article.Image,
	}, nil
}

// StripHTML reduces a feed-supplied HTML description to plain text.
// Feeds routinely embed markup in summaries; storing plain text keeps
// chunking and summarization clean.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}
