package types

// Article represents a single news story assembled from one feed entry.
// Content holds the extracted full text, or the feed description when
// extraction failed. Published is kept as the feed-supplied string.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	Published   string `json:"published"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Image       string `json:"image,omitempty"`
}

// SummaryRecord pairs an article's metadata with its generated summary.
type SummaryRecord struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Source    string `json:"source"`
	URL       string `json:"url"`
	Image     string `json:"image,omitempty"`
	Category  string `json:"category"`
	Published string `json:"published"`
}

// SearchResult is the normalized record returned for one matching chunk.
type SearchResult struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	URL       string `json:"url"`
	Published string `json:"published"`
	Snippet   string `json:"snippet"`
}

// Category is an entry of the static category list exposed to the frontend.
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}
