package rssfeeds

import (
	"log"
	"time"

	"newsrag/config"
	"newsrag/types"

	"github.com/mmcdole/gofeed"
)

// Scraper fetches category feeds and assembles articles with full text.
type Scraper struct {
	parser *gofeed.Parser
	feeds  map[string][]string
	order  []string
	delay  time.Duration

	// extract is swappable so tests can avoid live extraction
	extract func(url string) (Extraction, error)
}

// NewScraper creates a Scraper over the configured category feeds.
func NewScraper() *Scraper {
	return &Scraper{
		parser:  gofeed.NewParser(),
		feeds:   CategoryFeeds,
		order:   categoryOrder,
		delay:   config.ExtractionDelay,
		extract: ExtractArticle,
	}
}

// FetchNews retrieves up to maxArticles articles spread across the given
// categories. A nil or empty category list means all configured categories.
// Feed and extraction failures are logged and skipped; they never abort
// the overall fetch.
func (s *Scraper) FetchNews(maxArticles int, categories []string) []types.Article {
	if maxArticles <= 0 {
		maxArticles = config.DefaultMaxArticles
	}
	if len(categories) == 0 {
		categories = s.orderedCategories()
	}

	perCategory := maxArticles / len(categories)
	if perCategory < 1 {
		perCategory = 1
	}

	articles := make([]types.Article, 0, maxArticles)

	for _, category := range categories {
		feeds, ok := s.feeds[category]
		if !ok {
			continue
		}

		accepted := 0
		for _, feedURL := range feeds {
			if accepted >= perCategory {
				break
			}

			feed, err := s.parser.ParseURL(feedURL)
			if err != nil {
				log.Printf("Feed read error %s: %v", feedURL, err)
				continue
			}

			source := feed.Title
			if source == "" {
				source = category
			}

			items := feed.Items
			if len(items) > config.MaxEntriesPerFeed {
				items = items[:config.MaxEntriesPerFeed]
			}

			for _, item := range items {
				if accepted >= perCategory {
					break
				}

				article := s.buildArticle(item, source, category)
				if article.Content != "" {
					articles = append(articles, article)
					accepted++
				}

				time.Sleep(s.delay)
			}
		}
	}

	if len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}
	return articles
}

// buildArticle maps one feed entry to an Article, preferring extracted
// full text and falling back to the feed description.
func (s *Scraper) buildArticle(item *gofeed.Item, source, category string) types.Article {
	published := item.Published
	if published == "" {
		published = time.Now().String()
	}

	article := types.Article{
		Title:       item.Title,
		URL:         item.Link,
		Source:      source,
		Category:    category,
		Published:   published,
		Description: StripHTML(item.Description),
	}
	if article.Title == "" {
		article.Title = "No title"
	}

	extracted, err := s.extract(article.URL)
	if err != nil {
		log.Printf("Extraction failed for %s, using feed description: %v", article.URL, err)
		article.Content = article.Description
		return article
	}

	article.Content = extracted.Text
	article.Image = extracted.Image
	if article.Content == "" {
		article.Content = article.Description
		article.Image = ""
	}
	return article
}

func (s *Scraper) orderedCategories() []string {
	out := make([]string, 0, len(s.feeds))
	for _, name := range s.order {
		if _, ok := s.feeds[name]; ok {
			out = append(out, name)
		}
	}
	// Categories outside the known order (test fixtures) are appended last
	for name := range s.feeds {
		if !contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
