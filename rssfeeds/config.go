package rssfeeds

import "newsrag/types"

// CategoryFeeds maps category names to their RSS feed URLs.
// Treated as read-only configuration; never mutated at runtime.
var CategoryFeeds = map[string][]string{
	"General": {
		"http://rss.cnn.com/rss/cnn_topstories.rss",
		"http://feeds.bbci.co.uk/news/rss.xml",
		"https://timesofindia.indiatimes.com/rssfeedstopstories.cms",
	},
	"Politics": {
		"https://indianexpress.com/section/politics/feed/",
		"https://www.thehindu.com/news/national/feeder/default.rss",
		"http://feeds.reuters.com/Reuters/PoliticsNews",
	},
	"Sports": {
		"https://timesofindia.indiatimes.com/rssfeeds/4719148.cms",
		"https://indianexpress.com/section/sports/feed/",
		"http://feeds.bbci.co.uk/sport/rss.xml",
	},
	"Business": {
		"https://economictimes.indiatimes.com/rssfeedstopstories.cms",
		"https://indianexpress.com/section/business/feed/",
		"http://feeds.reuters.com/reuters/businessNews",
	},
	"Technology": {
		"https://timesofindia.indiatimes.com/rssfeeds/66949542.cms",
		"https://indianexpress.com/section/technology/feed/",
		"http://feeds.reuters.com/reuters/technologyNews",
	},
	"Education": {
		"https://timesofindia.indiatimes.com/rssfeeds/913168846.cms",
		"https://indianexpress.com/section/education/feed/",
		"https://www.thehindu.com/news/national/feeder/default.rss",
	},
	"Entertainment": {
		"https://timesofindia.indiatimes.com/rssfeeds/1081479906.cms",
		"https://indianexpress.com/section/entertainment/feed/",
		"http://feeds.bbci.co.uk/news/entertainment_and_arts/rss.xml",
	},
	"International": {
		"http://feeds.reuters.com/Reuters/worldNews",
		"https://www.thehindu.com/news/international/feeder/default.rss",
		"http://feeds.bbci.co.uk/news/world/rss.xml",
	},
	"Health": {
		"https://timesofindia.indiatimes.com/rssfeeds/3908999.cms",
		"https://indianexpress.com/section/lifestyle/health/feed/",
		"http://feeds.reuters.com/reuters/health",
	},
}

// categoryOrder fixes the iteration order of CategoryFeeds, and doubles
// as the display order for the frontend category list.
var categoryOrder = []string{
	"General", "Politics", "Sports", "Business", "Technology",
	"Education", "Entertainment", "International", "Health",
}

var categoryIcons = map[string]string{
	"General":       "📰",
	"Politics":      "🏛️",
	"Sports":        "⚽",
	"Business":      "💼",
	"Technology":    "💻",
	"Education":     "📚",
	"Entertainment": "🎬",
	"International": "🌍",
	"Health":        "🏥",
}

// AvailableCategories returns all configured category names in display order.
func AvailableCategories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Categories returns the static name+icon list served by /api/categories.
func Categories() []types.Category {
	out := make([]types.Category, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		out = append(out, types.Category{Name: name, Icon: categoryIcons[name]})
	}
	return out
}
