package rssfeeds

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "just words", "just words"},
		{"tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"whitespace collapsed", "<div>\n  spaced \n out  </div>", "spaced out"},
		{"empty", "", ""},
		{"anchor text kept", `<a href="https://example.com">read more</a>`, "read more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractArticleEmptyURL(t *testing.T) {
	if _, err := ExtractArticle(""); err == nil {
		t.Fatal("expected error for empty URL")
	}
}
