package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"newsrag/types"
)

// Client is a thin HTTP client for the news RAG API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL; empty means the
// local default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// FetchResponse is the /fetch-news payload.
type FetchResponse struct {
	Count    int             `json:"count"`
	Articles []types.Article `json:"articles"`
}

// SearchResponse is the /search payload.
type SearchResponse struct {
	Count   int                  `json:"count"`
	Results []types.SearchResult `json:"results"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status              string `json:"status"`
	Frontend            bool   `json:"frontend"`
	InferenceConfigured bool   `json:"inference_configured"`
	IndexedChunks       int    `json:"indexed_chunks"`
}

// FetchNews fetches and indexes articles via the API.
func (c *Client) FetchNews(ctx context.Context, categories []string, maxArticles int) (*FetchResponse, error) {
	payload := map[string]interface{}{"max_articles": maxArticles}
	if len(categories) > 0 {
		payload["categories"] = categories
	}

	var resp FetchResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, "/fetch-news", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search runs a semantic query via the API.
func (c *Client) Search(ctx context.Context, query string, k int) (*SearchResponse, error) {
	var resp SearchResponse
	payload := map[string]interface{}{"query": query, "k": k}
	if err := c.doJSONRequest(ctx, http.MethodPost, "/search", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Summarize summarizes raw text via the API.
func (c *Client) Summarize(ctx context.Context, text, length string) (string, error) {
	payload := map[string]interface{}{"text": text}
	if length != "" {
		payload["summary_length"] = length
	}

	var resp struct {
		Summary string `json:"summary"`
	}
	if err := c.doJSONRequest(ctx, http.MethodPost, "/summarize", payload, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

// Categories lists the configured categories.
func (c *Client) Categories(ctx context.Context) ([]types.Category, error) {
	var resp struct {
		Categories []types.Category `json:"categories"`
	}
	if err := c.doJSONRequest(ctx, http.MethodGet, "/api/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// Health fetches the service health report.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) doJSONRequest(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
