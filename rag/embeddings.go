package rag

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// EmbeddingsProvider abstracts a text->embedding generator. Documents
// and queries must be embedded with the same model so they share an
// embedding space; implementations may still mark the intent, which
// some models use for asymmetric search.
type EmbeddingsProvider interface {
	EmbedDocuments(texts []string) ([][]float32, error)
	EmbedQuery(text string) ([]float32, error)
	ModelName() string
}

// NewEmbeddingsFromEnv returns an embeddings provider based on which
// credential is configured. Cohere is preferred, then OpenAI. Returns
// nil when neither key is set.
func NewEmbeddingsFromEnv() EmbeddingsProvider {
	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		// Force HTTP/1.1 to avoid HTTP/2 protocol errors seen against the
		// Cohere edge
		httpClient := &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
				ForceAttemptHTTP2: false,
			},
		}
		client := cohereclient.NewClient(
			cohereclient.WithToken(key),
			cohereclient.WithHTTPClient(httpClient),
		)
		model := os.Getenv("EMBEDDING_MODEL")
		if model == "" || !strings.HasPrefix(model, "embed-") {
			model = "embed-english-v3.0"
		}
		return &CohereEmbeddings{client: client, model: model}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		model := os.Getenv("EMBEDDING_MODEL")
		if model == "" {
			model = "text-embedding-3-small"
		}
		return &OpenAIEmbeddings{apiKey: key, model: model}
	}

	return nil
}

// CohereEmbeddings generates embeddings with the Cohere Embed API (v2).
// Docs: https://docs.cohere.com/reference/embed
type CohereEmbeddings struct {
	client *cohereclient.Client
	model  string
}

func (c *CohereEmbeddings) ModelName() string { return c.model }

func (c *CohereEmbeddings) EmbedDocuments(texts []string) ([][]float32, error) {
	return c.embed(texts, cohere.EmbedInputTypeSearchDocument)
}

func (c *CohereEmbeddings) EmbedQuery(text string) ([]float32, error) {
	vecs, err := c.embed([]string{text}, cohere.EmbedInputTypeSearchQuery)
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (c *CohereEmbeddings) embed(texts []string, inputType cohere.EmbedInputType) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	resp, err := c.client.V2.Embed(
		ctx,
		&cohere.V2EmbedRequest{
			Texts:          texts,
			Model:          c.model,
			InputType:      inputType,
			EmbeddingTypes: []cohere.EmbeddingType{cohere.EmbeddingTypeFloat},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("cohere embed error: %w", err)
	}
	if resp == nil || resp.Embeddings == nil || resp.Embeddings.Float == nil {
		return nil, errors.New("cohere embed returned no float embeddings")
	}

	floats := resp.Embeddings.Float
	if len(floats) != len(texts) {
		return nil, errors.New("embedding count mismatch")
	}

	out := make([][]float32, len(floats))
	for i, vec := range floats {
		fv := make([]float32, len(vec))
		for j, v := range vec {
			fv[j] = float32(v)
		}
		out[i] = fv
	}
	return out, nil
}

// OpenAIEmbeddings generates embeddings with the OpenAI Embeddings API.
// Endpoint: POST https://api.openai.com/v1/embeddings
// Request: {"input": ["text1", ...], "model": "text-embedding-3-small"}
// Response: {"data": [{"embedding": [...], "index": 0}, ...]}
type OpenAIEmbeddings struct {
	apiKey   string
	model    string
	endpoint string
}

func (o *OpenAIEmbeddings) ModelName() string { return o.model }

func (o *OpenAIEmbeddings) EmbedDocuments(texts []string) ([][]float32, error) {
	return o.embed(texts)
}

func (o *OpenAIEmbeddings) EmbedQuery(text string) ([]float32, error) {
	vecs, err := o.embed([]string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (o *OpenAIEmbeddings) embed(texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	endpoint := o.endpoint
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1/embeddings"
	}

	payload := map[string]interface{}{
		"input": texts,
		"model": o.model,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", o.apiKey))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, fmt.Errorf("openai embeddings error: status %d: %v", resp.StatusCode, body)
	}

	var parsed struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
			Index     int       `json:"index"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Data) != len(texts) {
		return nil, errors.New("embedding count mismatch")
	}

	out := make([][]float32, len(parsed.Data))
	for i, d := range parsed.Data {
		vec := make([]float32, len(d.Embedding))
		for j, v := range d.Embedding {
			vec[j] = float32(v)
		}
		out[i] = vec
	}
	return out, nil
}
