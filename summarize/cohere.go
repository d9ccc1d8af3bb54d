package summarize

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const defaultCohereModel = "command-r-08-2024"

// CohereBackend summarizes via the Cohere chat API with an instruction
// prompt, since the dedicated summarize endpoint is deprecated.
type CohereBackend struct {
	client *cohereclient.Client
	model  string
}

// NewCohereBackend creates a backend using the Cohere chat API.
// COHERE_CHAT_MODEL overrides the default model.
func NewCohereBackend(token string) *CohereBackend {
	model := os.Getenv("COHERE_CHAT_MODEL")
	if model == "" {
		model = defaultCohereModel
	}

	// Force HTTP/1.1, same workaround as the embeddings client
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(token),
		cohereclient.WithHTTPClient(httpClient),
	)

	return &CohereBackend{client: client, model: model}
}

func (b *CohereBackend) Name() string { return "cohere/" + b.model }

func (b *CohereBackend) Generate(text string, minLength, maxLength int) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	sentences := maxLength / 30
	if sentences < 2 {
		sentences = 2
	}

	prompt := fmt.Sprintf(
		"Summarize the following news article in at most %d sentences. "+
			"Prioritize the main event, key facts and entities, numbers, dates and locations, "+
			"and the impact or next step. Write plain prose with no bullet points and no commentary.\n\n%s",
		sentences, text,
	)

	temperature := 0.3
	resp, err := b.client.Chat(ctx, &cohere.ChatRequest{
		Message:     prompt,
		Model:       &b.model,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil || resp.Text == "" {
		return "", errors.New("cohere chat returned empty response")
	}

	return resp.Text, nil
}
