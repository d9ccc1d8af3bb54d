package summarize

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultHFModel = "facebook/bart-large-cnn"

// HFBackend calls the Hugging Face Inference API summarization task.
// Request: {"inputs": text, "parameters": {"min_length": n, "max_length": m}}
// Response: [{"summary_text": "..."}]
type HFBackend struct {
	client *resty.Client
	model  string
}

// NewHFBackend creates a backend for the hosted summarization model.
// HF_MODEL overrides the default bart-large-cnn.
func NewHFBackend(token string) *HFBackend {
	model := os.Getenv("HF_MODEL")
	if model == "" {
		model = defaultHFModel
	}

	client := resty.New().
		SetBaseURL("https://api-inference.huggingface.co").
		SetAuthToken(token).
		SetTimeout(60 * time.Second)

	return &HFBackend{client: client, model: model}
}

func (b *HFBackend) Name() string { return "huggingface/" + b.model }

func (b *HFBackend) Generate(text string, minLength, maxLength int) (string, error) {
	var out []struct {
		SummaryText string `json:"summary_text"`
	}

	resp, err := b.client.R().
		SetBody(map[string]interface{}{
			"inputs": text,
			"parameters": map[string]interface{}{
				"min_length":  minLength,
				"max_length":  maxLength,
				"temperature": 0.2,
			},
		}).
		SetResult(&out).
		Post("/models/" + b.model)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("inference API error: status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out) == 0 || out[0].SummaryText == "" {
		return "", errors.New("inference API returned no summary")
	}

	return out[0].SummaryText, nil
}
