package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/mlorentedev/mbtilens/internal/analysis"
)

const (
	ollamaDefaultURL   = "http://localhost:11434"
	ollamaDefaultModel = "qwen2.5:1.5b"
	ollamaTemperature  = 0.7
	ollamaNumPredict   = 1500
)

// OllamaAdapter connects to an Ollama instance via /api/chat.
type OllamaAdapter struct {
	Model  string
	client *api.Client
}

// NewOllamaAdapter returns an adapter for the server at baseURL
// (ollamaDefaultURL when empty). Ollama needs no credential.
func NewOllamaAdapter(baseURL, model string, httpClient *http.Client) (*OllamaAdapter, error) {
	if baseURL = strings.TrimSpace(baseURL); baseURL == "" {
		baseURL = ollamaDefaultURL
	}
	if model == "" {
		model = ollamaDefaultModel
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("ollama: parse base url: %w", err)
	}
	return &OllamaAdapter{
		Model:  model,
		client: api.NewClient(u, httpClient),
	}, nil
}

func (o *OllamaAdapter) Name() string {
	return fmt.Sprintf("Ollama (%s)", o.Model)
}

func (o *OllamaAdapter) Generate(ctx context.Context, text, mbti, locale string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: o.Model,
		Messages: []api.Message{
			{Role: "system", Content: analysis.BuildPrompt(mbti, locale)},
			{Role: "user", Content: analysis.UserPrompt(text, true)},
		},
		Stream: &stream,
		Options: map[string]any{
			"temperature": ollamaTemperature,
			"num_predict": ollamaNumPredict,
		},
	}

	var content strings.Builder
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			return "", statusError("ollama", statusErr.StatusCode, statusErr.ErrorMessage)
		}
		return "", fmt.Errorf("ollama: %w: %w", analysis.ErrUpstream, err)
	}

	return nonEmpty("ollama", content.String())
}

func (o *OllamaAdapter) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return o.client.Heartbeat(ctx) == nil
}
