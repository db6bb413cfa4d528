package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/mlorentedev/mbtilens/internal/analysis"
)

const (
	openAITemperature = 0.7
	openAIMaxTokens   = 1500
)

// OpenAIAdapter calls the Chat Completions API. BaseURL may point at any
// OpenAI-compatible server (llama.cpp, vLLM, LiteLLM); it should include the
// /v1 prefix.
type OpenAIAdapter struct {
	Model  string
	client openai.Client
	hasKey bool
}

// NewOpenAIAdapter builds an adapter that performs a single attempt per
// request. httpClient may be nil to use the SDK default.
func NewOpenAIAdapter(baseURL, apiKey, model string, httpClient *http.Client) *OpenAIAdapter {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &OpenAIAdapter{
		Model:  model,
		client: openai.NewClient(opts...),
		hasKey: apiKey != "",
	}
}

func (o *OpenAIAdapter) Name() string {
	return fmt.Sprintf("OpenAI (%s)", o.Model)
}

func (o *OpenAIAdapter) Generate(ctx context.Context, text, mbti, locale string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(analysis.BuildPrompt(mbti, locale)),
			openai.UserMessage(analysis.UserPrompt(text, true)),
		},
		Temperature: openai.Float(openAITemperature),
		MaxTokens:   openai.Int(openAIMaxTokens),
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", upstreamError("openai", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w: empty response choices", analysis.ErrUpstream)
	}

	return nonEmpty("openai", resp.Choices[0].Message.Content)
}

func (o *OpenAIAdapter) Available() bool {
	return o.hasKey
}
