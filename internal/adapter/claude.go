package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/mlorentedev/mbtilens/internal/analysis"
)

const (
	claudeDefaultModel = "claude-3-sonnet-20240229"
	claudeMaxTokens    = 1024
)

// ClaudeAdapter connects to the Anthropic Messages API.
type ClaudeAdapter struct {
	Model  string
	client anthropic.Client
	hasKey bool
}

// NewClaudeAdapter builds an adapter that performs a single attempt per
// request. An empty model selects claudeDefaultModel.
func NewClaudeAdapter(baseURL, apiKey, model string, httpClient *http.Client) *ClaudeAdapter {
	if model == "" {
		model = claudeDefaultModel
	}
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
	return &ClaudeAdapter{
		Model:  model,
		client: anthropic.NewClient(opts...),
		hasKey: apiKey != "",
	}
}

func (c *ClaudeAdapter) Name() string {
	return fmt.Sprintf("Claude (%s)", c.Model)
}

func (c *ClaudeAdapter) Generate(ctx context.Context, text, mbti, locale string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.Model),
		MaxTokens: claudeMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: analysis.BuildPrompt(mbti, locale)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(analysis.UserPrompt(text, false))),
		},
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", upstreamError("claude", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("claude: %w: empty response content", analysis.ErrUpstream)
	}

	var result strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			result.WriteString(block.Text)
		}
	}

	return nonEmpty("claude", result.String())
}

func (c *ClaudeAdapter) Available() bool {
	return c.hasKey
}
