package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/mlorentedev/mbtilens/internal/analysis"
)

const (
	geminiDefaultModel     = "gemini-2.5-flash"
	geminiTemperature      = 0.7
	geminiMaxOutputTokens  = 1500
	geminiResponseMIMEType = "application/json"
)

// GeminiAdapter calls the Gemini API generateContent endpoint.
type GeminiAdapter struct {
	Model  string
	client *genai.Client
	hasKey bool
}

// NewGeminiAdapter builds a Gemini API client. An empty model selects
// geminiDefaultModel; baseURL and httpClient are optional.
func NewGeminiAdapter(ctx context.Context, baseURL, apiKey, model string, httpClient *http.Client) (*GeminiAdapter, error) {
	if model == "" {
		model = geminiDefaultModel
	}
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiAdapter{
		Model:  model,
		client: client,
		hasKey: apiKey != "",
	}, nil
}

func (g *GeminiAdapter) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.Model)
}

func (g *GeminiAdapter) Generate(ctx context.Context, text, mbti, locale string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(analysis.BuildPrompt(mbti, locale), genai.RoleUser),
		Temperature:       genai.Ptr[float32](geminiTemperature),
		MaxOutputTokens:   geminiMaxOutputTokens,
		ResponseMIMEType:  geminiResponseMIMEType,
	}

	res, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(analysis.UserPrompt(text, true)), config)
	if err != nil {
		return "", fmt.Errorf("gemini: %w: %w", analysis.ErrUpstream, err)
	}

	// A blocked prompt comes back with no candidates.
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: %w: empty response candidates", analysis.ErrUpstream)
	}

	return nonEmpty("gemini", res.Text())
}

func (g *GeminiAdapter) Available() bool {
	return g.hasKey
}
