package adapter

import "context"

// Provider names accepted in LLM_PROVIDER.
const (
	ProviderMock      = "mock"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOllama    = "ollama"
)

// LLMAdapter defines the contract for LLM backends. Generate returns the raw
// completion text; callers normalize it with analysis.Normalize.
type LLMAdapter interface {
	Name() string
	Generate(ctx context.Context, text, mbti, locale string) (string, error)
	Available() bool
}
