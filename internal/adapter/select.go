package adapter

import (
	"context"

	"github.com/mlorentedev/mbtilens/internal/config"
)

// FromConfig picks the adapter named by cfg.Provider. An unset provider, an
// explicit "mock", or a missing credential selects the MockAdapter. Ollama is
// the only backend that runs without a credential. An unknown provider yields
// an UnsupportedAdapter rather than an error so that each request reports the
// misconfiguration.
func FromConfig(ctx context.Context, cfg config.Config) (LLMAdapter, error) {
	if cfg.Provider == "" || cfg.Provider == ProviderMock {
		return &MockAdapter{}, nil
	}
	if cfg.APIKey == "" && cfg.Provider != ProviderOllama {
		return &MockAdapter{}, nil
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIAdapter(cfg.BaseURL, cfg.APIKey, cfg.Model, nil), nil
	case ProviderAnthropic:
		return NewClaudeAdapter(cfg.BaseURL, cfg.APIKey, cfg.Model, nil), nil
	case ProviderGemini:
		g, err := NewGeminiAdapter(ctx, cfg.BaseURL, cfg.APIKey, cfg.Model, nil)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderOllama:
		o, err := NewOllamaAdapter(cfg.BaseURL, cfg.Model, nil)
		if err != nil {
			return nil, err
		}
		return o, nil
	default:
		return &UnsupportedAdapter{Provider: cfg.Provider}, nil
	}
}
