package handler

import (
	"net/http"

	"github.com/mlorentedev/mbtilens/internal/adapter"
	"github.com/mlorentedev/mbtilens/internal/metrics"
)

type adapterStatus struct {
	Name      string `json:"name"`
	Provider  string `json:"provider"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status  string        `json:"status"`
	Adapter adapterStatus `json:"adapter"`
}

// Health reports whether the configured adapter can serve requests. The
// service itself is always "ok"; an unavailable adapter is not an outage of
// this process.
func Health(a adapter.LLMAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := adapterStatus{Name: a.Name(), Provider: providerOf(a), Available: a.Available()}
		if !s.Available {
			s.Reason = unavailableReason(a)
		}

		gauge := 0.0
		if s.Available {
			gauge = 1
		}
		metrics.AdapterAvailable.WithLabelValues(s.Name).Set(gauge)

		writeJSON(w, http.StatusOK, healthResponse{
			Status:  "ok",
			Adapter: s,
		})
	}
}

func unavailableReason(a adapter.LLMAdapter) string {
	switch a.(type) {
	case *adapter.OpenAIAdapter, *adapter.ClaudeAdapter, *adapter.GeminiAdapter:
		return "no API key"
	case *adapter.OllamaAdapter:
		return "ollama unreachable"
	case *adapter.UnsupportedAdapter:
		return "unsupported provider"
	default:
		return "unavailable"
	}
}

func providerOf(a adapter.LLMAdapter) string {
	switch v := a.(type) {
	case *adapter.MockAdapter:
		return adapter.ProviderMock
	case *adapter.OpenAIAdapter:
		return adapter.ProviderOpenAI
	case *adapter.ClaudeAdapter:
		return adapter.ProviderAnthropic
	case *adapter.GeminiAdapter:
		return adapter.ProviderGemini
	case *adapter.OllamaAdapter:
		return adapter.ProviderOllama
	case *adapter.UnsupportedAdapter:
		return v.Provider
	default:
		return ""
	}
}
