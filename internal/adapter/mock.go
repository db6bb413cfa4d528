package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mlorentedev/mbtilens/internal/analysis"
)

// MockAdapter returns synthesized sample analyses with a configurable delay.
// Used when no backend is configured and for development.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Generate(ctx context.Context, text, mbti, locale string) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	data, err := json.Marshal(analysis.Mock(text, mbti, locale))
	if err != nil {
		return "", fmt.Errorf("mock: marshal: %w", err)
	}
	return string(data), nil
}

func (m *MockAdapter) Available() bool { return true }
