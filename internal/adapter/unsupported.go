package adapter

import (
	"context"
	"fmt"

	"github.com/mlorentedev/mbtilens/internal/analysis"
)

// UnsupportedAdapter stands in for an LLM_PROVIDER value that names no known
// backend. Every call fails so the misconfiguration surfaces per request.
type UnsupportedAdapter struct {
	Provider string
}

func (u *UnsupportedAdapter) Name() string {
	return fmt.Sprintf("Unsupported (%s)", u.Provider)
}

func (u *UnsupportedAdapter) Generate(ctx context.Context, text, mbti, locale string) (string, error) {
	return "", fmt.Errorf("%w: %s", analysis.ErrUnsupportedProvider, u.Provider)
}

func (u *UnsupportedAdapter) Available() bool { return false }
