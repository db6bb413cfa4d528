package analysis

import "errors"

var (
	// ErrInvalidRequest marks client input errors (missing fields, text too long).
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnsupportedProvider is returned when LLM_PROVIDER names no known backend.
	ErrUnsupportedProvider = errors.New("unsupported LLM provider")
	// ErrUpstream wraps failures reported by an LLM backend.
	ErrUpstream = errors.New("upstream error")
)
