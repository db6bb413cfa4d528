package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go/v3"

	"github.com/mlorentedev/mbtilens/internal/analysis"
)

// statusError formats a non-success response as
// "<provider>: upstream error: 401 Unauthorized - <body>".
func statusError(provider string, code int, body string) error {
	if body == "" {
		return fmt.Errorf("%s: %w: %d %s", provider, analysis.ErrUpstream, code, http.StatusText(code))
	}
	return fmt.Errorf("%s: %w: %d %s - %s", provider, analysis.ErrUpstream, code, http.StatusText(code), body)
}

// nonEmpty rejects a completion with no text. Normalize would turn it into
// sample output, which would hide a misbehaving backend.
func nonEmpty(provider, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%s: %w: empty completion", provider, analysis.ErrUpstream)
	}
	return text, nil
}

// upstreamError converts an SDK error into an analysis.ErrUpstream error,
// keeping the HTTP status and raw body when the SDK exposes them.
func upstreamError(provider string, err error) error {
	var oaiErr *openai.Error
	if errors.As(err, &oaiErr) {
		return statusError(provider, oaiErr.StatusCode, oaiErr.RawJSON())
	}
	var antErr *anthropic.Error
	if errors.As(err, &antErr) {
		return statusError(provider, antErr.StatusCode, antErr.RawJSON())
	}
	return fmt.Errorf("%s: %w: %w", provider, analysis.ErrUpstream, err)
}
