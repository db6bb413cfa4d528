// Package analysis holds the provider-independent core of mbtilens: request
// validation, prompt construction, the sample-output generator, and the
// normalizer that turns free-form completions into the fixed Result shape.
package analysis

import (
	"fmt"
	"unicode/utf8"
)

// MaxTextLength is the maximum number of characters accepted in Request.Text.
const MaxTextLength = 500

// Request is the body accepted by POST /analyze.
type Request struct {
	Text   string `json:"text"`
	MBTI   string `json:"mbti"`
	Locale string `json:"locale"`

	// Sent by the extension but not used for analysis.
	Context string `json:"context,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Validate checks the required fields and the text length limit.
// Length is measured in characters, not bytes.
func (r Request) Validate() error {
	if r.Text == "" || r.MBTI == "" {
		return fmt.Errorf("%w: missing required parameter: text or mbti", ErrInvalidRequest)
	}
	if n := utf8.RuneCountInString(r.Text); n > MaxTextLength {
		return fmt.Errorf("%w: text exceeds %d character limit (got %d)", ErrInvalidRequest, MaxTextLength, n)
	}
	return nil
}

type Signal struct {
	Cue      string `json:"cue"`
	Evidence string `json:"evidence"`
}

type Lens struct {
	Focus            []string `json:"focus"`
	LikelyIntentions []string `json:"likely_intentions"`
	UnspokenNeeds    []string `json:"unspoken_needs"`
}

type Risk struct {
	Risk string `json:"risk"`
	Why  string `json:"why"`
}

// Result is the fixed response contract returned to the extension.
// Every key is always present; use WithDefaults before encoding.
type Result struct {
	Literal string   `json:"literal"`
	Signals []Signal `json:"signals"`
	Lens    Lens     `json:"mbti_lens"`
	Risks   []Risk   `json:"misunderstanding_risks"`
	Summary string   `json:"summary"`
}

// WithDefaults replaces nil sequences with empty ones so they encode as []
// instead of null.
func (r Result) WithDefaults() Result {
	if r.Signals == nil {
		r.Signals = []Signal{}
	}
	if r.Risks == nil {
		r.Risks = []Risk{}
	}
	if r.Lens.Focus == nil {
		r.Lens.Focus = []string{}
	}
	if r.Lens.LikelyIntentions == nil {
		r.Lens.LikelyIntentions = []string{}
	}
	if r.Lens.UnspokenNeeds == nil {
		r.Lens.UnspokenNeeds = []string{}
	}
	return r
}

// prefix returns the first n characters of s.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
