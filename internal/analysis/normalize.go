package analysis

import (
	"encoding/json"
	"regexp"
)

// Source reports which step of Normalize produced the result.
type Source string

const (
	SourceJSON      Source = "json"
	SourceExtracted Source = "extracted"
	SourceFallback  Source = "fallback"
)

// Inputs used for sample output when a completion cannot be parsed.
const (
	fallbackTextPrefix = 100
	fallbackMBTI       = "INTJ"
	fallbackLocale     = LocaleZhTW
)

// objectSpan is greedy: it spans from the first '{' to the last '}', even if
// prose between two separate objects gets captured.
var objectSpan = regexp.MustCompile(`\{[\s\S]*\}`)

type extractor func(raw string) (map[string]json.RawMessage, bool)

var extractors = []struct {
	source  Source
	extract extractor
}{
	{SourceJSON, parseObject},
	{SourceExtracted, parseObjectSpan},
}

// Normalize converts a raw completion into a Result. It never fails: text
// without a parseable JSON object degrades to sample output built from the
// first 100 characters of raw.
func Normalize(raw string) (Result, Source) {
	for _, e := range extractors {
		if obj, ok := e.extract(raw); ok {
			return fromObject(obj), e.source
		}
	}
	return Mock(prefix(raw, fallbackTextPrefix), fallbackMBTI, string(fallbackLocale)).WithDefaults(), SourceFallback
}

func parseObject(raw string) (map[string]json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func parseObjectSpan(raw string) (map[string]json.RawMessage, bool) {
	span := objectSpan.FindString(raw)
	if span == "" {
		return nil, false
	}
	return parseObject(span)
}

// fromObject decodes each expected field on its own. A missing field or one
// of the wrong type is left at its zero value.
func fromObject(obj map[string]json.RawMessage) Result {
	r := Result{
		Literal: field[string](obj, "literal"),
		Signals: field[[]Signal](obj, "signals"),
		Lens:    field[Lens](obj, "mbti_lens"),
		Risks:   field[[]Risk](obj, "misunderstanding_risks"),
		Summary: field[string](obj, "summary"),
	}
	return r.WithDefaults()
}

func field[T any](obj map[string]json.RawMessage, key string) T {
	var v T
	raw, ok := obj[key]
	if !ok {
		return v
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero
	}
	return v
}
