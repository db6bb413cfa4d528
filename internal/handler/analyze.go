package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/mlorentedev/mbtilens/internal/adapter"
	"github.com/mlorentedev/mbtilens/internal/analysis"
	"github.com/mlorentedev/mbtilens/internal/metrics"
	"github.com/mlorentedev/mbtilens/internal/middleware"
)

// Analyze handles POST /analyze. Input errors return 400 without touching
// the adapter; adapter errors return 500 with the error message. A
// completion that cannot be parsed still yields 200 with sample output.
func Analyze(a adapter.LLMAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req analysis.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		log := slog.With(
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"adapter", a.Name(),
		)
		metrics.InputChars.Observe(float64(utf8.RuneCountInString(req.Text)))

		start := time.Now()
		raw, err := a.Generate(r.Context(), req.Text, req.MBTI, req.Locale)
		elapsed := time.Since(start)
		metrics.AnalyzeDuration.WithLabelValues(a.Name()).Observe(elapsed.Seconds())

		if err != nil {
			log.Error("analyze failed", "error", err, "elapsed_ms", elapsed.Milliseconds())
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		result, source := analysis.Normalize(raw)
		metrics.NormalizeTotal.WithLabelValues(string(source)).Inc()
		if source == analysis.SourceFallback {
			log.Warn("completion had no parseable JSON, returning sample output", "completion_chars", utf8.RuneCountInString(raw))
		}
		log.Debug("analyze done",
			"mbti", req.MBTI,
			"locale", req.Locale,
			"client_source", req.Source,
			"normalized_from", source,
			"elapsed_ms", elapsed.Milliseconds(),
		)

		writeJSON(w, http.StatusOK, result)
	}
}
