package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mbtilens_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// AnalyzeDuration tracks backend latency per adapter, failures included.
	AnalyzeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mbtilens_analyze_duration_seconds",
		Help:    "Time spent waiting for the LLM backend.",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"adapter"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mbtilens_input_chars",
		Help:    "Number of characters in analyze input text.",
		Buckets: []float64{10, 25, 50, 100, 200, 300, 400, 500},
	})

	// NormalizeTotal counts how completions were turned into results:
	// parsed as-is, extracted from surrounding text, or replaced by sample output.
	NormalizeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mbtilens_normalize_total",
		Help: "Completions normalized, by source.",
	}, []string{"source"})

	// AdapterAvailable tracks whether the configured adapter is usable.
	AdapterAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mbtilens_adapter_available",
		Help: "Whether an LLM adapter is available (1) or not (0).",
	}, []string{"adapter"})
)
