package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlorentedev/mbtilens/internal/adapter"
	"github.com/mlorentedev/mbtilens/internal/handler"
	"github.com/mlorentedev/mbtilens/internal/middleware"
)

// SetupMux wires handlers with the full middleware chain.
func SetupMux(a adapter.LLMAdapter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", handler.Analyze(a))
	mux.HandleFunc("/health", handler.Health(a))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux)
}
