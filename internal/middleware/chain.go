package middleware

import (
	"net/http"
	"time"
)

const (
	maxBodyBytes   = 64 * 1024
	requestTimeout = 65 * time.Second
	timeoutBody    = `{"error":"request timeout","status":"error"}`
)

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → MaxBytes → Timeout → mux
func Chain(handler http.Handler) http.Handler {
	h := handler
	h = http.TimeoutHandler(h, requestTimeout, timeoutBody)
	h = MaxBytes(maxBodyBytes)(h)
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}
