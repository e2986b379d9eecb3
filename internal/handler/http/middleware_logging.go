package http

import (
	"net/http"
	"time"

	"github.com/avolkhin/phototeka/internal/logger"
)

// withLogging emits one structured access-log line per request, carrying the
// method, URI, response status, body size and handling duration. It relies on
// withTraceID running earlier in the chain so the line is trace-correlated.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request served")
	})
}
