package http

import (
	"net/http"
	"time"

	"weatherfav/internal/logger"
)

// withLogging emits one access-log entry per request once the downstream
// handler has returned. Only the request line and response metadata are
// recorded; form bodies and the session cookie stay out of the logs.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("bytes", lw.size).
			Send()
	})
}
