package middleware

import (
	"net/http"
	"time"

	chimid "github.com/go-chi/chi/v5/middleware"

	"RECIPEBOOK_BACK-END/internal/logger"
)

// RequestLogger attaches a request-scoped logger to the context and logs
// one line per request once the response is written.
func RequestLogger(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLog := base.With().
				Str("request_id", chimid.GetReqID(r.Context())).
				Logger()
			r = r.WithContext(reqLog.WithContext(r.Context()))

			ww := chimid.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			reqLog.Info().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("remote_addr", r.RemoteAddr).
				Int("status", statusOf(ww)).
				Int("size", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
