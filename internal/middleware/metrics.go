package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipebook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"success"},
	)
	recipeUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_recipe_uploads_total",
			Help: "Recipe creations by result",
		},
		[]string{"result"},
	)
)

// Results recorded by RecordRecipeUpload.
const (
	UploadResultCreated    = "created"
	UploadResultRejected   = "rejected"
	UploadResultMediaError = "media_error"
	UploadResultStoreError = "store_error"
)

// PrometheusMiddleware records request duration labelled by chi route
// pattern, so ids in paths do not blow up cardinality.
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimid.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		httpRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(statusOf(ww))).
			Observe(time.Since(start).Seconds())
	})
}

// RecordLoginAttempt counts a login by outcome.
func RecordLoginAttempt(success bool) {
	loginAttempts.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// RecordRecipeUpload counts a recipe creation by result.
func RecordRecipeUpload(result string) {
	recipeUploads.WithLabelValues(result).Inc()
}

// statusOf treats a handler that never wrote a header as 200, which is
// what net/http sends in that case.
func statusOf(ww chimid.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
