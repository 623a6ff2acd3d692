// Package metrics registers the Prometheus collectors and exposes the
// /metrics handler mounted by the main entrypoint.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "detecporc_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})
	SuggestionsSubmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "detecporc_suggestions_submitted_total",
		Help: "Suggestions accepted into the moderation queue",
	})
	SuggestionsApprovedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "detecporc_suggestions_approved_total",
		Help: "Suggestions promoted to published points",
	})
	SuggestionsRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "detecporc_suggestions_rejected_total",
		Help: "Suggestions discarded by an administrator",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(SuggestionsSubmittedTotal)
	prometheus.MustRegister(SuggestionsApprovedTotal)
	prometheus.MustRegister(SuggestionsRejectedTotal)
}

// Handler returns the Prometheus scrape endpoint.
func Handler() http.Handler { return promhttp.Handler() }

// Middleware counts every request by method, chi route pattern and
// response status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
	})
}
