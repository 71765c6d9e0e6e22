package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	rosterResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_resolutions_total",
			Help: "Campaign membership resolutions by outcome",
		},
		[]string{"outcome"},
	)

	rosterPages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roster_pages_fetched_total",
			Help: "Total number of campaign roster pages fetched",
		},
	)

	leadsEnrolled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_enrolled_total",
			Help: "Total number of leads added to a campaign",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern keeps campaign ids out of the label set.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// PromRecorder feeds use case events into the prometheus counters.
type PromRecorder struct{}

func (PromRecorder) RecordRosterResolution(outcome string) {
	rosterResolutions.WithLabelValues(outcome).Inc()
}

func (PromRecorder) RecordRosterPage() {
	rosterPages.Inc()
}

func (PromRecorder) RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}

func (PromRecorder) RecordLeadEnrolled() {
	leadsEnrolled.Inc()
}
