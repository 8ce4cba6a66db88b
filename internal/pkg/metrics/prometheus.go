package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fraudguard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fraudguard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fraudguard",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Alert lifecycle metrics
	alertTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fraudguard",
			Subsystem: "alert",
			Name:      "transitions_total",
			Help:      "Alert actions by action and result (applied, rejected, not_found)",
		},
		[]string{"action", "result"},
	)

	alertsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "fraudguard",
			Subsystem: "alert",
			Name:      "status_count",
			Help:      "Number of alerts in each lifecycle status",
		},
		[]string{"status"},
	)

	activeAlerts = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "fraudguard",
			Subsystem: "alert",
			Name:      "active_count",
			Help:      "Number of active alerts by severity",
		},
		[]string{"severity"},
	)

	// Record metrics
	transactionsByRisk = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "fraudguard",
			Subsystem: "transaction",
			Name:      "total_count",
			Help:      "Number of transactions by risk level",
		},
		[]string{"risk_level"},
	)

	usersByRisk = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "fraudguard",
			Subsystem: "user",
			Name:      "total_count",
			Help:      "Number of user profiles by risk level",
		},
		[]string{"risk_level"},
	)

	statsRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fraudguard",
			Subsystem: "stats",
			Name:      "refresh_total",
			Help:      "Summary refresh runs by outcome",
		},
		[]string{"status"},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		// Label by route pattern so ids don't explode cardinality
		routePattern := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			routePattern = rctx.RoutePattern()
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAlertTransition records the outcome of an alert action
func RecordAlertTransition(action, result string) {
	alertTransitionsTotal.WithLabelValues(action, result).Inc()
}

// SetAlertsByStatus sets the gauge for alerts in a status
func SetAlertsByStatus(status string, count float64) {
	alertsByStatus.WithLabelValues(status).Set(count)
}

// SetActiveAlerts sets the gauge for active alerts by severity
func SetActiveAlerts(severity string, count float64) {
	activeAlerts.WithLabelValues(severity).Set(count)
}

// SetTransactionsByRisk sets the gauge for transactions by risk level
func SetTransactionsByRisk(level string, count float64) {
	transactionsByRisk.WithLabelValues(level).Set(count)
}

// SetUsersByRisk sets the gauge for users by risk level
func SetUsersByRisk(level string, count float64) {
	usersByRisk.WithLabelValues(level).Set(count)
}

// RecordStatsRefresh records a summary refresh run
func RecordStatsRefresh(status string) {
	statsRefreshTotal.WithLabelValues(status).Inc()
}
