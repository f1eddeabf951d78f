package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the digiboard API
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Business Metrics
	FlightsCreatedTotal   prometheus.Counter
	DashboardRequestTotal prometheus.Counter
	BoardRequestTotal     prometheus.Counter
	LoginAttemptsTotal    prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "digiboard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "digiboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "digiboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "digiboard_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "digiboard_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Business Metrics
		FlightsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "digiboard_flights_created_total",
				Help: "Total flight records created through the API",
			},
		),
		DashboardRequestTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "digiboard_dashboard_requests_total",
				Help: "Total dashboard statistics requests served",
			},
		),
		BoardRequestTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "digiboard_board_requests_total",
				Help: "Total public digital board requests served",
			},
		),
		LoginAttemptsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "digiboard_login_attempts_total",
				Help: "Total login attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}
