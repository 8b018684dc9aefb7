package prometheus

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"investment-service/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	LoginCounter           prometheus.Counter
	LoginFailureCounter    prometheus.Counter
	TokenValidationCounter prometheus.Counter

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Domain operation metrics
	UserOperationsCounter       prometheus.CounterVec
	InvestmentOperationsCounter prometheus.CounterVec

	initOnce sync.Once
)

// InitMetrics initializes Prometheus metrics with configuration. It is
// safe to call more than once; only the first call registers.
func InitMetrics(cfg *config.Config) {
	initOnce.Do(func() {
		// Use metric prefix from configuration
		prefix := cfg.Metrics.Prefix

		// HTTP request metrics
		HttpRequestsTotal = *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		// HTTP request duration
		HttpRequestDuration = *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		// Authentication metrics
		LoginCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_login_attempts_total",
				Help: "Total number of login attempts",
			},
		)

		LoginFailureCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_login_failures_total",
				Help: "Total number of rejected logins",
			},
		)

		TokenValidationCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_token_validations_total",
				Help: "Total number of token validation requests",
			},
		)

		// Database operation metrics
		DbOperationDuration = *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		)

		// User metrics
		UserOperationsCounter = *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_user_operations_total",
				Help: "Total number of user write operations",
			},
			[]string{"operation"},
		)

		// Investment metrics
		InvestmentOperationsCounter = *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_investment_operations_total",
				Help: "Total number of investment write operations",
			},
			[]string{"operation"},
		)
	})
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}
