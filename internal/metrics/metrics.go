package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Store Metrics
	StoreErrorsTotal *prometheus.CounterVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	StatusSimulationsTotal *prometheus.CounterVec
	HistoryTrimmedTotal    prometheus.Counter
	PackagesPricedTotal    prometheus.Counter
	GroupDiscountsTotal    *prometheus.CounterVec
	SimulationJobDuration  prometheus.Histogram
}

var (
	once     sync.Once
	registry *MetricsRegistry
)

// NewMetricsRegistry returns the process-wide registry. promauto registers
// against the default registerer, so the vectors are built exactly once.
func NewMetricsRegistry() *MetricsRegistry {
	once.Do(func() {
		registry = build()
	})
	return registry
}

func build() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atlas_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "atlas_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "atlas_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		StoreErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atlas_store_errors_total",
				Help: "Store failures surfaced to callers, by operation",
			},
			[]string{"operation"},
		),

		CacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atlas_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atlas_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		StatusSimulationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atlas_status_simulations_total",
				Help: "Simulated flight status transitions by resulting status",
			},
			[]string{"status"},
		),
		HistoryTrimmedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "atlas_search_history_trimmed_total",
				Help: "Search history records pruned by the per-user retention cap",
			},
		),
		PackagesPricedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "atlas_packages_priced_total",
				Help: "Package price recalculations",
			},
		),
		GroupDiscountsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atlas_group_discounts_total",
				Help: "Group discount quotes by whether the threshold was met",
			},
			[]string{"applied"},
		),
		SimulationJobDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "atlas_status_simulation_job_duration_seconds",
				Help:    "Scheduled status simulation run time in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
	}
}
