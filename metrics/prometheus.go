package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Anoushka222/DAA-Project/types"
)

// PrometheusMetrics implements types.MetricsCollector backed by Prometheus
// collectors.
type PrometheusMetrics struct {
	allocationDuration *prometheus.HistogramVec
	utilization        *prometheus.HistogramVec
	unavailableTotal   *prometheus.CounterVec
	comparisonDuration prometheus.Histogram
	bestStrategyTotal  *prometheus.CounterVec
}

// Compile-time assertion that PrometheusMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusMetrics)(nil)

// NewPrometheus creates a metrics collector registered with reg.
//
// Registering two collectors with the same registerer panics (standard
// Prometheus behavior), so create at most one per registry.
//
// Parameters:
//   - reg: Target registerer (e.g., prometheus.DefaultRegisterer)
//
// Returns:
//   - *PrometheusMetrics: Collector with all metrics registered
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer)
//	engine, err := bandalloc.New(&cfg, bandalloc.WithMetrics(collector))
func NewPrometheus(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		allocationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bandalloc_allocation_duration_seconds",
			Help:    "Time taken by one strategy to compute an allocation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"strategy"}),
		utilization: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bandalloc_utilization_ratio",
			Help:    "Achieved total as a fraction of request capacity.",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}, []string{"strategy"}),
		unavailableTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bandalloc_strategy_unavailable_total",
			Help: "Strategy runs refused because a resource limit was exceeded.",
		}, []string{"strategy"}),
		comparisonDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bandalloc_comparison_duration_seconds",
			Help:    "Time taken by a full Auto-Select comparison.",
			Buckets: prometheus.DefBuckets,
		}),
		bestStrategyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bandalloc_best_strategy_total",
			Help: "Auto-Select comparisons won, by strategy.",
		}, []string{"strategy"}),
	}

	reg.MustRegister(
		m.allocationDuration,
		m.utilization,
		m.unavailableTotal,
		m.comparisonDuration,
		m.bestStrategyTotal,
	)

	return m
}

// RecordAllocationDuration records the time one strategy took.
func (m *PrometheusMetrics) RecordAllocationDuration(strategy types.StrategyName, duration float64) {
	m.allocationDuration.WithLabelValues(string(strategy)).Observe(duration)
}

// RecordUtilization records the fraction of capacity a strategy achieved.
// A zero-capacity request counts as full utilization.
func (m *PrometheusMetrics) RecordUtilization(strategy types.StrategyName, total, capacity int64) {
	ratio := 1.0
	if capacity > 0 {
		ratio = float64(total) / float64(capacity)
	}
	m.utilization.WithLabelValues(string(strategy)).Observe(ratio)
}

// RecordStrategyUnavailable counts a refused strategy run.
func (m *PrometheusMetrics) RecordStrategyUnavailable(strategy types.StrategyName) {
	m.unavailableTotal.WithLabelValues(string(strategy)).Inc()
}

// RecordComparisonDuration records the time a full comparison took.
func (m *PrometheusMetrics) RecordComparisonDuration(duration float64) {
	m.comparisonDuration.Observe(duration)
}

// RecordBestStrategy counts a comparison win for strategy.
func (m *PrometheusMetrics) RecordBestStrategy(strategy types.StrategyName) {
	m.bestStrategyTotal.WithLabelValues(string(strategy)).Inc()
}
