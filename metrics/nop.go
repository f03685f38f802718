// Package metrics provides types.MetricsCollector implementations.
//
// Two collectors are included:
//   - NopMetrics: Discards everything; the Engine default
//   - PrometheusMetrics: Records to a prometheus.Registerer
package metrics

import "github.com/Anoushka222/DAA-Project/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	engine, err := bandalloc.New(&cfg, bandalloc.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordAllocationDuration discards the duration metric.
func (n *NopMetrics) RecordAllocationDuration(_ types.StrategyName, _ float64) {}

// RecordUtilization discards the utilization metric.
func (n *NopMetrics) RecordUtilization(_ types.StrategyName, _, _ int64) {}

// RecordStrategyUnavailable discards the unavailability counter.
func (n *NopMetrics) RecordStrategyUnavailable(_ types.StrategyName) {}

// RecordComparisonDuration discards the comparison duration metric.
func (n *NopMetrics) RecordComparisonDuration(_ float64) {}

// RecordBestStrategy discards the best-strategy counter.
func (n *NopMetrics) RecordBestStrategy(_ types.StrategyName) {}
