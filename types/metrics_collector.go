package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from concurrent strategy runs and must be
// thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	AllocationMetrics
	ComparisonMetrics
}

// AllocationMetrics defines metrics for single-strategy allocation runs.
type AllocationMetrics interface {
	// RecordAllocationDuration records the time one strategy took.
	//
	// Parameters:
	//   - strategy: Strategy that ran
	//   - duration: Time taken in seconds
	RecordAllocationDuration(strategy StrategyName, duration float64)

	// RecordUtilization records the fraction of capacity a strategy achieved.
	//
	// Parameters:
	//   - strategy: Strategy that ran
	//   - total: Achieved total
	//   - capacity: Request capacity (utilization is total/capacity; calls
	//     with capacity 0 are recorded as full utilization)
	RecordUtilization(strategy StrategyName, total, capacity int64)

	// RecordStrategyUnavailable records a strategy refusing to run because a
	// resource limit was exceeded.
	RecordStrategyUnavailable(strategy StrategyName)
}

// ComparisonMetrics defines metrics for Auto-Select comparison runs.
type ComparisonMetrics interface {
	// RecordComparisonDuration records the time a full comparison took.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	RecordComparisonDuration(duration float64)

	// RecordBestStrategy records which strategy won a comparison.
	RecordBestStrategy(strategy StrategyName)
}
