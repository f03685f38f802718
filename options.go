package bandalloc

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	logger     Logger
	metrics    MetricsCollector
	randSeed   *uint64
	strategies []AllocationStrategy
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	engine, err := bandalloc.New(&cfg, bandalloc.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer)
//	engine, err := bandalloc.New(&cfg, bandalloc.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithRandomSeed seeds the Random strategy's randomness source.
//
// Production code should normally omit this option and let Random draw from
// real entropy; tests set a seed so repeated runs produce identical reports.
//
// Parameters:
//   - seed: PCG seed for the Random strategy
//
// Returns:
//   - Option: Functional option for New
func WithRandomSeed(seed uint64) Option {
	return func(o *engineOptions) {
		o.randSeed = &seed
	}
}

// WithStrategies replaces built-in strategies with custom implementations.
//
// Each injected strategy replaces the built-in one with the same Name();
// strategies with new names are added and participate in Auto-Select after
// the built-in evaluation order.
//
// Parameters:
//   - strategies: AllocationStrategy implementations
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	dp := strategy.NewDynamicProgramming(strategy.WithCapacityLimit(5000))
//	engine, err := bandalloc.New(&cfg, bandalloc.WithStrategies(dp))
func WithStrategies(strategies ...AllocationStrategy) Option {
	return func(o *engineOptions) {
		o.strategies = append(o.strategies, strategies...)
	}
}
