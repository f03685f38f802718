package bandalloc

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Anoushka222/DAA-Project/internal/logging"
	"github.com/Anoushka222/DAA-Project/metrics"
	"github.com/Anoushka222/DAA-Project/strategy"
	"github.com/Anoushka222/DAA-Project/types"
)

// Engine runs allocation strategies over per-request capacity/demand inputs.
//
// Engine is the main entry point of the library. It validates inputs, owns
// the strategy set, and implements the Auto-Select comparison.
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Strategies are stateless; the Random strategy's seeded source is the
//     one exception and is internally synchronized
//
// Lifecycle:
//   - Create with New()
//   - Call Allocate() for one strategy or Compare() for Auto-Select
//   - Every request is independent; nothing persists between calls
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type Allocator interface {
//	    Allocate(ctx context.Context, name bandalloc.StrategyName, capacity int64, demands []int64) (bandalloc.Allocation, error)
//	}
type Engine struct {
	cfg     Config
	logger  Logger
	metrics MetricsCollector

	// strategies is keyed by name; order fixes the tie-break sequence.
	strategies map[StrategyName]AllocationStrategy
	order      []StrategyName
}

// New creates a new Engine with the provided configuration.
//
// Zero-valued limits in cfg are filled with defaults before validation, so
// `&Config{}` is a valid starting point. The built-in strategy set is
// constructed from the configured limits; options may override strategies,
// the logger, the metrics collector, and the Random seed.
//
// Returns a concrete *Engine struct following the "accept interfaces, return
// structs" principle.
//
// Parameters:
//   - cfg: Engine configuration (resource limits, comparison mode)
//   - opts: Optional configuration (logger, metrics, seed, strategies)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Validation error if the configuration is invalid
//
// Example:
//
//	cfg := bandalloc.DefaultConfig()
//	engine, err := bandalloc.New(&cfg, bandalloc.WithLogger(logger))
func New(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	resolved := *cfg
	resolved.applyDefaults()
	if err := resolved.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var options engineOptions
	for _, opt := range opts {
		opt(&options)
	}

	if options.logger == nil {
		options.logger = logging.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	var randomOpts []strategy.RandomOption
	if options.randSeed != nil {
		randomOpts = append(randomOpts, strategy.WithSeed(*options.randSeed))
	}

	engine := &Engine{
		cfg:        resolved,
		logger:     options.logger,
		metrics:    options.metrics,
		strategies: make(map[StrategyName]AllocationStrategy),
		order:      types.EvaluationOrder(),
	}

	for _, s := range []AllocationStrategy{
		strategy.NewGreedy(),
		strategy.NewDynamicProgramming(strategy.WithCapacityLimit(resolved.MaxCapacity)),
		strategy.NewBacktracking(strategy.WithDemandLimit(resolved.MaxDemands)),
		strategy.NewRandom(randomOpts...),
	} {
		engine.strategies[s.Name()] = s
	}

	for _, s := range options.strategies {
		if s == nil {
			return nil, ErrStrategyRequired
		}
		if _, known := engine.strategies[s.Name()]; !known {
			engine.order = append(engine.order, s.Name())
		}
		engine.strategies[s.Name()] = s
	}

	resolved.ValidateWithWarnings(engine.logger)

	return engine, nil
}

// Allocate runs a single named strategy against one request.
//
// Input validation happens before any allocator runs and is never partially
// applied: invalid input means no strategy is invoked.
//
// Parameters:
//   - ctx: Context checked before the strategy runs (the strategies
//     themselves are synchronous and do not suspend)
//   - name: Strategy to run; StrategyAuto is rejected, use Compare instead
//   - capacity: Total allocatable budget (>= 0)
//   - demands: Ordered demand sizes (each > 0)
//
// Returns:
//   - Allocation: The strategy's result, Total <= capacity
//   - error: Validation error, resource-limit error, or context error
func (e *Engine) Allocate(ctx context.Context, name StrategyName, capacity int64, demands []int64) (Allocation, error) {
	if err := ctx.Err(); err != nil {
		return Allocation{}, err
	}
	if name == StrategyAuto {
		return Allocation{}, fmt.Errorf("%w: %q is a comparison, use Compare", ErrUnknownStrategy, name)
	}
	if err := validateInput(capacity, demands); err != nil {
		return Allocation{}, err
	}

	s, ok := e.strategies[name]
	if !ok {
		return Allocation{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	alloc, err := e.run(s, capacity, demands)
	if err != nil {
		return Allocation{}, err
	}

	return alloc, nil
}

// Run dispatches a Request to Allocate or Compare and wraps the result in a
// Response, implementing the engine's single request/response contract.
//
// An empty Request.Strategy defaults to StrategyAuto.
//
// Parameters:
//   - ctx: Context for the request
//   - req: Capacity, demands, and the strategy to run
//
// Returns:
//   - *Response: Allocation for a single strategy, Report for Auto
//   - error: Validation error, resource-limit error, or context error
func (e *Engine) Run(ctx context.Context, req Request) (*Response, error) {
	name := req.Strategy
	if name == "" {
		name = StrategyAuto
	}
	if !name.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	if name == StrategyAuto {
		report, err := e.Compare(ctx, req.Capacity, req.Demands)
		if err != nil {
			return nil, err
		}

		return &Response{Strategy: report.Best, Report: report}, nil
	}

	alloc, err := e.Allocate(ctx, name, req.Capacity, req.Demands)
	if err != nil {
		return nil, err
	}

	return &Response{Strategy: name, Allocation: &alloc}, nil
}

// run executes one strategy and records its metrics.
func (e *Engine) run(s AllocationStrategy, capacity int64, demands []int64) (Allocation, error) {
	started := time.Now()
	alloc, err := s.Allocate(capacity, demands)
	e.metrics.RecordAllocationDuration(s.Name(), time.Since(started).Seconds())

	if err != nil {
		if types.IsResourceLimitError(err) {
			e.metrics.RecordStrategyUnavailable(s.Name())
			e.logger.Warn("strategy refused to run",
				"strategy", s.Name(),
				"capacity", capacity,
				"demands", len(demands),
				"error", err,
			)
		}

		return Allocation{}, err
	}

	e.metrics.RecordUtilization(s.Name(), alloc.Total, capacity)
	e.logger.Debug("strategy completed",
		"strategy", s.Name(),
		"total", alloc.Total,
		"capacity", capacity,
		"grants", len(alloc.Grants),
	)

	return alloc, nil
}

// validateInput enforces the engine-side input contract: capacity >= 0 and
// every demand > 0. Free-text token filtering is the caller's job.
func validateInput(capacity int64, demands []int64) error {
	if capacity < 0 {
		return fmt.Errorf("%w: got %d", types.ErrInvalidCapacity, capacity)
	}
	for i, d := range demands {
		if d <= 0 {
			return fmt.Errorf("%w: got %d at index %d", types.ErrInvalidDemand, d, i)
		}
	}

	return nil
}

// Request is the engine's logical request: one capacity/demand pair and the
// strategy to run over it.
type Request struct {
	// Capacity is the total allocatable budget. Must be >= 0.
	Capacity int64 `json:"capacity"`

	// Demands is the ordered list of demand sizes. Every element must be > 0;
	// the caller is responsible for filtering free-text input down to
	// positive integers before building a Request.
	Demands []int64 `json:"demands"`

	// Strategy selects the algorithm, or StrategyAuto to compare all of
	// them. Empty defaults to StrategyAuto.
	Strategy StrategyName `json:"strategy"`
}

// Response is the engine's reply to one Request. Exactly one of Allocation
// (single strategy) or Report (Auto) is set.
type Response struct {
	// Strategy is the strategy that produced the result; for Auto it is the
	// best strategy from the report.
	Strategy StrategyName `json:"strategy"`

	// Allocation is the single-strategy result.
	Allocation *Allocation `json:"allocation,omitempty"`

	// Report is the Auto-Select comparison result.
	Report *Report `json:"report,omitempty"`
}

// Strategies returns the engine's strategy evaluation order.
//
// The first four entries are always the canonical order that decides
// Auto-Select ties; injected custom strategies follow.
func (e *Engine) Strategies() []StrategyName {
	return slices.Clone(e.order)
}
