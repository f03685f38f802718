// Package bandalloc provides a Go library for allocating a finite bandwidth
// budget across a fixed, ordered list of competing demands.
//
// Four interchangeable allocation strategies are included — a greedy
// heuristic, a uniformly random baseline, and two exact optimizers (dynamic
// programming and backtracking) — plus an Auto-Select comparator that runs
// all of them and reports which strategy used the budget most effectively.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/Anoushka222/DAA-Project"
//
//	cfg := bandalloc.DefaultConfig()
//	engine, err := bandalloc.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := engine.Compare(ctx, 100, []int64{50, 40, 30, 60, 20})
//	// report.Best == "Greedy", report.BestTotal == 100
//
// # Key Properties
//
//   - Invariant: every strategy's achieved total never exceeds capacity
//   - Exact optimizers: DynamicProgramming and Backtracking always agree on
//     the optimal total and are deterministic
//   - Resource guards: the exact optimizers fail fast with a resource-limit
//     error instead of running unbounded; Auto-Select reports such a strategy
//     as unavailable rather than aborting the comparison
//   - Stateless: every request is independent; nothing persists between calls
//
// # Grant Semantics
//
// Greedy and Random grant partial, per-demand amounts, while the exact
// optimizers select whole demands or nothing. Each Allocation is tagged with
// the GrantSemantics that produced it; the two shapes are deliberately not
// unified.
//
// # Advanced Usage
//
// Custom strategies and observability:
//
//	engine, err := bandalloc.New(&cfg,
//	    bandalloc.WithLogger(logging.NewSlogDefault()),
//	    bandalloc.WithMetrics(metrics.NewPrometheus(prometheus.DefaultRegisterer)),
//	    bandalloc.WithRandomSeed(42),
//	)
//
// See the cmd/bandalloc directory for a complete CLI and HTTP front end.
package bandalloc
