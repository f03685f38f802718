package bandalloc

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Anoushka222/DAA-Project/types"
)

// Compare implements Auto-Select: it runs every strategy with the same
// capacity and demands, collects each achieved total into a Report, and
// picks the best strategy.
//
// Ties are broken by evaluation order (Greedy, DynamicProgramming,
// Backtracking, Random): the first maximal total encountered wins. A
// strategy that fails its resource-limit guard is reported as unavailable
// instead of aborting the whole comparison.
//
// The strategies share no state and are run concurrently unless
// Config.Sequential is set; either way the report is assembled only after
// all of them have completed, so the two modes produce identical reports.
// One invocation of the Random strategy's non-determinism is baked into each
// report: repeated comparisons may differ purely in the Random entry.
//
// Parameters:
//   - ctx: Context for the comparison
//   - capacity: Total allocatable budget (>= 0)
//   - demands: Ordered demand sizes (each > 0)
//
// Returns:
//   - *Report: Best strategy, its total, and every strategy's outcome
//   - error: Validation error, context error, or ErrNoStrategyAvailable if
//     every strategy was unavailable
func (e *Engine) Compare(ctx context.Context, capacity int64, demands []int64) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateInput(capacity, demands); err != nil {
		return nil, err
	}

	started := time.Now()

	type outcome struct {
		alloc Allocation
		err   error
	}
	outcomes := make([]outcome, len(e.order))

	if e.cfg.Sequential {
		for i, name := range e.order {
			alloc, err := e.run(e.strategies[name], capacity, demands)
			outcomes[i] = outcome{alloc: alloc, err: err}
		}
	} else {
		group, _ := errgroup.WithContext(ctx)
		for i, name := range e.order {
			group.Go(func() error {
				alloc, err := e.run(e.strategies[name], capacity, demands)
				outcomes[i] = outcome{alloc: alloc, err: err}

				// Per-strategy errors become "unavailable" report entries and
				// must not cancel the sibling strategies.
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
	}

	report := &Report{
		Totals:      make(map[StrategyName]int64, len(e.order)),
		Allocations: make(map[StrategyName]Allocation, len(e.order)),
		Unavailable: make(map[StrategyName]string),
	}

	found := false
	for i, name := range e.order {
		if err := outcomes[i].err; err != nil {
			report.Unavailable[name] = err.Error()
			continue
		}

		alloc := outcomes[i].alloc
		report.Totals[name] = alloc.Total
		report.Allocations[name] = alloc

		// Strict comparison keeps the first maximal entry, which is the
		// evaluation-order tie-break.
		if !found || alloc.Total > report.BestTotal {
			found = true
			report.Best = name
			report.BestTotal = alloc.Total
		}
	}

	if !found {
		return nil, types.ErrNoStrategyAvailable
	}
	if len(report.Unavailable) == 0 {
		report.Unavailable = nil
	}

	e.metrics.RecordComparisonDuration(time.Since(started).Seconds())
	e.metrics.RecordBestStrategy(report.Best)
	e.logger.Info("comparison completed",
		"best", report.Best,
		"bestTotal", report.BestTotal,
		"capacity", capacity,
		"unavailable", len(report.Unavailable),
	)

	return report, nil
}
