package strategy

import (
	"fmt"
	"slices"

	"github.com/Anoushka222/DAA-Project/types"
)

// DefaultDemandLimit bounds the demand count the backtracking optimizer
// accepts.
//
// The include/exclude decision tree has 2^n leaves; pruning helps but the
// worst case stays exponential, so the limit surfaces a resource-limit error
// instead of letting a long demand list run unbounded.
const DefaultDemandLimit = 30

// Backtracking implements the exact subset optimizer via depth-first search
// over the binary include/exclude decision tree.
type Backtracking struct {
	demandLimit int
}

var _ types.AllocationStrategy = (*Backtracking)(nil)

// BacktrackingOption configures a Backtracking strategy.
type BacktrackingOption func(*Backtracking)

// NewBacktracking creates a new backtracking strategy.
//
// The strategy explores every feasible subset of demands, pruning branches
// whose running total already exceeds capacity, and keeps the best subset
// seen. It yields the identical optimal total as NewDynamicProgramming for
// the same inputs; the two are cross-checks of each other.
//
// Parameters:
//   - opts: Optional configuration (WithDemandLimit)
//
// Returns:
//   - *Backtracking: Initialized strategy with DefaultDemandLimit
//
// Example:
//
//	bt := strategy.NewBacktracking(
//	    strategy.WithDemandLimit(20),
//	)
func NewBacktracking(opts ...BacktrackingOption) *Backtracking {
	bt := &Backtracking{demandLimit: DefaultDemandLimit}

	for _, opt := range opts {
		opt(bt)
	}

	return bt
}

// WithDemandLimit sets the maximum demand count the optimizer accepts.
//
// Allocate fails fast with types.ErrDemandCountLimit for longer demand lists.
//
// Parameters:
//   - limit: Maximum accepted demand count (must be > 0 to take effect)
//
// Returns:
//   - BacktrackingOption: Functional option for NewBacktracking
func WithDemandLimit(limit int) BacktrackingOption {
	return func(bt *Backtracking) {
		if limit > 0 {
			bt.demandLimit = limit
		}
	}
}

// Name returns types.StrategyBacktracking.
func (bt *Backtracking) Name() types.StrategyName {
	return types.StrategyBacktracking
}

// Semantics returns types.SubsetSelect.
func (bt *Backtracking) Semantics() types.GrantSemantics {
	return types.SubsetSelect
}

// bestTracker accumulates the best feasible subset seen during the search.
//
// It is owned by a single Allocate call and threaded through the recursion
// explicitly, so the search carries no shared or global state.
type bestTracker struct {
	total  int64
	grants []int64
}

// Allocate finds the optimal subset by pruned depth-first search.
//
// Each demand opens two branches: include it (only if the running total would
// stay within capacity) or exclude it. The include branch is explored first.
// The best total is updated whenever a feasible running total strictly
// exceeds it, which makes the returned subset the first maximal one in DFS
// order and the whole search deterministic.
//
// Parameters:
//   - capacity: Total allocatable budget
//   - demands: Demand sizes (count must be <= the configured limit)
//
// Returns:
//   - types.Allocation: Best subset in input order, Total is the proven maximum <= capacity
//   - error: types.ErrDemandCountLimit if the demand count exceeds the configured bound
func (bt *Backtracking) Allocate(capacity int64, demands []int64) (types.Allocation, error) {
	if len(demands) > bt.demandLimit {
		return types.Allocation{}, fmt.Errorf(
			"backtracking: %w (%d demands, limit %d)",
			types.ErrDemandCountLimit, len(demands), bt.demandLimit,
		)
	}

	best := bestTracker{grants: []int64{}}
	current := make([]int64, 0, len(demands))

	var walk func(i int, total int64)
	walk = func(i int, total int64) {
		if total > best.total {
			best.total = total
			best.grants = slices.Clone(current)
		}
		if i == len(demands) {
			return
		}

		// Include demands[i], unless that would exceed capacity.
		if d := demands[i]; total+d <= capacity {
			current = append(current, d)
			walk(i+1, total+d)
			current = current[:len(current)-1]
		}

		// Exclude demands[i].
		walk(i+1, total)
	}

	walk(0, 0)

	return types.NewAllocation(types.StrategyBacktracking, types.SubsetSelect, best.grants), nil
}
