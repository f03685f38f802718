package strategy

import (
	"slices"

	"github.com/Anoushka222/DAA-Project/types"
)

// Greedy implements the descending-sort partial-grant heuristic.
type Greedy struct{}

var _ types.AllocationStrategy = (*Greedy)(nil)

// NewGreedy creates a new greedy strategy.
//
// The strategy sorts demands in descending order and grants each demand
// min(demand, remaining) until the budget is exhausted. Because grants may be
// partial, leftover capacity smaller than the next demand is still used.
// This is an online, single-pass heuristic; it never exceeds capacity but is
// not guaranteed to reach the optimum.
//
// Returns:
//   - *Greedy: Initialized greedy strategy
//
// Example:
//
//	greedy := strategy.NewGreedy()
//	alloc, _ := greedy.Allocate(100, []int64{50, 40, 30, 60, 20})
//	// alloc.Grants == [60, 40], alloc.Total == 100
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Name returns types.StrategyGreedy.
func (g *Greedy) Name() types.StrategyName {
	return types.StrategyGreedy
}

// Semantics returns types.PartialGrant: one entry per demand granted, each
// possibly smaller than the demand itself.
func (g *Greedy) Semantics() types.GrantSemantics {
	return types.PartialGrant
}

// Allocate grants demands largest-first, possibly partially.
//
// The algorithm:
//  1. Sort a copy of the demands in descending order (input order is not
//     meaningful to Greedy and the caller's slice is never mutated)
//  2. Grant each demand min(demand, remaining)
//  3. Stop as soon as the remaining budget reaches zero
//
// Demands that were never reached get no entry in Grants, so the result may
// be shorter than the demand list.
//
// Parameters:
//   - capacity: Total allocatable budget
//   - demands: Demand sizes, any order
//
// Returns:
//   - types.Allocation: Partial grants in descending-demand order, Total <= capacity
//   - error: Always nil; Greedy has no resource limits
func (g *Greedy) Allocate(capacity int64, demands []int64) (types.Allocation, error) {
	sorted := slices.Clone(demands)
	slices.SortFunc(sorted, func(a, b int64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}

		return 0
	})

	grants := make([]int64, 0, len(sorted))
	remaining := capacity

	for _, d := range sorted {
		grant := min(d, remaining)
		grants = append(grants, grant)
		remaining -= grant
		if remaining <= 0 {
			break
		}
	}

	return types.NewAllocation(types.StrategyGreedy, types.PartialGrant, grants), nil
}
