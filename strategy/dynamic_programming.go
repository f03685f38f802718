package strategy

import (
	"fmt"

	"github.com/Anoushka222/DAA-Project/types"
)

// DefaultCapacityLimit bounds the capacity the DP optimizer accepts.
//
// The DP table is (n+1)*(capacity+1) entries, so both time and memory scale
// linearly with capacity. The limit surfaces a resource-limit error instead
// of letting a huge capacity allocate an unbounded table.
const DefaultCapacityLimit int64 = 1 << 20

// DynamicProgramming implements the exact subset optimizer via a 0/1
// knapsack table where each demand's weight and value are both its size.
type DynamicProgramming struct {
	capacityLimit int64
}

var _ types.AllocationStrategy = (*DynamicProgramming)(nil)

// DynamicProgrammingOption configures a DynamicProgramming strategy.
type DynamicProgrammingOption func(*DynamicProgramming)

// NewDynamicProgramming creates a new dynamic-programming strategy.
//
// The strategy finds the provably maximum achievable total not exceeding
// capacity by selecting a subset of whole demands (classic subset-sum
// optimality). It is deterministic: identical inputs yield identical
// allocations.
//
// Parameters:
//   - opts: Optional configuration (WithCapacityLimit)
//
// Returns:
//   - *DynamicProgramming: Initialized strategy with DefaultCapacityLimit
//
// Example:
//
//	dp := strategy.NewDynamicProgramming(
//	    strategy.WithCapacityLimit(100_000),
//	)
func NewDynamicProgramming(opts ...DynamicProgrammingOption) *DynamicProgramming {
	dp := &DynamicProgramming{capacityLimit: DefaultCapacityLimit}

	for _, opt := range opts {
		opt(dp)
	}

	return dp
}

// WithCapacityLimit sets the maximum capacity the optimizer accepts.
//
// Allocate fails fast with types.ErrCapacityLimit for larger capacities.
//
// Parameters:
//   - limit: Maximum accepted capacity (must be > 0 to take effect)
//
// Returns:
//   - DynamicProgrammingOption: Functional option for NewDynamicProgramming
func WithCapacityLimit(limit int64) DynamicProgrammingOption {
	return func(dp *DynamicProgramming) {
		if limit > 0 {
			dp.capacityLimit = limit
		}
	}
}

// Name returns types.StrategyDynamicProgramming.
func (dp *DynamicProgramming) Name() types.StrategyName {
	return types.StrategyDynamicProgramming
}

// Semantics returns types.SubsetSelect: each grant is the full size of one
// selected demand; demands are taken whole or not at all.
func (dp *DynamicProgramming) Semantics() types.GrantSemantics {
	return types.SubsetSelect
}

// Allocate computes the optimal subset with an O(n*C) knapsack table.
//
// table[i][w] is the best achievable sum using the first i demands without
// exceeding capacity w:
//
//	table[i][w] = table[i-1][w]                                if demands[i-1] > w
//	table[i][w] = max(table[i-1][w],
//	              table[i-1][w-demands[i-1]] + demands[i-1])   otherwise
//
// The selected subset is reconstructed by walking the table backward from
// (n, C): whenever the optimal value differs from table[i-1][w], demand i was
// included. Grants are therefore listed in reverse input order.
//
// Parameters:
//   - capacity: Total allocatable budget (must be <= the configured limit)
//   - demands: Demand sizes
//
// Returns:
//   - types.Allocation: Selected demand sizes, Total is the proven maximum <= capacity
//   - error: types.ErrCapacityLimit if capacity exceeds the configured bound
func (dp *DynamicProgramming) Allocate(capacity int64, demands []int64) (types.Allocation, error) {
	if capacity > dp.capacityLimit {
		return types.Allocation{}, fmt.Errorf(
			"dynamic programming: %w (capacity %d, limit %d)",
			types.ErrCapacityLimit, capacity, dp.capacityLimit,
		)
	}

	n := len(demands)
	width := int(capacity) + 1

	table := make([][]int64, n+1)
	for i := range table {
		table[i] = make([]int64, width)
	}

	for i := 1; i <= n; i++ {
		d := demands[i-1]
		for w := 1; w < width; w++ {
			if d <= int64(w) {
				table[i][w] = max(table[i-1][w], table[i-1][w-int(d)]+d)
			} else {
				table[i][w] = table[i-1][w]
			}
		}
	}

	// Walk backward from (n, C) to recover the selected subset.
	result := table[n][width-1]
	w := width - 1
	grants := make([]int64, 0, n)

	for i := n; i >= 1; i-- {
		if result <= 0 {
			break
		}
		if result == table[i-1][w] {
			continue
		}

		d := demands[i-1]
		grants = append(grants, d)
		result -= d
		w -= int(d)
	}

	return types.NewAllocation(types.StrategyDynamicProgramming, types.SubsetSelect, grants), nil
}
