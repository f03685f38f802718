package types

import (
	"fmt"
	"strings"
)

// StrategyName identifies an allocation strategy.
//
// The set of names is closed: the four algorithms plus the Auto
// pseudo-strategy that compares them. Code dispatching on StrategyName
// should match every constant so that new strategies cannot be silently
// omitted.
type StrategyName string

// Built-in strategy names.
const (
	// StrategyGreedy sorts demands descending and grants min(demand, remaining).
	StrategyGreedy StrategyName = "Greedy"

	// StrategyDynamicProgramming solves the 0/1 subset-sum-under-capacity
	// problem exactly with an O(n*C) table.
	StrategyDynamicProgramming StrategyName = "DynamicProgramming"

	// StrategyBacktracking solves the same problem exactly with a pruned
	// include/exclude depth-first search.
	StrategyBacktracking StrategyName = "Backtracking"

	// StrategyRandom grants uniformly random amounts; a baseline only.
	StrategyRandom StrategyName = "Random"

	// StrategyAuto runs every strategy and reports the best result.
	StrategyAuto StrategyName = "Auto"
)

// EvaluationOrder returns the canonical strategy evaluation order.
//
// The order matters: when two strategies achieve equal maximal totals,
// Auto selects the one that appears first in this slice.
//
// Returns:
//   - []StrategyName: Greedy, DynamicProgramming, Backtracking, Random
func EvaluationOrder() []StrategyName {
	return []StrategyName{
		StrategyGreedy,
		StrategyDynamicProgramming,
		StrategyBacktracking,
		StrategyRandom,
	}
}

// Valid reports whether n is one of the known strategy names, including Auto.
func (n StrategyName) Valid() bool {
	switch n {
	case StrategyGreedy, StrategyDynamicProgramming, StrategyBacktracking, StrategyRandom, StrategyAuto:
		return true
	}

	return false
}

// ParseStrategyName converts a user-supplied strategy token to a StrategyName.
//
// Matching is case-insensitive and accepts common short forms so that CLI
// flags and HTTP parameters don't need to spell the canonical names:
//
//	"greedy"                          -> StrategyGreedy
//	"dp", "dynamic", "dynamicprogramming", "dynamic-programming"
//	                                  -> StrategyDynamicProgramming
//	"bt", "backtracking"              -> StrategyBacktracking
//	"random"                          -> StrategyRandom
//	"auto"                            -> StrategyAuto
//
// Parameters:
//   - s: Raw strategy token
//
// Returns:
//   - StrategyName: Parsed name
//   - error: ErrUnknownStrategy (wrapped with the offending token) if s is not recognized
func ParseStrategyName(s string) (StrategyName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy":
		return StrategyGreedy, nil
	case "dp", "dynamic", "dynamicprogramming", "dynamic-programming", "dynamic_programming":
		return StrategyDynamicProgramming, nil
	case "bt", "backtracking":
		return StrategyBacktracking, nil
	case "random":
		return StrategyRandom, nil
	case "auto":
		return StrategyAuto, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// GrantSemantics describes how to read an Allocation's Grants slice.
//
// The four algorithms do not agree on what an "allocated amount" is, and the
// distinction is preserved deliberately rather than unified:
//   - Greedy and Random grant partial, per-demand amounts; a grant may be
//     smaller than (or, for Random, larger than) the corresponding demand.
//   - The exact optimizers select whole demands or nothing; each grant is the
//     size of one selected demand.
type GrantSemantics string

const (
	// PartialGrant marks per-demand partial amounts (Greedy, Random).
	PartialGrant GrantSemantics = "partial"

	// SubsetSelect marks whole selected demand sizes (DynamicProgramming, Backtracking).
	SubsetSelect GrantSemantics = "subset"
)

// Allocation is the immutable result of one strategy run.
//
// Grants is ordered; its meaning depends on Semantics. Total is always the
// sum of Grants and never exceeds the capacity the allocation was computed
// against. Allocations are created fresh per request and never mutated.
type Allocation struct {
	// Strategy is the name of the strategy that produced this allocation.
	Strategy StrategyName `json:"strategy"`

	// Semantics tags how Grants should be interpreted.
	Semantics GrantSemantics `json:"semantics"`

	// Grants holds the granted amounts, one entry per grant the strategy made.
	Grants []int64 `json:"grants"`

	// Total is the achieved total: the sum of Grants.
	Total int64 `json:"total"`
}

// NewAllocation builds an Allocation, deriving Total from the grants.
//
// Parameters:
//   - strategy: Name of the producing strategy
//   - semantics: Grant semantics of the producing strategy
//   - grants: Granted amounts (may be empty, must not be nil for stable JSON output)
//
// Returns:
//   - Allocation: Result with Total = sum(grants)
func NewAllocation(strategy StrategyName, semantics GrantSemantics, grants []int64) Allocation {
	var total int64
	for _, g := range grants {
		total += g
	}

	return Allocation{
		Strategy:  strategy,
		Semantics: semantics,
		Grants:    grants,
		Total:     total,
	}
}

// Report compares every strategy's achieved total for one request.
//
// Best and BestTotal identify the winning strategy under the evaluation-order
// tie-break (see EvaluationOrder). Strategies that could not run because a
// resource limit was exceeded appear in Unavailable instead of Totals.
type Report struct {
	// Best is the strategy with the maximum achieved total.
	Best StrategyName `json:"best_strategy"`

	// BestTotal is Best's achieved total.
	BestTotal int64 `json:"best_total"`

	// Totals maps each strategy that ran to its achieved total.
	Totals map[StrategyName]int64 `json:"report"`

	// Allocations maps each strategy that ran to its full allocation.
	Allocations map[StrategyName]Allocation `json:"allocations"`

	// Unavailable maps each strategy that failed a resource-limit guard to
	// the reason it could not run. Empty when every strategy ran.
	Unavailable map[StrategyName]string `json:"unavailable,omitempty"`
}
