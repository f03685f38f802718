package types

// AllocationStrategy computes one allocation of a capacity budget across an
// ordered list of demands.
//
// Strategies implement different allocation algorithms:
//   - Greedy: Descending-sort heuristic with partial grants
//   - Random: Uniform random grants (baseline)
//   - DynamicProgramming: Exact subset optimizer, O(n*C)
//   - Backtracking: Exact subset optimizer, pruned DFS
//   - Custom: User-defined algorithms
//
// Strategy implementations should:
//   - Uphold the single cross-cutting invariant: achieved total <= capacity
//   - Handle edge cases (empty demands, zero capacity)
//   - Be stateless across calls (an injected randomness source is the one exception)
//   - Fail fast with a resource-limit error instead of running unbounded
type AllocationStrategy interface {
	// Name returns the strategy's identity for reports and metrics.
	Name() StrategyName

	// Semantics returns how this strategy's Grants are to be interpreted.
	Semantics() GrantSemantics

	// Allocate computes an allocation of capacity across demands.
	//
	// Callers must pre-validate the input: capacity >= 0 and every demand > 0.
	// Strategies do not re-check these invariants; they only enforce their own
	// resource limits.
	//
	// Parameters:
	//   - capacity: Total allocatable budget (>= 0)
	//   - demands: Ordered demand sizes (each > 0); never mutated
	//
	// Returns:
	//   - Allocation: Result with Total <= capacity
	//   - error: Resource-limit error (ErrResourceLimit) if the input exceeds
	//     the strategy's configured bounds
	Allocate(capacity int64, demands []int64) (Allocation, error)
}
