// Package strategy provides the built-in bandwidth allocation strategies.
//
// Allocation strategies determine how a capacity budget is split across an
// ordered list of demands. The package includes four built-in strategies:
//
//   - Greedy: Descending-sort heuristic with partial grants (fast, not optimal)
//   - DynamicProgramming: Exact subset optimizer via an O(n*C) knapsack table
//   - Backtracking: Exact subset optimizer via pruned include/exclude DFS
//   - Random: Uniform random grants (baseline only)
//
// # Strategy Selection Guide
//
// Greedy:
//   - Use when an approximate answer is acceptable and speed matters
//   - Grants partial amounts, so small leftover capacity is still used
//   - Single pass over sorted demands; reaches min(sum(demands), capacity),
//     which the whole-demand optimizers can at best match
//
// DynamicProgramming:
//   - Use for a provably maximum total when capacity is moderate
//   - Time and memory scale linearly with capacity; guarded by WithCapacityLimit
//
// Backtracking:
//   - Use for a provably maximum total when the demand count is small
//   - Time scales exponentially with the demand count; guarded by WithDemandLimit
//   - Always yields the same optimal total as DynamicProgramming
//
// Random:
//   - Use as a lower-bound reference when comparing strategies
//   - Grants are independent of the actual demand sizes
//   - Randomness source is injectable for reproducible tests (WithSeed)
//
// Note that Greedy and Random produce partial, per-demand grants while the
// two exact optimizers select whole demands or nothing; every Allocation is
// tagged with the semantics that produced it (types.GrantSemantics).
//
// Custom strategies can be implemented by satisfying the
// types.AllocationStrategy interface.
package strategy
