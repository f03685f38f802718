// Package types provides core type definitions and interfaces for the
// bandwidth allocation engine.
//
// This package contains shared types that are used across multiple packages
// in the library. By keeping these types in a separate package, we avoid
// import cycles between the root bandalloc package and the strategy
// implementations.
//
// Key types:
//   - Allocation: One strategy's result, tagged with its grant semantics
//   - Report: Comparison of every strategy's achieved total
//   - StrategyName: Closed enumeration of allocation strategies
//   - AllocationStrategy: Interface implemented by all allocators
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
