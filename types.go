package bandalloc

import "github.com/Anoushka222/DAA-Project/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing the strategy
// package to depend on `types` without depending on the root bandalloc
// package, while still providing a convenient `bandalloc.Allocation`,
// `bandalloc.Logger`, etc. for users.
type (
	Allocation     = types.Allocation
	Report         = types.Report
	StrategyName   = types.StrategyName
	GrantSemantics = types.GrantSemantics
)

// Re-export interfaces from the types package for convenience.
type (
	AllocationStrategy = types.AllocationStrategy
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
)

// Re-export StrategyName constants from the types package.
const (
	StrategyGreedy             = types.StrategyGreedy
	StrategyDynamicProgramming = types.StrategyDynamicProgramming
	StrategyBacktracking       = types.StrategyBacktracking
	StrategyRandom             = types.StrategyRandom
	StrategyAuto               = types.StrategyAuto
)

// Re-export GrantSemantics constants from the types package.
const (
	PartialGrant = types.PartialGrant
	SubsetSelect = types.SubsetSelect
)
