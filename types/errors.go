package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bandwidth allocation engine.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap them with context using
// fmt.Errorf("...: %w", err).

// Input validation errors - returned before any allocator runs.
//
// Validation never partially applies: if the input is invalid, no strategy
// is invoked and no allocation is produced.
var (
	// ErrInvalidCapacity is returned when capacity is negative.
	ErrInvalidCapacity = errors.New("capacity must be non-negative")

	// ErrInvalidDemand is returned when a demand is zero or negative.
	// Free-text demand normalization is the caller's job; the engine never
	// silently coerces or drops bad demands.
	ErrInvalidDemand = errors.New("demands must be positive")

	// ErrUnknownStrategy is returned when a strategy name is not one of the
	// closed StrategyName set.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Engine errors - returned by the root bandalloc package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStrategyRequired is returned when a nil strategy is injected.
	ErrStrategyRequired = errors.New("allocation strategy is required")

	// ErrNoStrategyAvailable is returned by Auto-Select when every strategy
	// was unavailable and no comparison could be made.
	ErrNoStrategyAvailable = errors.New("no strategy available for comparison")
)

// Resource-limit errors - returned by the exact optimizers.
//
// The DP optimizer's time and memory scale linearly with capacity; the
// backtracking optimizer's time scales exponentially with the demand count.
// Both fail fast when their configured bound is exceeded rather than degrade
// silently.
var (
	// ErrResourceLimit is the base error all limit failures wrap.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrCapacityLimit is returned when capacity exceeds the DP optimizer's bound.
	ErrCapacityLimit = fmt.Errorf("%w: capacity above optimizer bound", ErrResourceLimit)

	// ErrDemandCountLimit is returned when the demand count exceeds the
	// backtracking optimizer's bound.
	ErrDemandCountLimit = fmt.Errorf("%w: demand count above optimizer bound", ErrResourceLimit)
)

// IsResourceLimitError checks if an error indicates an exact optimizer
// refused to run because a resource limit was exceeded.
//
// Auto-Select uses this to report the affected strategy as unavailable
// instead of aborting the whole comparison.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if the error is (or wraps) a resource-limit error
func IsResourceLimitError(err error) bool {
	if err == nil {
		return false
	}

	// ErrCapacityLimit and ErrDemandCountLimit both wrap ErrResourceLimit.
	return errors.Is(err, ErrResourceLimit)
}
