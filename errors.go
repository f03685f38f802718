package bandalloc

import "github.com/Anoushka222/DAA-Project/types"

// Sentinel errors returned by the Engine, re-exported from the types package
// so callers can match with errors.Is without importing types directly.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidCapacity is returned when capacity is negative.
	ErrInvalidCapacity = types.ErrInvalidCapacity

	// ErrInvalidDemand is returned when a demand is zero or negative.
	ErrInvalidDemand = types.ErrInvalidDemand

	// ErrUnknownStrategy is returned when a strategy name is not recognized.
	ErrUnknownStrategy = types.ErrUnknownStrategy

	// ErrStrategyRequired is returned when a nil strategy is injected.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrResourceLimit is the base error wrapped by every resource-limit failure.
	ErrResourceLimit = types.ErrResourceLimit

	// ErrNoStrategyAvailable is returned by Compare when every strategy was
	// unavailable.
	ErrNoStrategyAvailable = types.ErrNoStrategyAvailable
)
