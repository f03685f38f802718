package bandalloc

import (
	"fmt"
)

// Default resource bounds for the exact optimizers.
//
// The DP optimizer allocates an (n+1)*(capacity+1) table, so its cost scales
// linearly with capacity; the backtracking optimizer explores a pruned 2^n
// decision tree, so its cost scales exponentially with the demand count.
// Both limits exist to surface a resource-limit error instead of letting a
// single request run unbounded.
const (
	// DefaultMaxCapacity is the default capacity bound for DynamicProgramming.
	DefaultMaxCapacity int64 = 1 << 20

	// DefaultMaxDemands is the default demand-count bound for Backtracking.
	DefaultMaxDemands = 30
)

// Config is the configuration for the Engine.
type Config struct {
	// MaxCapacity is the largest capacity the DynamicProgramming optimizer
	// accepts before failing fast with a resource-limit error.
	MaxCapacity int64 `yaml:"maxCapacity"`

	// MaxDemands is the largest demand count the Backtracking optimizer
	// accepts before failing fast with a resource-limit error.
	MaxDemands int `yaml:"maxDemands"`

	// Sequential forces Auto-Select to evaluate strategies one at a time
	// instead of concurrently. The four strategies share no state, so the
	// report is identical either way; sequential mode exists for debugging.
	Sequential bool `yaml:"sequential"`
}

// DefaultConfig returns a configuration with production defaults.
//
// Returns:
//   - Config: MaxCapacity 2^20, MaxDemands 30, concurrent comparison
//
// Example:
//
//	cfg := bandalloc.DefaultConfig()
//	engine, err := bandalloc.New(&cfg)
func DefaultConfig() Config {
	return Config{
		MaxCapacity: DefaultMaxCapacity,
		MaxDemands:  DefaultMaxDemands,
	}
}

// TestConfig returns a configuration optimized for fast test execution.
//
// The limits are small enough that limit-guard behavior is cheap to trigger,
// and comparison runs sequentially for simpler debugging. Use DefaultConfig()
// for production.
//
// Returns:
//   - Config: Configuration with tight limits for tests
func TestConfig() Config {
	return Config{
		MaxCapacity: 1000,
		MaxDemands:  12,
		Sequential:  true,
	}
}

// applyDefaults fills zero-valued limits with the defaults.
func (cfg *Config) applyDefaults() {
	if cfg.MaxCapacity == 0 {
		cfg.MaxCapacity = DefaultMaxCapacity
	}
	if cfg.MaxDemands == 0 {
		cfg.MaxDemands = DefaultMaxDemands
	}
}

// Validate checks configuration constraints and returns an error for invalid
// values.
//
// Hard Validation Rules:
//   - MaxCapacity > 0 (the DP guard must bound something)
//   - MaxDemands > 0 (the backtracking guard must bound something)
//
// Returns:
//   - error: Validation error with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxCapacity <= 0 {
		return fmt.Errorf("MaxCapacity must be > 0, got %d", cfg.MaxCapacity)
	}
	if cfg.MaxDemands <= 0 {
		return fmt.Errorf("MaxDemands must be > 0, got %d", cfg.MaxDemands)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for
// non-recommended values.
//
// This is called after Validate() in New() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	// The pruned decision tree still degrades sharply past ~32 demands.
	if cfg.MaxDemands > 32 {
		logger.Warn(
			"MaxDemands is above the recommended bound for backtracking",
			"maxDemands", cfg.MaxDemands,
			"recommended", 32,
		)
	}

	// A 2^26 capacity bound means DP tables in the hundreds of MB.
	if cfg.MaxCapacity > 1<<26 {
		logger.Warn(
			"MaxCapacity allows very large DP tables",
			"maxCapacity", cfg.MaxCapacity,
			"recommended", int64(1<<26),
		)
	}
}
