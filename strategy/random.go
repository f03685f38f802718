package strategy

import (
	"math/rand/v2"
	"sync"

	"github.com/Anoushka222/DAA-Project/types"
)

// IntN is a randomness source: it returns a uniformly random int64 in [0, n).
//
// math/rand/v2's rand.Int64N satisfies this signature and is the default
// source. Tests inject a seeded or deterministic source for reproducibility.
type IntN func(n int64) int64

// Random implements uniformly random allocation.
//
// Random is a baseline strategy: each grant is drawn independently of the
// demand's actual size, so it can over- or under-grant relative to what was
// requested. Only the invariant "achieved total <= capacity" is guaranteed.
type Random struct {
	src IntN
}

var _ types.AllocationStrategy = (*Random)(nil)

// RandomOption configures a Random strategy.
type RandomOption func(*Random)

// NewRandom creates a new random strategy.
//
// By default grants are drawn from the process-global entropy source, so two
// calls with identical inputs may return different results.
//
// Parameters:
//   - opts: Optional configuration (WithSource, WithSeed)
//
// Returns:
//   - *Random: Initialized random strategy
//
// Example:
//
//	// Reproducible results for tests:
//	rnd := strategy.NewRandom(strategy.WithSeed(42))
func NewRandom(opts ...RandomOption) *Random {
	r := &Random{src: rand.Int64N}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithSource sets a custom randomness source.
//
// The source must return a uniformly random int64 in [0, n) and must be safe
// for concurrent use if the strategy is shared across requests.
//
// Parameters:
//   - src: Randomness source
//
// Returns:
//   - RandomOption: Functional option for NewRandom
func WithSource(src IntN) RandomOption {
	return func(r *Random) {
		r.src = src
	}
}

// WithSeed sets a deterministic, seeded randomness source.
//
// The seeded source is guarded by a mutex so the strategy remains safe for
// concurrent use, at the cost of serializing draws.
//
// Parameters:
//   - seed: PCG seed
//
// Returns:
//   - RandomOption: Functional option for NewRandom
func WithSeed(seed uint64) RandomOption {
	return func(r *Random) {
		var mu sync.Mutex
		rng := rand.New(rand.NewPCG(seed, seed))

		r.src = func(n int64) int64 {
			mu.Lock()
			defer mu.Unlock()

			return rng.Int64N(n)
		}
	}
}

// Name returns types.StrategyRandom.
func (r *Random) Name() types.StrategyName {
	return types.StrategyRandom
}

// Semantics returns types.PartialGrant.
func (r *Random) Semantics() types.GrantSemantics {
	return types.PartialGrant
}

// Allocate grants each demand a uniformly random amount in [0, remaining].
//
// Demands are visited in input order (no sorting). The drawn amount ignores
// the demand's size entirely. Iteration stops early once the remaining budget
// reaches zero, so later demands may get no entry at all.
//
// Parameters:
//   - capacity: Total allocatable budget
//   - demands: Demand sizes, visited in input order
//
// Returns:
//   - types.Allocation: Random grants, Total <= capacity
//   - error: Always nil; Random has no resource limits
func (r *Random) Allocate(capacity int64, demands []int64) (types.Allocation, error) {
	grants := make([]int64, 0, len(demands))
	remaining := capacity

	for range demands {
		var grant int64
		if remaining > 0 {
			// Int64N draws from [0, n), so +1 makes the range inclusive of remaining.
			grant = r.src(remaining + 1)
		}

		grants = append(grants, grant)
		remaining -= grant
		if remaining <= 0 {
			break
		}
	}

	return types.NewAllocation(types.StrategyRandom, types.PartialGrant, grants), nil
}
