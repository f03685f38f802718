package bandalloc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Anoushka222/DAA-Project/types"
)

func TestNew(t *testing.T) {
	t.Run("nil config is rejected", func(t *testing.T) {
		_, err := New(nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("zero config gets defaults", func(t *testing.T) {
		engine, err := New(&Config{})
		require.NoError(t, err)
		require.Equal(t, DefaultMaxCapacity, engine.cfg.MaxCapacity)
		require.Equal(t, DefaultMaxDemands, engine.cfg.MaxDemands)
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		_, err := New(&Config{MaxCapacity: -5})
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Contains(t, err.Error(), "MaxCapacity")
	})

	t.Run("nil injected strategy is rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		_, err := New(&cfg, WithStrategies(nil))
		require.ErrorIs(t, err, ErrStrategyRequired)
	})

	t.Run("caller's config is not mutated", func(t *testing.T) {
		cfg := Config{}
		_, err := New(&cfg)
		require.NoError(t, err)
		require.Zero(t, cfg.MaxCapacity)
	})
}

func TestEngine_Allocate(t *testing.T) {
	cfg := TestConfig()
	engine, err := New(&cfg, WithRandomSeed(1))
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("runs the named strategy", func(t *testing.T) {
		alloc, err := engine.Allocate(ctx, StrategyGreedy, 100, []int64{50, 40, 30, 60, 20})

		require.NoError(t, err)
		require.Equal(t, StrategyGreedy, alloc.Strategy)
		require.Equal(t, []int64{60, 40}, alloc.Grants)
		require.Equal(t, int64(100), alloc.Total)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		_, err := engine.Allocate(ctx, StrategyGreedy, -1, []int64{10})
		require.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("rejects non-positive demands", func(t *testing.T) {
		_, err := engine.Allocate(ctx, StrategyGreedy, 100, []int64{10, 0, 20})
		require.ErrorIs(t, err, ErrInvalidDemand)

		_, err = engine.Allocate(ctx, StrategyGreedy, 100, []int64{10, -3})
		require.ErrorIs(t, err, ErrInvalidDemand)
	})

	t.Run("rejects unknown strategies", func(t *testing.T) {
		_, err := engine.Allocate(ctx, StrategyName("FirstFit"), 100, []int64{10})
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("rejects Auto", func(t *testing.T) {
		_, err := engine.Allocate(ctx, StrategyAuto, 100, []int64{10})
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("surfaces the DP capacity guard", func(t *testing.T) {
		// TestConfig bounds DP at capacity 1000.
		_, err := engine.Allocate(ctx, StrategyDynamicProgramming, 1001, []int64{10})
		require.ErrorIs(t, err, ErrResourceLimit)
	})

	t.Run("surfaces the backtracking demand guard", func(t *testing.T) {
		// TestConfig bounds backtracking at 12 demands.
		demands := make([]int64, 13)
		for i := range demands {
			demands[i] = 1
		}

		_, err := engine.Allocate(ctx, StrategyBacktracking, 100, demands)
		require.ErrorIs(t, err, ErrResourceLimit)
	})

	t.Run("honors a canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := engine.Allocate(canceled, StrategyGreedy, 100, []int64{10})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("empty demands yield an empty allocation for every strategy", func(t *testing.T) {
		for _, name := range engine.Strategies() {
			alloc, err := engine.Allocate(ctx, name, 100, nil)
			require.NoError(t, err, "strategy %s", name)
			require.Empty(t, alloc.Grants, "strategy %s", name)
			require.Zero(t, alloc.Total, "strategy %s", name)
		}
	})
}

func TestEngine_Run(t *testing.T) {
	cfg := TestConfig()
	engine, err := New(&cfg, WithRandomSeed(1))
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("single strategy response carries the allocation", func(t *testing.T) {
		resp, err := engine.Run(ctx, Request{Capacity: 10, Demands: []int64{20}, Strategy: StrategyGreedy})

		require.NoError(t, err)
		require.Equal(t, StrategyGreedy, resp.Strategy)
		require.NotNil(t, resp.Allocation)
		require.Nil(t, resp.Report)
		require.Equal(t, []int64{10}, resp.Allocation.Grants)
	})

	t.Run("auto response carries the report", func(t *testing.T) {
		resp, err := engine.Run(ctx, Request{Capacity: 100, Demands: []int64{50, 40, 30, 60, 20}, Strategy: StrategyAuto})

		require.NoError(t, err)
		require.NotNil(t, resp.Report)
		require.Nil(t, resp.Allocation)
		require.Equal(t, resp.Report.Best, resp.Strategy)
	})

	t.Run("empty strategy defaults to auto", func(t *testing.T) {
		resp, err := engine.Run(ctx, Request{Capacity: 100, Demands: []int64{50}})

		require.NoError(t, err)
		require.NotNil(t, resp.Report)
	})

	t.Run("invalid strategy name is rejected", func(t *testing.T) {
		_, err := engine.Run(ctx, Request{Capacity: 100, Demands: []int64{50}, Strategy: StrategyName("nope")})
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})
}

func TestEngine_Strategies(t *testing.T) {
	cfg := TestConfig()
	engine, err := New(&cfg)
	require.NoError(t, err)

	order := engine.Strategies()
	require.Equal(t, types.EvaluationOrder(), order)

	// Mutating the returned slice must not affect the engine.
	order[0] = StrategyName("mutated")
	require.Equal(t, types.EvaluationOrder(), engine.Strategies())
}
