package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Anoushka222/DAA-Project/types"
)

func TestRandom_Allocate(t *testing.T) {
	t.Run("never exceeds capacity", func(t *testing.T) {
		random := NewRandom()

		for range 100 {
			alloc, err := random.Allocate(50, []int64{10, 20, 30, 40})
			require.NoError(t, err)
			require.LessOrEqual(t, alloc.Total, int64(50))
			require.GreaterOrEqual(t, alloc.Total, int64(0))
		}
	})

	t.Run("same seed yields identical allocations", func(t *testing.T) {
		first, err := NewRandom(WithSeed(42)).Allocate(100, []int64{50, 40, 30, 60, 20})
		require.NoError(t, err)
		second, err := NewRandom(WithSeed(42)).Allocate(100, []int64{50, 40, 30, 60, 20})
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("stops early once the budget is exhausted", func(t *testing.T) {
		// A source that always draws the maximum grants the whole budget to
		// the first demand.
		random := NewRandom(WithSource(func(n int64) int64 { return n - 1 }))

		alloc, err := random.Allocate(100, []int64{5, 5, 5})

		require.NoError(t, err)
		require.Equal(t, []int64{100}, alloc.Grants)
		require.Equal(t, int64(100), alloc.Total)
	})

	t.Run("grants ignore demand sizes", func(t *testing.T) {
		// A source that always draws zero visits every demand without ever
		// exhausting the budget.
		random := NewRandom(WithSource(func(int64) int64 { return 0 }))

		alloc, err := random.Allocate(10, []int64{1, 2, 3})

		require.NoError(t, err)
		require.Equal(t, []int64{0, 0, 0}, alloc.Grants)
		require.Zero(t, alloc.Total)
	})

	t.Run("zero capacity yields zero total", func(t *testing.T) {
		random := NewRandom()

		alloc, err := random.Allocate(0, []int64{5, 10})

		require.NoError(t, err)
		require.Zero(t, alloc.Total)
	})

	t.Run("empty demands yield empty allocation", func(t *testing.T) {
		random := NewRandom()

		alloc, err := random.Allocate(100, nil)

		require.NoError(t, err)
		require.Empty(t, alloc.Grants)
		require.Zero(t, alloc.Total)
	})
}

func TestRandom_Identity(t *testing.T) {
	random := NewRandom()

	require.Equal(t, types.StrategyRandom, random.Name())
	require.Equal(t, types.PartialGrant, random.Semantics())
}
