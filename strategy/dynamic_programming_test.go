package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Anoushka222/DAA-Project/types"
)

func TestDynamicProgramming_Allocate(t *testing.T) {
	t.Run("finds the optimal subset", func(t *testing.T) {
		dp := NewDynamicProgramming()

		alloc, err := dp.Allocate(100, []int64{50, 40, 30, 60, 20})

		require.NoError(t, err)
		require.Equal(t, int64(100), alloc.Total)
		// Reconstruction walks the table backward, so grants come out in
		// reverse input order: demand 60 first, then 40.
		require.Equal(t, []int64{60, 40}, alloc.Grants)
	})

	t.Run("excludes a demand larger than capacity entirely", func(t *testing.T) {
		dp := NewDynamicProgramming()

		alloc, err := dp.Allocate(10, []int64{20})

		require.NoError(t, err)
		require.Empty(t, alloc.Grants)
		require.Zero(t, alloc.Total)
	})

	t.Run("zero capacity selects nothing", func(t *testing.T) {
		dp := NewDynamicProgramming()

		alloc, err := dp.Allocate(0, []int64{5, 10})

		require.NoError(t, err)
		require.Empty(t, alloc.Grants)
		require.Zero(t, alloc.Total)
	})

	t.Run("empty demands yield empty allocation", func(t *testing.T) {
		dp := NewDynamicProgramming()

		alloc, err := dp.Allocate(100, nil)

		require.NoError(t, err)
		require.Empty(t, alloc.Grants)
		require.Zero(t, alloc.Total)
	})

	t.Run("combines whole demands to fill the budget exactly", func(t *testing.T) {
		dp := NewDynamicProgramming()

		alloc, err := dp.Allocate(11, []int64{5, 6, 7})

		require.NoError(t, err)
		require.Equal(t, int64(11), alloc.Total)
		require.Equal(t, []int64{6, 5}, alloc.Grants)
	})

	t.Run("is idempotent", func(t *testing.T) {
		dp := NewDynamicProgramming()

		first, err := dp.Allocate(73, []int64{12, 31, 7, 19, 44})
		require.NoError(t, err)
		second, err := dp.Allocate(73, []int64{12, 31, 7, 19, 44})
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}

func TestDynamicProgramming_CapacityLimit(t *testing.T) {
	dp := NewDynamicProgramming(WithCapacityLimit(100))

	t.Run("accepts capacity at the limit", func(t *testing.T) {
		_, err := dp.Allocate(100, []int64{50})
		require.NoError(t, err)
	})

	t.Run("fails fast above the limit", func(t *testing.T) {
		_, err := dp.Allocate(101, []int64{50})

		require.ErrorIs(t, err, types.ErrCapacityLimit)
		require.True(t, types.IsResourceLimitError(err))
	})

	t.Run("non-positive limit option is ignored", func(t *testing.T) {
		dp := NewDynamicProgramming(WithCapacityLimit(0))

		_, err := dp.Allocate(1000, []int64{50})
		require.NoError(t, err)
	})
}

func TestDynamicProgramming_Identity(t *testing.T) {
	dp := NewDynamicProgramming()

	require.Equal(t, types.StrategyDynamicProgramming, dp.Name())
	require.Equal(t, types.SubsetSelect, dp.Semantics())
}
