package bandalloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, DefaultMaxCapacity, cfg.MaxCapacity)
	require.Equal(t, DefaultMaxDemands, cfg.MaxDemands)
	require.False(t, cfg.Sequential)
	require.NoError(t, cfg.Validate())
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.NoError(t, cfg.Validate())
	require.True(t, cfg.Sequential)
	require.Less(t, cfg.MaxCapacity, DefaultMaxCapacity)
	require.LessOrEqual(t, cfg.MaxDemands, DefaultMaxDemands)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("negative MaxCapacity", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxCapacity = -1

		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "MaxCapacity")
	})

	t.Run("negative MaxDemands", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxDemands = -1

		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "MaxDemands")
	})
}

// warnRecorder captures Warn calls for assertion.
type warnRecorder struct {
	warnings []string
}

func (r *warnRecorder) Debug(_ string, _ ...any) {}
func (r *warnRecorder) Info(_ string, _ ...any)  {}
func (r *warnRecorder) Error(_ string, _ ...any) {}
func (r *warnRecorder) Fatal(_ string, _ ...any) {}

func (r *warnRecorder) Warn(msg string, _ ...any) {
	r.warnings = append(r.warnings, msg)
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("defaults produce no warnings", func(t *testing.T) {
		rec := &warnRecorder{}
		cfg := DefaultConfig()

		cfg.ValidateWithWarnings(rec)
		require.Empty(t, rec.warnings)
	})

	t.Run("aggressive limits are flagged", func(t *testing.T) {
		rec := &warnRecorder{}
		cfg := DefaultConfig()
		cfg.MaxDemands = 40
		cfg.MaxCapacity = 1 << 30

		cfg.ValidateWithWarnings(rec)
		require.Len(t, rec.warnings, 2)
	})
}
