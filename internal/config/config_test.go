package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("SEED", "")
		t.Setenv("TODAY", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, int64(DefaultSeed), cfg.Seed)
		assert.Equal(t, time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), cfg.Today)
	})

	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("SEED", "7")
		t.Setenv("TODAY", "2025-06-15")
		t.Setenv("APP_ENV", "test")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, int64(7), cfg.Seed)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), cfg.Today)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Invalid seed", func(t *testing.T) {
		t.Setenv("SEED", "not-a-number")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Invalid today", func(t *testing.T) {
		t.Setenv("SEED", "")
		t.Setenv("TODAY", "20-12-2025")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
