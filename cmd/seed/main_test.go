package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery-seed/internal/config"
)

func testCfg() *config.Config {
	return &config.Config{
		Seed:   42,
		Today:  time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		AppEnv: "test",
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, testCfg()))
	out := buf.String()

	t.Run("AllThreeBlocks", func(t *testing.T) {
		assert.Contains(t, out, "-- Orders for 2025")
		assert.Contains(t, out, "INSERT INTO orders (")
		assert.Contains(t, out, "-- Order items for 2025 orders")
		assert.Contains(t, out, "INSERT INTO order_items (")
		assert.Contains(t, out, "-- Payments for 2025 orders")
		assert.Contains(t, out, "INSERT INTO payments (")
	})

	t.Run("FullYearOfOrders", func(t *testing.T) {
		// 120 order rows plus 120 payment rows reference codes ORD/TXN.
		assert.Equal(t, 120, strings.Count(out, "('ORD"))
		assert.Equal(t, 120, strings.Count(out, "'TXN"))
		assert.Contains(t, out, "'ORD2001'")
		assert.Contains(t, out, "'ORD2120'")
	})

	t.Run("StatementsTerminated", func(t *testing.T) {
		assert.Equal(t, 3, strings.Count(out, ");\n"))
	})
}

func TestRun_Reproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run(&a, testCfg()))
	require.NoError(t, run(&b, testCfg()))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_SeedChangesOutput(t *testing.T) {
	var a, b bytes.Buffer
	cfg := testCfg()
	require.NoError(t, run(&a, cfg))
	cfg.Seed = 1337
	require.NoError(t, run(&b, cfg))
	assert.NotEqual(t, a.String(), b.String())
}
