package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultSeed matches the original seed script, so an unconfigured run
	// reproduces the canonical dataset.
	DefaultSeed = 42

	// DefaultToday keeps the cutoff inside the fixture year; every month
	// gets its full ten days.
	DefaultToday = "2025-12-20"
)

type Config struct {
	Seed   int64
	Today  time.Time
	AppEnv string
}

// LoadConfig reads SEED and TODAY from the environment (after loading .env
// if present), falling back to the built-in defaults. The binary needs no
// configuration at all to produce the standard seed script.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Seed:   DefaultSeed,
		AppEnv: os.Getenv("APP_ENV"),
	}

	if v := os.Getenv("SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	today := DefaultToday
	if v := os.Getenv("TODAY"); v != "" {
		today = v
	}
	t, err := time.ParseInLocation("2006-01-02", today, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid TODAY %q: %w", today, err)
	}
	cfg.Today = t

	return cfg, nil
}
