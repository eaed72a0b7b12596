// Command seed prints a SQL seed script for the bakery storefront schema:
// one year of synthetic orders, their line items and their payments, as
// three INSERT statements on stdout. Output is deterministic for a fixed
// SEED and TODAY; see internal/config for the defaults.
//
// Usage:
//
//	seed > fixtures.sql
//	SEED=7 TODAY=2025-06-15 seed | psql "$DB_URL"
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bakery-seed/internal/catalog"
	"bakery-seed/internal/config"
	"bakery-seed/internal/fixture"
	"bakery-seed/internal/logger"
	"bakery-seed/internal/sqlgen"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := run(os.Stdout, cfg); err != nil {
		logger.L().Fatal("generation failed", zap.Error(err))
	}
}

func run(w io.Writer, cfg *config.Config) error {
	runID := uuid.New().String()
	logger.L().Info("generating fixtures",
		zap.String("run_id", runID),
		zap.Int64("seed", cfg.Seed),
		zap.String("today", cfg.Today.Format("2006-01-02")),
	)

	if err := catalog.Validate(); err != nil {
		return err
	}

	gen, err := fixture.New(fixture.Config{
		Seed:      cfg.Seed,
		Today:     cfg.Today,
		Products:  catalog.Products(),
		Customers: catalog.Customers(),
	})
	if err != nil {
		return err
	}

	ds := gen.Generate()
	if err := sqlgen.Render(w, ds); err != nil {
		return err
	}

	logger.L().Info("done",
		zap.String("run_id", runID),
		zap.Int("orders", len(ds.Orders)),
		zap.Int("order_items", len(ds.Items)),
		zap.Int("payments", len(ds.Payments)),
	)
	return nil
}
