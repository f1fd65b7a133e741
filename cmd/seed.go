package main

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"adsim/internal/adapter/postgres"
	"adsim/internal/core/port"
	"adsim/internal/core/simulation"
	"adsim/internal/db"
	"adsim/internal/random"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo sessions into PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
			if err != nil {
				logger.Error("database connection error", slog.Any("error", err))
				return err
			}
			defer pool.Close()

			if err = seedSessions(cmd.Context(), postgres.NewSessionRepository(pool), newEngine(cfg.Sim.Seed)); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return err
			}
			logger.Info("demo sessions seeded", slog.Int("count", db.DemoSessions))
			return nil
		},
	}
}

func seedSessions(ctx context.Context, repo port.SessionRepository, engine *simulation.Engine) error {
	seed, err := random.NewSeed()
	if err != nil {
		return err
	}
	return db.Seed(ctx, repo, engine, rand.New(rand.NewSource(seed)))
}
