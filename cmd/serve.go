package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "adsim/internal/adapter/http"
	"adsim/internal/adapter/memory"
	"adsim/internal/adapter/postgres"
	"adsim/internal/adapter/sqlite"
	"adsim/internal/adapter/usecase"
	"adsim/internal/config"
	"adsim/internal/core/port"
	"adsim/internal/core/simulation"
	"adsim/internal/db"
	"adsim/internal/random"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Starts the wizard API. Sessions are kept in memory unless PSQL_ENABLED
is set, in which case they are stored in PostgreSQL. Profiles are always
stored in the SQLite file at PROFILE_PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

// serve loads the stores, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	profiles, err := sqlite.Open(cfg.Profile.Path)
	if err != nil {
		logger.Error("profile store error", slog.Any("error", err))
		return err
	}
	defer profiles.Close()

	engine := newEngine(cfg.Sim.Seed)

	var sessions port.SessionRepository
	if cfg.Psql.Enabled {
		// Optionally run migrations if configured.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return err
		}
		defer pool.Close()
		repo := postgres.NewSessionRepository(pool)

		if cfg.Psql.Seed {
			if err = seedSessions(ctx, repo, engine); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			} else {
				logger.Info("demo sessions seeded", slog.Int("count", db.DemoSessions))
			}
		}
		sessions = repo
	} else {
		logger.Info("postgres disabled, sessions are kept in memory")
		sessions = memory.NewSessionRepository()
	}

	campaigns := usecase.NewCampaignUseCase(sessions, profiles, engine, usecase.ProgressSettings{
		Interval: cfg.Sim.ProgressInterval,
		Step:     cfg.Sim.ProgressStep,
	}, logger)
	handler := httpadapter.NewHandler(campaigns, usecase.NewProfileUseCase(profiles), logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var exitCode int
	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return err
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return exitError{code: exitCode}
}

// newEngine builds the simulation engine. A non-zero seed makes every run
// identical; otherwise each run draws a fresh seed.
func newEngine(seed int64) *simulation.Engine {
	if seed != 0 {
		return simulation.NewEngine(simulation.WithFixedSeed(seed))
	}
	return simulation.NewEngine(simulation.WithSeedSource(random.NewSeed))
}
