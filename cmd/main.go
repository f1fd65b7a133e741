package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"adsim/internal/config"
)

// exitError carries a process exit code out of a command, used by serve to
// report the signal that stopped it.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// main is the entry point of adsim. Every subcommand loads configuration
// from the environment; see the config package for the variables.
func main() {
	err := newRootCmd().Execute()
	var exit exitError
	switch {
	case err == nil:
	case errors.As(err, &exit):
		os.Exit(exit.code)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "adsim",
		Short: "Ad campaign wizard and performance simulator",
		Long: `adsim walks advertisers through configuring a Google Ads or Meta Ads
campaign and simulates how the campaign would perform.

The serve command exposes the wizard as an HTTP API. The simulate and
catalog commands work offline on YAML campaign files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newSimulateCmd(),
		newCatalogCmd(),
	)
	return root
}

// loadConfig reads the environment and builds the structured logger
// described by it.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	return cfg, logger, nil
}
