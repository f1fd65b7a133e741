package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"adsim/internal/config"
	"adsim/internal/core/domain"
	"adsim/internal/core/simulation"
	"adsim/internal/core/wizard"
	"adsim/internal/report"
)

type simulateOptions struct {
	seed     int64
	format   string
	day      int
	progress bool

	// onProgress, when set, receives the processing indicator while the
	// campaign is validated and simulated.
	onProgress       func(percent int)
	progressInterval time.Duration
	progressStep     int
}

func newSimulateCmd() *cobra.Command {
	var opts simulateOptions
	cmd := &cobra.Command{
		Use:   "simulate <campaign.yaml>",
		Short: "Simulate a campaign described in a YAML file",
		Long: `Runs the campaign through every wizard step, so it is rejected exactly
where the wizard would reject it, then simulates its performance.

Example campaign file:

  platform: google
  objective: sales
  campaign_type: search
  targeting:
    locations: [Canada]
    ages: [25-34]
    interests: [Technology]
    keywords: [deals]
  creative:
    headline: Big savings
    description: Everything half off this week
    call_to_action: Shop Now
  budget:
    amount: 50
    bid_strategy: target_cpa`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = cfg.Sim.Seed
			}
			if opts.progress {
				opts.progressInterval = cfg.Sim.ProgressInterval
				opts.progressStep = cfg.Sim.ProgressStep
				opts.onProgress = func(p int) {
					fmt.Fprintf(cmd.ErrOrStderr(), "processing... %d%%\n", p)
				}
			}
			return runSimulate(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "replay a run with this seed (0 draws a fresh one)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().IntVar(&opts.day, "day", -1, "chart the hourly activity of this day (0-6)")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "show the processing indicator on stderr")
	return cmd
}

// runSimulate simulates the campaign file and writes the report once both
// the engine and the processing indicator have finished.
func runSimulate(ctx context.Context, w io.Writer, path string, opts simulateOptions) error {
	switch opts.format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	progressDone := make(chan error, 1)
	progressCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if opts.onProgress != nil {
		go func() {
			progressDone <- simulation.Progress(progressCtx, opts.progressInterval, opts.progressStep, opts.onProgress)
		}()
	} else {
		progressDone <- nil
	}

	r, err := simulateCampaign(path, opts.seed)
	if err != nil {
		cancel()
		<-progressDone
		return err
	}
	if err = <-progressDone; err != nil {
		return err
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return report.Render(w, r, report.Options{Day: opts.day})
	}
}

func simulateCampaign(path string, seed int64) (domain.Report, error) {
	cfg, err := readCampaign(path)
	if err != nil {
		return domain.Report{}, err
	}
	st, err := wizard.Complete(cfg)
	if err != nil {
		return domain.Report{}, fmt.Errorf("campaign %s: %w", path, err)
	}
	return newEngine(seed).Run(st.Config)
}

// readCampaign decodes a campaign file over the wizard defaults, so
// omitted budget fields keep their default values.
func readCampaign(path string) (domain.CampaignConfig, error) {
	cfg := domain.DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
