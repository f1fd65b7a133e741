package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"adsim/internal/core/catalog"
	"adsim/internal/core/domain"
	"adsim/internal/core/port"
	"adsim/internal/core/simulation"
	"adsim/internal/core/wizard"
)

// DemoSessions is the number of sessions Seed creates.
const DemoSessions = 10

// Seed inserts demo sessions into repo. Sessions alternate between the two
// platforms and pick their options at random from the catalog; every
// second one has already been simulated. r drives all choices, so a fixed
// source reproduces the same data set.
func Seed(ctx context.Context, repo port.SessionRepository, engine *simulation.Engine, r *rand.Rand) error {
	platforms := []domain.Platform{domain.PlatformGoogle, domain.PlatformMeta}
	now := time.Now().UTC()

	for i := 0; i < DemoSessions; i++ {
		cfg := demoConfig(r, platforms[i%len(platforms)], i+1)
		st, err := wizard.Complete(cfg)
		if err != nil {
			return fmt.Errorf("demo session %d: %w", i+1, err)
		}
		created := now.Add(-time.Duration(DemoSessions-i) * time.Hour)
		s := &domain.Session{
			ID:        uuid.NewString(),
			Step:      int(st.Step),
			Config:    st.Config,
			CreatedAt: created,
			UpdatedAt: created,
		}
		if i%2 == 0 {
			report := engine.Replay(st.Config, r.Int63())
			s.Report = &report
			s.Simulations = 1
		}
		if err = repo.Save(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func demoConfig(r *rand.Rand, p domain.Platform, n int) domain.CampaignConfig {
	cfg := domain.DefaultConfig()
	cfg.Platform = p
	cfg.Objective = pick(r, catalog.IDs(catalog.Objectives(p)))
	cfg.CampaignType = pick(r, catalog.IDs(catalog.CampaignTypes(p, cfg.Objective)))

	choices := catalog.Targeting(p)
	cfg.Targeting = domain.Targeting{
		Locations: sample(r, choices.Locations, 3),
		Ages:      sample(r, choices.Ages, 2),
		Genders:   sample(r, choices.Genders, 1),
		Interests: sample(r, choices.Interests, 3),
		Keywords:  sample(r, choices.Keywords, 4),
		Behaviors: sample(r, choices.Behaviors, 2),
	}

	cfg.Creative = domain.AdCreative{
		Headline:     fmt.Sprintf("Demo campaign %d", n),
		Description:  "Seeded example creative for the campaign simulator",
		CallToAction: pick(r, catalog.CallsToAction()),
	}
	if wizard.NeedsImage(cfg) {
		cfg.Creative.ImageURL = fmt.Sprintf("https://example.com/creative/%d.jpg", n)
	}

	cfg.Budget = domain.Budget{
		Amount:      float64(10 + r.Intn(191)),
		Type:        []domain.BudgetType{domain.BudgetDaily, domain.BudgetLifetime}[r.Intn(2)],
		BidStrategy: pick(r, catalog.IDs(catalog.BidStrategies(p, cfg.Objective))),
	}
	return cfg
}

func pick(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}

// sample returns between 1 and limit distinct values. An empty input yields
// nil, which keeps the facet unset on platforms that do not offer it.
func sample(r *rand.Rand, values []string, limit int) []string {
	if len(values) == 0 {
		return nil
	}
	n := 1 + r.Intn(min(limit, len(values)))
	out := make([]string, 0, n)
	for _, i := range r.Perm(len(values))[:n] {
		out = append(out, values[i])
	}
	return out
}
