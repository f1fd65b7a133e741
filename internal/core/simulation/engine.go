package simulation

import (
	"math/rand"
	"time"

	"adsim/internal/core/domain"
)

// SeedSource supplies seeds for runs that are not replays.
type SeedSource func() (int64, error)

// Engine produces reports. The engine itself holds no mutable state: each
// run builds its own generator from a seed, so one Engine may be shared by
// concurrent callers.
type Engine struct {
	seeds SeedSource
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeedSource replaces the default seed source.
func WithSeedSource(src SeedSource) Option {
	return func(e *Engine) { e.seeds = src }
}

// WithFixedSeed makes every run use seed.
func WithFixedSeed(seed int64) Option {
	return WithSeedSource(func() (int64, error) { return seed, nil })
}

// WithClock replaces time.Now, which dates the series.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine returns an engine seeded from the system clock unless an
// option says otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		seeds: func() (int64, error) { return time.Now().UnixNano(), nil },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run draws a seed and simulates cfg.
func (e *Engine) Run(cfg domain.CampaignConfig) (domain.Report, error) {
	seed, err := e.seeds()
	if err != nil {
		return domain.Report{}, err
	}
	return e.Replay(cfg, seed), nil
}

// Replay simulates cfg with a known seed. Two replays with the same seed,
// configuration and clock produce identical reports.
func (e *Engine) Replay(cfg domain.CampaignConfig, seed int64) domain.Report {
	now := e.now().UTC()
	rng := rand.New(rand.NewSource(seed))

	m := Simulate(cfg)
	daily := Series(m, rng, now)
	return domain.Report{
		Seed:            seed,
		GeneratedAt:     now,
		Platform:        cfg.Platform,
		Metrics:         m,
		Daily:           daily,
		Recommendations: Recommend(m, cfg.Platform),
		Breakdown:       Breakdown(m, daily),
	}
}
