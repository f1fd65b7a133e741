package simulation

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsim/internal/core/domain"
)

func TestEngineReplayIsDeterministic(t *testing.T) {
	e := NewEngine(WithClock(func() time.Time { return fixedEnd }))
	cfg := config(domain.PlatformMeta, "conversions", "cost_cap", 40)

	a := e.Replay(cfg, 1234)
	b := e.Replay(cfg, 1234)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("replay mismatch (-a +b):\n%s", diff)
	}
	assert.Equal(t, int64(1234), a.Seed)
	assert.Equal(t, domain.PlatformMeta, a.Platform)
	assert.Equal(t, Simulate(cfg), a.Metrics)
	assert.Len(t, a.Daily, SeriesDays)
	assert.GreaterOrEqual(t, len(a.Recommendations), 2)
}

func TestEngineRunUsesSeedSource(t *testing.T) {
	e := NewEngine(WithFixedSeed(77), WithClock(func() time.Time { return fixedEnd }))
	cfg := config(domain.PlatformGoogle, "traffic", "max_clicks", 15)

	report, err := e.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(77), report.Seed)
	assert.Equal(t, e.Replay(cfg, 77), report)
}

func TestEngineRunSeedError(t *testing.T) {
	boom := errors.New("no entropy")
	e := NewEngine(WithSeedSource(func() (int64, error) { return 0, boom }))

	_, err := e.Run(domain.DefaultConfig())
	assert.ErrorIs(t, err, boom)
}
