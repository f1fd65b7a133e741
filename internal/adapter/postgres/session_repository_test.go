package postgres

import (
	"context"
	"testing"
	"time"

	"adsim/internal/core/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRowRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	cfg := domain.DefaultConfig()
	cfg.Platform = domain.PlatformMeta
	cfg.Objective = "traffic"
	cfg.Targeting.Behaviors = []string{"online_shoppers"}
	cfg.Budget.BidStrategy = "lowest_cost"

	in := &domain.Session{
		ID:        "0d7c6c0e-8f1a-4c55-9b1e-8a4a4f1e2b3c",
		OwnerID:   "u1",
		Step:      7,
		Config:    cfg,
		Report:    &domain.Report{Seed: 42, Platform: domain.PlatformMeta, Metrics: domain.PerformanceMetrics{Impressions: 4950, Clicks: 118}},
		CreatedAt: at,
		UpdatedAt: at.Add(time.Minute),
	}

	row, err := encodeSession(in)
	require.NoError(t, err)
	assert.Contains(t, string(row.config), `"bid_strategy":"lowest_cost"`)

	out, err := row.decode()
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("decoded session mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionRowWithoutReport(t *testing.T) {
	row, err := encodeSession(&domain.Session{ID: "s", Config: domain.DefaultConfig()})
	require.NoError(t, err)
	assert.Nil(t, row.report)

	out, err := row.decode()
	require.NoError(t, err)
	assert.Nil(t, out.Report)
}

func TestSessionRowCorruptConfig(t *testing.T) {
	_, err := sessionRow{id: "s", config: []byte("{")}.decode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config of session s")
}

// Malformed ids never reach the pool, so a nil pool is enough here.
func TestMalformedIDIsMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(nil)

	for _, id := range []string{"not-a-uuid", "", "0d7c6c0e-8f1a"} {
		s, err := repo.Get(ctx, id)
		require.NoError(t, err, id)
		assert.Nil(t, s, id)
		assert.NoError(t, repo.Delete(ctx, id), id)
	}
}
