package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adsim/internal/core/domain"
)

func config(platform domain.Platform, objective, bid string, amount float64) domain.CampaignConfig {
	cfg := domain.DefaultConfig()
	cfg.Platform = platform
	cfg.Objective = objective
	cfg.Budget.Amount = amount
	cfg.Budget.BidStrategy = bid
	return cfg
}

func TestSimulate(t *testing.T) {
	fullTargeting := domain.Targeting{
		Locations: []string{"Canada"},
		Ages:      []string{"25-34"},
		Interests: []string{"Travel"},
	}

	tests := []struct {
		name            string
		cfg             domain.CampaignConfig
		wantImpressions int64
		wantClicks      int64
		wantConversions int64
		wantCPC         float64
		wantCPA         float64
		wantROAS        float64
	}{
		{
			name:            "defaults",
			cfg:             config(domain.PlatformGoogle, "sales", "", 10),
			wantImpressions: 1000,
			wantClicks:      20,
			wantConversions: 0,
			wantCPC:         0.5,
			wantCPA:         0,
			wantROAS:        0,
		},
		{
			name: "full targeting with target cpa",
			cfg: func() domain.CampaignConfig {
				c := config(domain.PlatformGoogle, "sales", "target_cpa", 100)
				c.Targeting = fullTargeting
				return c
			}(),
			wantImpressions: 9000,
			wantClicks:      237,
			wantConversions: 9,
			wantCPC:         100.0 / 237,
			wantCPA:         100.0 / 9,
			wantROAS:        4.5,
		},
		{
			name:            "traffic objective boosts impressions",
			cfg:             config(domain.PlatformMeta, "traffic", "lowest_cost", 33),
			wantImpressions: 4950,
			wantClicks:      118,
			wantConversions: 3,
			wantCPC:         33.0 / 118,
			wantCPA:         11,
			wantROAS:        150.0 / 33,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Simulate(tt.cfg)
			assert.Equal(t, tt.wantImpressions, m.Impressions)
			assert.Equal(t, tt.wantClicks, m.Clicks)
			assert.Equal(t, tt.wantConversions, m.Conversions)
			assert.InDelta(t, tt.wantCPC, m.CPC, 1e-9)
			assert.InDelta(t, tt.wantCPA, m.CPA, 1e-9)
			assert.InDelta(t, tt.wantROAS, m.ROAS, 1e-9)
			assert.InDelta(t, float64(m.Clicks)/float64(m.Impressions), m.CTR, 1e-12)
			assert.Equal(t, tt.cfg.Budget.Amount, m.Spend)
		})
	}
}

func TestSimulateZeroDenominators(t *testing.T) {
	m := Simulate(config(domain.PlatformMeta, "engagement", "", 0.01))
	assert.Equal(t, int64(1), m.Impressions)
	assert.Zero(t, m.Clicks)
	assert.Zero(t, m.Conversions)
	assert.Zero(t, m.CPC)
	assert.Zero(t, m.CPA)
	assert.Zero(t, m.ROAS)
}

func TestSimulateInvariants(t *testing.T) {
	objectives := []string{"sales", "leads", "traffic", "awareness", "conversions", "app"}
	bids := []string{"", "max_clicks", "manual_cpc", "target_roas", "lowest_cost_with_bid_cap"}
	for _, amount := range []float64{1, 5, 17.5, 100, 2500} {
		for _, objective := range objectives {
			for _, bid := range bids {
				cfg := config(domain.PlatformGoogle, objective, bid, amount)
				cfg.Targeting.Ages = []string{"18-24"}
				cfg.Targeting.Interests = []string{"Sports"}
				m := Simulate(cfg)

				assert.GreaterOrEqual(t, m.Impressions, int64(0))
				assert.LessOrEqual(t, m.Clicks, m.Impressions)
				assert.LessOrEqual(t, m.Conversions, m.Clicks)
				assert.Equal(t, m.Clicks == 0, m.CPC == 0)
				assert.Equal(t, m.Conversions == 0, m.CPA == 0)
			}
		}
	}
}

func TestBidModifier(t *testing.T) {
	tests := map[string]float64{
		"":                         1,
		"max_conversions":          1.2,
		"lowest_cost":              1.2,
		"manual_cpc":               0.9,
		"cost_cap":                 0.9,
		"lowest_cost_with_bid_cap": 0.9,
		"target_cpa":               1.1,
		"roas_goal":                1.1,
		"viewable_cpm":             1,
	}
	for strategy, want := range tests {
		assert.Equal(t, want, BidModifier(strategy), strategy)
	}
}
