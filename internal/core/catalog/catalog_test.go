package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsim/internal/core/domain"
)

func TestBidStrategiesForGoogleSales(t *testing.T) {
	got := IDs(BidStrategies(domain.PlatformGoogle, "sales"))
	assert.Equal(t, []string{"target_cpa", "max_conversions", "target_roas"}, got)
}

func TestCampaignTypesRequireObjective(t *testing.T) {
	assert.Empty(t, CampaignTypes(domain.PlatformGoogle, ""))
	assert.Empty(t, BidStrategies(domain.PlatformMeta, ""))
	assert.False(t, Contains(CampaignTypes(domain.PlatformGoogle, ""), "search"))
}

func TestCampaignTypes(t *testing.T) {
	tests := []struct {
		name      string
		platform  domain.Platform
		objective string
		want      []string
	}{
		{"google sales", domain.PlatformGoogle, "sales", []string{"search", "display", "shopping"}},
		{"google consideration", domain.PlatformGoogle, "consideration", []string{"search", "display", "video"}},
		{"google awareness", domain.PlatformGoogle, "awareness", []string{"display", "video"}},
		{"google app", domain.PlatformGoogle, "app", []string{"app"}},
		{"meta leads", domain.PlatformMeta, "leads", []string{"image", "carousel", "collection"}},
		{"meta engagement", domain.PlatformMeta, "engagement", []string{"image", "video", "slideshow"}},
		{"meta unknown objective", domain.PlatformMeta, "other", []string{"image", "video", "carousel", "collection"}},
		{"no platform", "", "sales", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, IDs(CampaignTypes(tt.platform, tt.objective)))
		})
	}
}

func TestObjectivesArePlatformSpecific(t *testing.T) {
	google := IDs(Objectives(domain.PlatformGoogle))
	meta := IDs(Objectives(domain.PlatformMeta))
	assert.Contains(t, google, "sales")
	assert.NotContains(t, google, "conversions")
	assert.Contains(t, meta, "conversions")
	assert.NotContains(t, meta, "sales")
	assert.Nil(t, Objectives(""))
}

func TestObjectivesReturnsCopy(t *testing.T) {
	first := Objectives(domain.PlatformGoogle)
	first[0].ID = "changed"
	assert.Equal(t, "sales", Objectives(domain.PlatformGoogle)[0].ID)
}

func TestTargetingFacetsFollowPlatform(t *testing.T) {
	google := Targeting(domain.PlatformGoogle)
	require.NotEmpty(t, google.Keywords)
	assert.Empty(t, google.Behaviors)

	meta := Targeting(domain.PlatformMeta)
	require.NotEmpty(t, meta.Behaviors)
	assert.Empty(t, meta.Keywords)
}

func TestBidStrategyLookup(t *testing.T) {
	opt, ok := BidStrategy(domain.PlatformMeta, "traffic", "bid_cap")
	require.True(t, ok)
	assert.Equal(t, "Bid Cap", opt.Title)

	_, ok = BidStrategy(domain.PlatformMeta, "traffic", "target_cpa")
	assert.False(t, ok)
}
