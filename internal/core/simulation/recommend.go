package simulation

import (
	"fmt"
	"math"

	"adsim/internal/core/domain"
)

const (
	lowCTRThreshold  = 0.02
	highCPAThreshold = 30
)

// Recommend returns canned advice for a run. Budget advice and a platform
// specific tip are always included, so the list has at least two entries.
func Recommend(m domain.PerformanceMetrics, p domain.Platform) []domain.Recommendation {
	var recs []domain.Recommendation
	if m.CTR < lowCTRThreshold {
		recs = append(recs, domain.Recommendation{
			Type:        "Creative",
			Description: "Your click-through rate is below average. Try new ad headlines and imagery to improve engagement.",
			Impact:      domain.ImpactHigh,
		})
	}
	if m.CPA > highCPAThreshold {
		recs = append(recs, domain.Recommendation{
			Type:        "Targeting",
			Description: "Your cost per acquisition is high. Consider refining your audience targeting to reach more relevant users.",
			Impact:      domain.ImpactMedium,
		})
	}
	recs = append(recs, domain.Recommendation{
		Type: "Budget",
		Description: fmt.Sprintf("Increasing your daily budget by 20%% could result in approximately %d more conversions per week.",
			int64(math.Floor(float64(m.Conversions)*0.2))),
		Impact: domain.ImpactMedium,
	})
	if p == domain.PlatformGoogle {
		recs = append(recs, domain.Recommendation{
			Type:        "Keywords",
			Description: "Add negative keywords to exclude irrelevant search queries and improve campaign efficiency.",
			Impact:      domain.ImpactHigh,
		})
	} else {
		recs = append(recs, domain.Recommendation{
			Type:        "Placement",
			Description: "Your ads are performing better on Instagram than Facebook. Consider reallocating budget to Instagram placements.",
			Impact:      domain.ImpactMedium,
		})
	}
	return recs
}
