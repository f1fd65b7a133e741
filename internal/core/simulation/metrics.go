// Package simulation turns a campaign configuration into fabricated
// performance figures: aggregate metrics, a seven day series with hourly
// activity, canned recommendations and a budget forecast. The numbers are
// illustrative placeholders, not a model of real auctions.
package simulation

import (
	"math"
	"strings"

	"adsim/internal/core/domain"
)

const (
	impressionsPerUnit = 100
	baseCTR            = 0.02
	baseConversionRate = 0.03
	// ConversionValue is the revenue attributed to one conversion.
	ConversionValue = 50.0
)

// Simulate derives aggregate metrics from the budget, targeting, objective
// and bid strategy. It never fails; every ratio with a zero denominator is
// reported as 0.
func Simulate(cfg domain.CampaignConfig) domain.PerformanceMetrics {
	amount := math.Max(cfg.Budget.Amount, 0)
	impressions := amount * impressionsPerUnit
	ctr := baseCTR
	cvr := baseConversionRate

	t := cfg.Targeting
	if len(t.Locations) > 0 {
		impressions *= 0.9
	}
	if len(t.Ages) > 0 {
		ctr *= 1.2
	}
	if len(t.Interests) > 0 {
		cvr *= 1.3
	}

	switch cfg.Objective {
	case "conversions", "leads":
		cvr *= 1.5
	case "traffic", "awareness":
		impressions *= 1.5
	}
	ctr *= BidModifier(cfg.Budget.BidStrategy)

	m := domain.PerformanceMetrics{Spend: amount}
	m.Impressions = int64(math.Floor(impressions))
	m.Clicks = min(int64(math.Floor(float64(m.Impressions)*ctr)), m.Impressions)
	m.Conversions = min(int64(math.Floor(float64(m.Clicks)*cvr)), m.Clicks)

	m.CTR = ratio(float64(m.Clicks), float64(m.Impressions))
	m.CPC = ratio(amount, float64(m.Clicks))
	m.CPA = ratio(amount, float64(m.Conversions))
	m.ROAS = ratio(float64(m.Conversions)*ConversionValue, amount)
	return m
}

// BidModifier scales delivery for a bid strategy by the words in its id.
// Later rules override earlier ones, so "lowest_cost_with_bid_cap" counts
// as a capped strategy.
func BidModifier(strategy string) float64 {
	modifier := 1.0
	if strings.Contains(strategy, "max") || strings.Contains(strategy, "lowest") {
		modifier = 1.2
	}
	if strings.Contains(strategy, "manual") || strings.Contains(strategy, "cap") {
		modifier = 0.9
	}
	if strings.Contains(strategy, "cpa") || strings.Contains(strategy, "roas") {
		modifier = 1.1
	}
	return modifier
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
