package simulation

import (
	"math"

	"adsim/internal/core/domain"
)

var (
	deviceShares = []struct {
		name  string
		share float64
	}{
		{"Desktop", 0.45},
		{"Mobile", 0.35},
		{"Tablet", 0.20},
	}
	regionShares = []struct {
		name  string
		share float64
	}{
		{"California", 0.25},
		{"New York", 0.20},
		{"Texas", 0.15},
		{"Florida", 0.12},
		{"Illinois", 0.10},
	}
)

// Breakdown derives the device and region splits, the optimisation gauges
// and the revenue estimate of the last day in the series.
func Breakdown(m domain.PerformanceMetrics, daily []domain.DayPerformance) domain.Breakdown {
	b := domain.Breakdown{
		Devices: make([]domain.Share, len(deviceShares)),
		Regions: make([]domain.Share, len(regionShares)),
	}
	for i, d := range deviceShares {
		b.Devices[i] = domain.Share{Name: d.name, Value: int64(math.Floor(float64(m.Conversions) * d.share))}
	}
	for i, r := range regionShares {
		b.Regions[i] = domain.Share{Name: r.name, Value: int64(math.Floor(float64(m.Conversions) * r.share))}
	}

	conversionRate := ratio(float64(m.Conversions), float64(m.Clicks))
	b.Scores = domain.Scores{
		CTR:            gauge(m.CTR * 100 * 5),
		ConversionRate: gauge(conversionRate * 100 * 10),
		ROAS:           gauge(m.ROAS * 20),
	}

	if len(daily) > 0 {
		last := daily[len(daily)-1]
		b.EstimatedRevenue = roundCents(float64(last.CumulativeConversions) * ConversionValue)
		b.ROI = math.Round(ratio(b.EstimatedRevenue, last.CumulativeSpend) * 100)
		if last.CumulativeConversions > 0 {
			costPerConversion := last.CumulativeSpend / float64(last.CumulativeConversions)
			b.Scores.CostEfficiency = gauge(costPerConversion / highCPAThreshold * 100)
		}
	}
	return b
}

func gauge(v float64) float64 {
	return roundCents(math.Min(math.Max(v, 0), 100))
}
