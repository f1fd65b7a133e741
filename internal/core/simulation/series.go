package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"adsim/internal/core/domain"
)

const (
	// SeriesDays is the length of the synthetic series.
	SeriesDays    = 7
	hoursPerDay   = 24
	businessStart = 8
	businessEnd   = 20
)

// Series spreads the aggregate metrics over SeriesDays days ending on end.
// Each day grows linearly toward the last one and is scaled by a jitter in
// [0.8, 1.2); hours inside business hours get most of the day's clicks.
// The output is fully determined by rng.
func Series(m domain.PerformanceMetrics, rng *rand.Rand, end time.Time) []domain.DayPerformance {
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	days := make([]domain.DayPerformance, 0, SeriesDays)
	perDaySpend := m.Spend / SeriesDays

	var cumImpressions, cumClicks, cumConversions int64
	var cumSpend float64
	for i := range SeriesDays {
		factor := float64(i+1) / SeriesDays
		jitter := 0.8 + rng.Float64()*0.4

		d := domain.DayPerformance{
			Label:       fmt.Sprintf("Day %d", i+1),
			Date:        end.AddDate(0, 0, -(SeriesDays - 1 - i)),
			Impressions: spread(m.Impressions, factor, jitter),
			Clicks:      spread(m.Clicks, factor, jitter),
			Conversions: spread(m.Conversions, factor, jitter),
			Spend:       roundCents(perDaySpend),
		}
		if d.Impressions > 0 {
			d.CTR = roundCents(float64(d.Clicks) / float64(d.Impressions) * 100)
		}
		if d.Clicks > 0 {
			d.CPC = roundCents(perDaySpend / float64(d.Clicks))
		}

		cumImpressions += d.Impressions
		cumClicks += d.Clicks
		cumConversions += d.Conversions
		cumSpend += perDaySpend
		d.CumulativeImpressions = cumImpressions
		d.CumulativeClicks = cumClicks
		d.CumulativeConversions = cumConversions
		d.CumulativeSpend = roundCents(cumSpend)

		d.Hourly = hourly(d.Clicks, d.Conversions, jitter, rng)
		d.PeakHour, d.PeakClicks = peak(d.Hourly)
		days = append(days, d)
	}
	return days
}

func spread(total int64, factor, jitter float64) int64 {
	return int64(math.Floor(float64(total) / SeriesDays * factor * jitter))
}

func hourly(dayClicks, dayConversions int64, jitter float64, rng *rand.Rand) []domain.HourActivity {
	hours := make([]domain.HourActivity, hoursPerDay)
	for h := range hoursPerDay {
		var weight float64
		if h >= businessStart && h <= businessEnd {
			weight = 0.7 + rng.Float64()*0.6
		} else {
			weight = 0.1 + rng.Float64()*0.3
		}
		clicks := int64(math.Floor(float64(dayClicks) * weight / 12))
		var conversions int64
		if dayClicks > 0 {
			conversions = int64(math.Floor(float64(clicks) * (float64(dayConversions) / float64(dayClicks)) * jitter))
		}
		hours[h] = domain.HourActivity{Hour: h, Clicks: clicks, Conversions: conversions}
	}
	return hours
}

// peak returns the first hour with the most clicks, or hour 0 when the day
// has none.
func peak(hours []domain.HourActivity) (int, int64) {
	best := domain.HourActivity{}
	for _, h := range hours {
		if h.Clicks > best.Clicks {
			best = h
		}
	}
	return best.Hour, best.Clicks
}
