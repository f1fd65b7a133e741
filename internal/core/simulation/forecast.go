package simulation

import (
	"fmt"
	"math"

	"adsim/internal/core/domain"
)

// Day-by-day shape of the budget forecast.
var (
	forecastClickCurve      = [SeriesDays]float64{0.8, 0.9, 1.0, 1.1, 1.1, 1.0, 0.9}
	forecastImpressionCurve = [SeriesDays]float64{0.7, 0.8, 0.9, 1.0, 1.1, 1.2, 1.1}
	forecastConversionCurve = [SeriesDays]float64{0.6, 0.8, 0.9, 1.0, 1.1, 1.2, 1.1}
)

// Forecast estimates a week of delivery for a budget amount and bid
// strategy. It backs the preview shown while the budget is being chosen
// and does not depend on targeting.
func Forecast(amount float64, bidStrategy string) []domain.ForecastDay {
	amount = math.Max(amount, 0)
	baseClicks := amount * 10
	baseImpressions := amount * 500
	baseConversions := amount * 1.2
	modifier := BidModifier(bidStrategy)

	days := make([]domain.ForecastDay, SeriesDays)
	for i := range SeriesDays {
		days[i] = domain.ForecastDay{
			Label:       fmt.Sprintf("Day %d", i+1),
			Clicks:      int64(math.Floor(baseClicks / SeriesDays * modifier * forecastClickCurve[i])),
			Impressions: int64(math.Floor(baseImpressions / SeriesDays * forecastImpressionCurve[i])),
			Conversions: int64(math.Floor(baseConversions / SeriesDays * forecastConversionCurve[i])),
		}
	}
	return days
}
