package domain

import "time"

// PerformanceMetrics are the aggregate figures of one simulation run.
// CTR is a fraction in [0,1]; CPC, CPA and Spend are currency units.
type PerformanceMetrics struct {
	Impressions int64   `json:"impressions" yaml:"impressions"`
	Clicks      int64   `json:"clicks" yaml:"clicks"`
	Conversions int64   `json:"conversions" yaml:"conversions"`
	CTR         float64 `json:"ctr" yaml:"ctr"`
	CPC         float64 `json:"cpc" yaml:"cpc"`
	CPA         float64 `json:"cpa" yaml:"cpa"`
	ROAS        float64 `json:"roas" yaml:"roas"`
	Spend       float64 `json:"spend" yaml:"spend"`
}

// DayPerformance is one day of the synthetic series. CTR here is expressed
// as a percentage.
type DayPerformance struct {
	Label                 string         `json:"label" yaml:"label"`
	Date                  time.Time      `json:"date" yaml:"date"`
	Impressions           int64          `json:"impressions" yaml:"impressions"`
	Clicks                int64          `json:"clicks" yaml:"clicks"`
	Conversions           int64          `json:"conversions" yaml:"conversions"`
	CTR                   float64        `json:"ctr" yaml:"ctr"`
	CPC                   float64        `json:"cpc" yaml:"cpc"`
	Spend                 float64        `json:"spend" yaml:"spend"`
	CumulativeImpressions int64          `json:"cumulative_impressions" yaml:"cumulative_impressions"`
	CumulativeClicks      int64          `json:"cumulative_clicks" yaml:"cumulative_clicks"`
	CumulativeConversions int64          `json:"cumulative_conversions" yaml:"cumulative_conversions"`
	CumulativeSpend       float64        `json:"cumulative_spend" yaml:"cumulative_spend"`
	PeakHour              int            `json:"peak_hour" yaml:"peak_hour"`
	PeakClicks            int64          `json:"peak_clicks" yaml:"peak_clicks"`
	Hourly                []HourActivity `json:"hourly" yaml:"hourly"`
}

// HourActivity is the activity of a single hour within a day.
type HourActivity struct {
	Hour        int   `json:"hour" yaml:"hour"`
	Clicks      int64 `json:"clicks" yaml:"clicks"`
	Conversions int64 `json:"conversions" yaml:"conversions"`
}

// Impact grades how much a recommendation is expected to help.
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Recommendation is a canned piece of optimisation advice.
type Recommendation struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Impact      Impact `json:"impact" yaml:"impact"`
}

// ForecastDay is one point of the estimate shown while choosing a budget.
type ForecastDay struct {
	Label       string `json:"label" yaml:"label"`
	Impressions int64  `json:"impressions" yaml:"impressions"`
	Clicks      int64  `json:"clicks" yaml:"clicks"`
	Conversions int64  `json:"conversions" yaml:"conversions"`
}

// Share is a named slice of conversions.
type Share struct {
	Name  string `json:"name" yaml:"name"`
	Value int64  `json:"value" yaml:"value"`
}

// Scores are 0..100 gauges derived from the aggregate metrics.
type Scores struct {
	CTR            float64 `json:"ctr" yaml:"ctr"`
	ConversionRate float64 `json:"conversion_rate" yaml:"conversion_rate"`
	ROAS           float64 `json:"roas" yaml:"roas"`
	CostEfficiency float64 `json:"cost_efficiency" yaml:"cost_efficiency"`
}

// Breakdown groups the secondary views of a report.
type Breakdown struct {
	Devices          []Share `json:"devices" yaml:"devices"`
	Regions          []Share `json:"regions" yaml:"regions"`
	Scores           Scores  `json:"scores" yaml:"scores"`
	EstimatedRevenue float64 `json:"estimated_revenue" yaml:"estimated_revenue"`
	ROI              float64 `json:"roi" yaml:"roi"`
}

// Report is the full output of a simulation run. Seed replays the run.
type Report struct {
	Seed            int64              `json:"seed" yaml:"seed"`
	GeneratedAt     time.Time          `json:"generated_at" yaml:"generated_at"`
	Platform        Platform           `json:"platform" yaml:"platform"`
	Metrics         PerformanceMetrics `json:"metrics" yaml:"metrics"`
	Daily           []DayPerformance   `json:"daily" yaml:"daily"`
	Recommendations []Recommendation   `json:"recommendations" yaml:"recommendations"`
	Breakdown       Breakdown          `json:"breakdown" yaml:"breakdown"`
}
