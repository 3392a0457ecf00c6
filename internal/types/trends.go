package types

import "fmt"

// TrendCategory classifies the direction of demand for a skill.
type TrendCategory string

const (
	TrendEmerging   TrendCategory = "emerging"
	TrendHighGrowth TrendCategory = "high-growth"
	TrendSaturated  TrendCategory = "saturated"
	TrendDeclining  TrendCategory = "declining"
)

// TrendCategories lists every category in classification order.
var TrendCategories = []TrendCategory{TrendEmerging, TrendHighGrowth, TrendSaturated, TrendDeclining}

// ParseTrendCategory converts a string into a TrendCategory.
func ParseTrendCategory(s string) (TrendCategory, error) {
	for _, c := range TrendCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown trend category %q", s)
}

// TrendMeasurement summarizes search interest for a skill over a window.
type TrendMeasurement struct {
	AverageInterest float64 `json:"average_interest" yaml:"average_interest" validate:"gte=0,lte=100"`
	GrowthRate      float64 `json:"growth_rate" yaml:"growth_rate"` // percentage, may be negative
}

// Validate validates the measurement bounds.
func (m *TrendMeasurement) Validate() error {
	return validate.Struct(m)
}

// TrendPoint is one sample of an interest time series.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ForecastTriple holds projected demand at three horizons, each in [0, 100].
type ForecastTriple struct {
	Forecast6M float64 `json:"forecast_6m"`
	Forecast1Y float64 `json:"forecast_1y"`
	Forecast3Y float64 `json:"forecast_3y"`
}

// SkillTrend is the full trend analysis of a single skill.
type SkillTrend struct {
	Skill         string         `json:"skill"`
	CurrentDemand float64        `json:"current_demand"`
	GrowthRate    float64        `json:"growth_rate"`
	TrendStatus   TrendCategory  `json:"trend_status"`
	Forecasts     ForecastTriple `json:"forecasts"`
	TrendData     []TrendPoint   `json:"trend_data"`
}

// SkillForecast is the caller-facing forecast for a named skill.
type SkillForecast struct {
	SkillName     string        `json:"skill_name"`
	CurrentDemand float64       `json:"current_demand"`
	TrendStatus   TrendCategory `json:"trend_status"`
	TrendsScore   float64       `json:"google_trends_score"`
	ForecastTriple
}
