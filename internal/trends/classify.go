// Package trends classifies skill demand, forecasts it and ingests interest
// series from a trend-data source.
package trends

import (
	"math"

	"github.com/jonathan/skill-intel/internal/types"
)

// Classification thresholds, in percent growth and interest points
const (
	emergingGrowth   = 30.0
	emergingInterest = 50.0
	highGrowth       = 15.0
	decliningGrowth  = -10.0
)

// Classify maps a growth rate and average interest to a category.
// The first matching rule wins and all comparisons are strict.
func Classify(growthRate, averageInterest float64) types.TrendCategory {
	switch {
	case growthRate > emergingGrowth && averageInterest < emergingInterest:
		return types.TrendEmerging
	case growthRate > highGrowth:
		return types.TrendHighGrowth
	case growthRate < decliningGrowth:
		return types.TrendDeclining
	default:
		return types.TrendSaturated
	}
}

// ClassifyMeasurement classifies a TrendMeasurement.
func ClassifyMeasurement(m types.TrendMeasurement) types.TrendCategory {
	return Classify(m.GrowthRate, m.AverageInterest)
}

// Forecast projects demand linearly at 6 months, 1 year and 3 years.
// Each horizon is clamped to [0, 100].
func Forecast(currentDemand, growthRate float64) types.ForecastTriple {
	g := growthRate / 100
	return types.ForecastTriple{
		Forecast6M: clampDemand(currentDemand * (1 + g*0.5)),
		Forecast1Y: clampDemand(currentDemand * (1 + g)),
		Forecast3Y: clampDemand(currentDemand * (1 + g*3)),
	}
}

func clampDemand(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
