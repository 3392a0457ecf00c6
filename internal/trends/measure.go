package trends

import (
	"fmt"

	"github.com/jonathan/skill-intel/internal/types"
)

// Measure summarizes an interest series. Growth compares the mean of the
// second half with the mean of the first half; it is 0 when the first half
// is empty or averages zero or less.
func Measure(points []types.TrendPoint) types.TrendMeasurement {
	if len(points) == 0 {
		return types.TrendMeasurement{}
	}

	mid := len(points) / 2
	avg := mean(points)
	first := mean(points[:mid])
	second := mean(points[mid:])

	var growth float64
	if mid > 0 && first > 0 {
		growth = (second - first) / first * 100
	}
	return types.TrendMeasurement{AverageInterest: avg, GrowthRate: growth}
}

func mean(points []types.TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

// SyntheticSeries builds a 12-point monthly series for year that moves
// linearly from the current demand toward the future demand. A zero current
// demand starts from 50 and a zero future demand keeps the series flat.
func SyntheticSeries(currentDemand, futureDemand float64, year int) []types.TrendPoint {
	base := currentDemand
	if base == 0 {
		base = 50
	}
	target := futureDemand
	if target == 0 {
		target = base
	}

	points := make([]types.TrendPoint, 12)
	for i := range points {
		points[i] = types.TrendPoint{
			Date:  fmt.Sprintf("%04d-%02d-01", year, i+1),
			Value: base + float64(i)*(target-base)/12,
		}
	}
	return points
}

// ImpliedGrowth derives a growth percentage from stored demand scores.
// The denominator never drops below 1.
func ImpliedGrowth(currentDemand, futureDemand float64) float64 {
	denom := currentDemand
	if denom < 1 {
		denom = 1
	}
	return (futureDemand - currentDemand) / denom * 100
}
