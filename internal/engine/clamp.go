package engine

import "math"

// Unit clamps v to [0, 1].
func Unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Head returns at most n leading items.
func Head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
