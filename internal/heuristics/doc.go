// Package heuristics holds the deterministic, network-free computations used
// whenever the model-backed path of an engine fails. Every function is pure:
// identical inputs always produce identical outputs.
package heuristics

import "math"

// OfflineAnalysisNote is attached to gap and curriculum results computed here.
const OfflineAnalysisNote = "This is a basic analysis generated offline. For detailed AI recommendations, please try again later."

// OfflineRoadmapNote is attached to roadmaps computed here.
const OfflineRoadmapNote = "This is a basic roadmap generated offline. For personalized recommendations, please try again later."

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func head(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

func tail(items []string, from int) []string {
	if from >= len(items) {
		return []string{}
	}
	out := make([]string, len(items)-from)
	copy(out, items[from:])
	return out
}
