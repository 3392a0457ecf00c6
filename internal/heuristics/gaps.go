package heuristics

import (
	"fmt"
	"strings"

	"github.com/jonathan/skill-intel/internal/types"
)

// MaxPriorityBucket caps each priority bucket of a GapResult.
const MaxPriorityBucket = 5

// AnalyzeGaps compares current skills with required skills. Missing skills
// keep the order of required; the score is the covered fraction of required.
func AnalyzeGaps(current, required []string, targetRole string) types.GapResult {
	have := types.NewSkillSet(current)

	missing := []string{}
	for _, s := range required {
		if !have.Has(s) {
			missing = append(missing, s)
		}
	}

	score := 1.0
	if len(required) > 0 {
		score = 1 - float64(len(missing))/float64(len(required))
	}

	half := len(missing) / 2
	var short, long []string
	if half > 0 {
		short, long = head(missing, half), tail(missing, half)
	} else {
		short, long = head(missing, 3), tail(missing, 3)
	}

	focus := "advanced skills in your current areas"
	if len(short) > 0 {
		focus = strings.Join(head(short, 3), ", ")
	}

	return types.GapResult{
		MissingSkills:     missing,
		PriorityShortTerm: head(short, MaxPriorityBucket),
		PriorityLongTerm:  head(long, MaxPriorityBucket),
		GapScore:          round2(score),
		Recommendations: fmt.Sprintf("To become a %s, focus first on learning: %s. You have %d skills and need to learn %d more.",
			targetRole, focus, len(current), len(missing)),
		Source: types.SourceFallback,
		Note:   OfflineAnalysisNote,
	}
}
