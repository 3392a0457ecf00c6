package heuristics

import (
	"fmt"
	"strings"

	"github.com/jonathan/skill-intel/internal/types"
)

// Truncation limits for curriculum recommendations
const (
	MaxSkillsToAdd    = 10
	MaxSkillsToReduce = 5
	maxSuggestions    = 3
	maxFocusNamed     = 5
)

// neutralAlignment is used when there are no industry skills to align with
const neutralAlignment = 0.5

// RecommendCurriculum derives additions and reductions for a curriculum from
// industry and future skill sets using case-insensitive set operations.
func RecommendCurriculum(curriculum, industry, future []string) types.CurriculumRecommendation {
	taught := types.NewSkillSet(curriculum)

	add := []string{}
	added := make(types.SkillSet)
	for _, list := range [][]string{industry, future} {
		for _, s := range list {
			if taught.Has(s) || added.Has(s) {
				continue
			}
			added.Add(s)
			add = append(add, s)
		}
	}

	demanded := types.NewSkillSet(industry, future)
	reduce := []string{}
	for _, s := range types.DedupeSkills(curriculum) {
		if !demanded.Has(s) {
			reduce = append(reduce, s)
		}
	}

	// Matches count distinct taught skills, over every industry entry
	// including repeats.
	alignment := neutralAlignment
	if len(industry) > 0 {
		required := types.NewSkillSet(industry)
		matched := 0
		for s := range taught {
			if required.Has(s) {
				matched++
			}
		}
		alignment = float64(matched) / float64(len(industry))
	}

	labs := []string{}
	projects := []string{}
	for _, s := range head(add, maxSuggestions) {
		labs = append(labs, s+" practical lab")
		projects = append(projects, "Build a project using "+s)
	}

	focus := "maintaining current curriculum"
	if len(add) > 0 {
		focus = strings.Join(head(add, maxFocusNamed), ", ")
	}

	return types.CurriculumRecommendation{
		SkillsToAdd:         head(add, MaxSkillsToAdd),
		SkillsToRemove:      []string{},
		SkillsToReduceFocus: head(reduce, MaxSkillsToReduce),
		LabSuggestions:      labs,
		ProjectSuggestions:  projects,
		AlignmentScore:      round2(alignment),
		ReadinessScores:     readinessFromAlignment(alignment),
		DetailedRecommendations: fmt.Sprintf("Consider adding %d new skills to align with industry demands. Focus on: %s.",
			len(add), focus),
		Source: types.SourceFallback,
		Note:   OfflineAnalysisNote,
	}
}

func readinessFromAlignment(a float64) types.ReadinessScores {
	return types.ReadinessScores{
		Placements:            round2(a * 0.9),
		IndustryCollaboration: round2(a * 0.85),
		Accreditation:         round2(min(a+0.1, 1.0)),
	}
}
