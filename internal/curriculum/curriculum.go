// Package curriculum implements the curriculum alignment engine.
package curriculum

import (
	"context"
	"strings"

	"github.com/jonathan/skill-intel/internal/engine"
	"github.com/jonathan/skill-intel/internal/heuristics"
	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/parsing"
	"github.com/jonathan/skill-intel/internal/prompts"
	"github.com/jonathan/skill-intel/internal/types"
	"github.com/tidwall/gjson"
)

// Engine recommends curriculum changes against industry and future demand.
type Engine struct {
	engine.Base
}

// NewEngine creates a curriculum engine. client may be nil for fallback-only use.
func NewEngine(client llm.Client, opts ...engine.Option) *Engine {
	return &Engine{Base: engine.NewBase("curriculum", client, llm.TierStandard, opts...)}
}

var recommendationFields = []string{
	"skills_to_add",
	"skills_to_remove",
	"skills_to_reduce_focus",
	"lab_suggestions",
	"project_suggestions",
	"alignment_score",
	"readiness_scores",
	"detailed_recommendations",
}

// Recommend compares the skills a curriculum teaches with industry-required
// and future-emerging skills. It always returns a result.
func (e *Engine) Recommend(ctx context.Context, curriculum, industry, future []string) *types.CurriculumRecommendation {
	if e.Online() {
		result, err := e.recommendWithModel(ctx, curriculum, industry, future)
		if err == nil {
			e.Done(types.SourceAI)
			return result
		}
		e.FellBack(err)
	}

	result := heuristics.RecommendCurriculum(curriculum, industry, future)
	e.Done(types.SourceFallback)
	return &result
}

func (e *Engine) recommendWithModel(ctx context.Context, curriculum, industry, future []string) (*types.CurriculumRecommendation, error) {
	prompt, err := prompts.Render(prompts.KeyRecommendCurriculum, map[string]string{
		"CurriculumSkills": strings.Join(curriculum, ", "),
		"IndustrySkills":   strings.Join(industry, ", "),
		"FutureSkills":     strings.Join(future, ", "),
	})
	if err != nil {
		return nil, err
	}

	obj, err := parsing.CompleteObject(ctx, e.Client, prompt, e.Tier)
	if err != nil {
		return nil, err
	}
	if !parsing.HasAny(obj, recommendationFields...) {
		return nil, &parsing.ShapeError{Expected: "curriculum recommendation object", Got: "object without recommendation fields"}
	}
	return recommendationFromJSON(obj), nil
}

func recommendationFromJSON(obj gjson.Result) *types.CurriculumRecommendation {
	return &types.CurriculumRecommendation{
		SkillsToAdd:         types.DedupeSkills(parsing.Strings(obj, "skills_to_add")),
		SkillsToRemove:      types.DedupeSkills(parsing.Strings(obj, "skills_to_remove")),
		SkillsToReduceFocus: types.DedupeSkills(parsing.Strings(obj, "skills_to_reduce_focus")),
		LabSuggestions:      parsing.Strings(obj, "lab_suggestions"),
		ProjectSuggestions:  parsing.Strings(obj, "project_suggestions"),
		AlignmentScore:      unitField(obj, "alignment_score"),
		ReadinessScores: types.ReadinessScores{
			Placements:            unitField(obj, "readiness_scores.placements"),
			IndustryCollaboration: unitField(obj, "readiness_scores.industry_collaboration"),
			Accreditation:         unitField(obj, "readiness_scores.accreditation"),
		},
		DetailedRecommendations: parsing.Text(obj, "detailed_recommendations"),
		Source:                  types.SourceAI,
	}
}

func unitField(obj gjson.Result, path string) float64 {
	v, _ := parsing.Float(obj, path)
	return engine.Unit(v)
}
