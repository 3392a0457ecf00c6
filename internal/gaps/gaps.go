// Package gaps implements the skill-gap analysis engine.
package gaps

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

// Engine analyzes skill gaps with the model path first and the heuristics
// as fallback.
type Engine struct {
	engine.Base
}

// NewEngine creates a gap engine. client may be nil for fallback-only use.
func NewEngine(client llm.Client, opts ...engine.Option) *Engine {
	return &Engine{Base: engine.NewBase("gaps", client, llm.TierStandard, opts...)}
}

var gapFields = []string{
	"missing_skills",
	"priority_skills_short_term",
	"priority_skills_long_term",
	"gap_score",
	"recommendations",
}

// Analyze compares current with required skills for targetRole. It always
// returns a result.
func (e *Engine) Analyze(ctx context.Context, current, required []string, targetRole string) *types.GapResult {
	if e.Online() {
		result, err := e.analyzeWithModel(ctx, current, required, targetRole)
		if err == nil {
			e.Done(types.SourceAI)
			return result
		}
		e.FellBack(err)
	}

	result := heuristics.AnalyzeGaps(current, required, targetRole)
	e.Done(types.SourceFallback)
	return &result
}

func (e *Engine) analyzeWithModel(ctx context.Context, current, required []string, targetRole string) (*types.GapResult, error) {
	prompt, err := prompts.Render(prompts.KeyAnalyzeSkillGaps, map[string]string{
		"TargetRole":     targetRole,
		"CurrentSkills":  joinOrNone(current),
		"RequiredSkills": strings.Join(required, ", "),
	})
	if err != nil {
		return nil, err
	}

	obj, err := parsing.CompleteObject(ctx, e.Client, prompt, e.Tier)
	if err != nil {
		return nil, err
	}
	if !parsing.HasAny(obj, gapFields...) {
		return nil, &parsing.ShapeError{Expected: "gap analysis object", Got: "object without gap fields"}
	}
	return gapFromJSON(obj), nil
}

// gapFromJSON extracts a GapResult. Priority entries absent from the
// missing list are appended to it so the buckets stay a subset.
func gapFromJSON(obj gjson.Result) *types.GapResult {
	missing := types.DedupeSkills(parsing.Strings(obj, "missing_skills"))
	short := engine.Head(types.DedupeSkills(parsing.Strings(obj, "priority_skills_short_term")), heuristics.MaxPriorityBucket)
	long := engine.Head(types.DedupeSkills(parsing.Strings(obj, "priority_skills_long_term")), heuristics.MaxPriorityBucket)

	known := types.NewSkillSet(missing)
	for _, bucket := range [][]string{short, long} {
		for _, s := range bucket {
			if !known.Has(s) {
				known.Add(s)
				missing = append(missing, s)
			}
		}
	}

	score, _ := parsing.Float(obj, "gap_score")

	return &types.GapResult{
		MissingSkills:     missing,
		PriorityShortTerm: short,
		PriorityLongTerm:  long,
		GapScore:          engine.Unit(score),
		Recommendations:   parsing.Text(obj, "recommendations"),
		Source:            types.SourceAI,
	}
}

func joinOrNone(skills []string) string {
	if len(skills) == 0 {
		return "None"
	}
	return strings.Join(skills, ", ")
}
