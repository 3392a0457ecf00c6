// Package roadmap implements the learning roadmap generator.
package roadmap

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/skill-intel/internal/engine"
	"github.com/jonathan/skill-intel/internal/heuristics"
	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/parsing"
	"github.com/jonathan/skill-intel/internal/prompts"
	"github.com/jonathan/skill-intel/internal/types"
	"github.com/tidwall/gjson"
)

// Generator produces learning roadmaps.
type Generator struct {
	engine.Base
}

// NewGenerator creates a roadmap generator. client may be nil for
// fallback-only use.
func NewGenerator(client llm.Client, opts ...engine.Option) *Generator {
	return &Generator{Base: engine.NewBase("roadmap", client, llm.TierAdvanced, opts...)}
}

// Generate plans the path from current skills to targetRole within
// timelineMonths. domain is optional. It always returns a plan.
func (g *Generator) Generate(ctx context.Context, current []string, targetRole string, timelineMonths int, domain string) *types.RoadmapPlan {
	if g.Online() {
		plan, err := g.generateWithModel(ctx, current, targetRole, timelineMonths, domain)
		if err == nil {
			g.Done(types.SourceAI)
			return plan
		}
		g.FellBack(err)
	}

	plan := heuristics.GenerateRoadmap(current, targetRole, timelineMonths, domain)
	g.Done(types.SourceFallback)
	return &plan
}

func (g *Generator) generateWithModel(ctx context.Context, current []string, targetRole string, timelineMonths int, domain string) (*types.RoadmapPlan, error) {
	domainClause := ""
	if domain != "" {
		domainClause = " in the " + domain + " domain"
	}
	currentList := "None"
	if len(current) > 0 {
		currentList = strings.Join(current, ", ")
	}

	prompt, err := prompts.Render(prompts.KeyGenerateRoadmap, map[string]string{
		"TargetRole":     targetRole,
		"DomainClause":   domainClause,
		"CurrentSkills":  currentList,
		"TimelineMonths": strconv.Itoa(timelineMonths),
	})
	if err != nil {
		return nil, err
	}

	obj, err := parsing.CompleteObject(ctx, g.Client, prompt, g.Tier)
	if err != nil {
		return nil, err
	}

	plan := planFromJSON(obj, targetRole)
	if len(plan.Steps) == 0 {
		return nil, &parsing.ShapeError{Expected: "roadmap with steps", Got: "no usable steps"}
	}
	return plan, nil
}

// planFromJSON extracts a plan. Step numbering from the model is kept as
// given; a missing number takes the step's position. Steps without a skill
// are dropped and weeks are at least 1.
func planFromJSON(obj gjson.Result, targetRole string) *types.RoadmapPlan {
	steps := []types.RoadmapStep{}
	obj.Get("steps").ForEach(func(_, raw gjson.Result) bool {
		if !raw.IsObject() {
			return true
		}
		skill := parsing.Text(raw, "skill")
		if skill == "" {
			return true
		}

		number, ok := parsing.Int(raw, "step_number")
		if !ok || number <= 0 {
			number = len(steps) + 1
		}
		weeks, _ := parsing.Int(raw, "estimated_time_weeks")

		steps = append(steps, types.RoadmapStep{
			StepNumber:              number,
			Skill:                   skill,
			Prerequisites:           parsing.Strings(raw, "prerequisites"),
			EstimatedTimeWeeks:      max(1, weeks),
			SuggestedCourses:        parsing.Strings(raw, "suggested_courses"),
			SuggestedCertifications: parsing.Strings(raw, "suggested_certifications"),
			MiniProjects:            parsing.Strings(raw, "mini_projects"),
			Description:             parsing.Text(raw, "description"),
		})
		return true
	})

	total, ok := parsing.Int(obj, "total_estimated_weeks")
	if !ok || total <= 0 {
		total = 0
		for _, s := range steps {
			total += s.EstimatedTimeWeeks
		}
	}

	title := parsing.Text(obj, "title")
	if title == "" {
		title = "Roadmap to become " + targetRole
	}

	return &types.RoadmapPlan{
		Title:               title,
		Steps:               steps,
		TotalEstimatedWeeks: total,
		CapstoneIdeas:       parsing.Strings(obj, "capstone_ideas"),
		Source:              types.SourceAI,
	}
}
