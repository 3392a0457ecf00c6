// Package intel is the caller-facing surface of the skill intelligence engine.
package intel

import (
	"context"

	"github.com/jonathan/skill-intel/internal/curriculum"
	"github.com/jonathan/skill-intel/internal/engine"
	"github.com/jonathan/skill-intel/internal/gaps"
	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/roadmap"
	"github.com/jonathan/skill-intel/internal/skills"
	"github.com/jonathan/skill-intel/internal/trends"
	"github.com/jonathan/skill-intel/internal/types"
)

// Service wires the engines around one shared model client. It holds no
// request state and is safe for concurrent use.
type Service struct {
	client     llm.Client
	extractor  *skills.Extractor
	gaps       *gaps.Engine
	curriculum *curriculum.Engine
	roadmap    *roadmap.Generator
}

// NewService creates a Service. A nil client runs every engine on its fallback.
func NewService(client llm.Client, opts ...engine.Option) *Service {
	return &Service{
		client:     client,
		extractor:  skills.NewExtractor(client, opts...),
		gaps:       gaps.NewEngine(client, opts...),
		curriculum: curriculum.NewEngine(client, opts...),
		roadmap:    roadmap.NewGenerator(client, opts...),
	}
}

// Online reports whether a model client is configured.
func (s *Service) Online() bool {
	return s.client != nil
}

// ExtractSkills extracts skills from resume text.
func (s *Service) ExtractSkills(ctx context.Context, text string) *types.ExtractedSkills {
	return s.extractor.FromResume(ctx, text)
}

// ExtractCurriculumSkills extracts the skills a curriculum teaches.
func (s *Service) ExtractCurriculumSkills(ctx context.Context, text string) *types.ExtractedSkills {
	return s.extractor.FromCurriculum(ctx, text)
}

// AnalyzeGaps compares current with required skills for a role.
func (s *Service) AnalyzeGaps(ctx context.Context, current, required []string, targetRole string) *types.GapResult {
	return s.gaps.Analyze(ctx, current, required, targetRole)
}

// RecommendCurriculum recommends curriculum changes.
func (s *Service) RecommendCurriculum(ctx context.Context, curriculumSkills, industry, future []string) *types.CurriculumRecommendation {
	return s.curriculum.Recommend(ctx, curriculumSkills, industry, future)
}

// GenerateRoadmap plans a learning roadmap.
func (s *Service) GenerateRoadmap(ctx context.Context, current []string, targetRole string, timelineMonths int, domain string) *types.RoadmapPlan {
	return s.roadmap.Generate(ctx, current, targetRole, timelineMonths, domain)
}

// ClassifyTrend classifies a trend measurement.
func (s *Service) ClassifyTrend(m types.TrendMeasurement) types.TrendCategory {
	return trends.ClassifyMeasurement(m)
}

// ForecastDemand projects demand at three horizons.
func (s *Service) ForecastDemand(currentDemand, growthRate float64) types.ForecastTriple {
	return trends.Forecast(currentDemand, growthRate)
}

// Close releases the model client.
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
