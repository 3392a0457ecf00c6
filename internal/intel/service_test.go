package intel

import (
	"context"
	"testing"

	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Offline(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()
	assert.False(t, svc.Online())

	extracted := svc.ExtractSkills(ctx, "Python and Docker")
	assert.Equal(t, []string{"Python", "Docker"}, extracted.Skills)

	gap := svc.AnalyzeGaps(ctx, extracted.Skills, []string{"Python", "Kubernetes"}, "DevOps Engineer")
	assert.Equal(t, []string{"Kubernetes"}, gap.MissingSkills)
	assert.Equal(t, 0.5, gap.GapScore)

	rec := svc.RecommendCurriculum(ctx, []string{"Python", "SQL"}, []string{"Python", "Docker", "Kubernetes"}, []string{"LLM Fine-tuning"})
	assert.Equal(t, 0.33, rec.AlignmentScore)

	plan := svc.GenerateRoadmap(ctx, []string{"Python"}, "Data Scientist", 6, "")
	require.NotEmpty(t, plan.Steps)
	assert.Equal(t, types.SourceFallback, plan.Source)

	assert.NoError(t, svc.Close())
}

func TestService_TrendOperations(t *testing.T) {
	svc := NewService(nil)

	assert.Equal(t, types.TrendEmerging, svc.ClassifyTrend(types.TrendMeasurement{AverageInterest: 49, GrowthRate: 31}))
	assert.Equal(t, types.TrendHighGrowth, svc.ClassifyTrend(types.TrendMeasurement{AverageInterest: 50, GrowthRate: 31}))
	assert.Equal(t, types.TrendHighGrowth, svc.ClassifyTrend(types.TrendMeasurement{AverageInterest: 99, GrowthRate: 16}))
	assert.Equal(t, types.TrendDeclining, svc.ClassifyTrend(types.TrendMeasurement{AverageInterest: 0, GrowthRate: -11}))
	assert.Equal(t, types.TrendSaturated, svc.ClassifyTrend(types.TrendMeasurement{}))

	assert.Equal(t, types.ForecastTriple{Forecast6M: 75, Forecast1Y: 100, Forecast3Y: 100}, svc.ForecastDemand(50, 100))
	assert.Equal(t, types.ForecastTriple{}, svc.ForecastDemand(50, -200))
}

func TestService_SharesClient(t *testing.T) {
	mock := llm.NewMockClient(
		llm.MockResponse{Text: `["Go"]`},
		llm.MockResponse{Text: `{"missing_skills": ["Rust"], "gap_score": 0.5}`},
	)
	svc := NewService(mock)
	ctx := context.Background()
	assert.True(t, svc.Online())

	assert.Equal(t, types.SourceAI, svc.ExtractSkills(ctx, "Go developer").Source)
	assert.Equal(t, types.SourceAI, svc.AnalyzeGaps(ctx, []string{"Go"}, []string{"Go", "Rust"}, "Systems").Source)

	// Queue is empty now, so the next call falls back
	assert.Equal(t, types.SourceFallback, svc.GenerateRoadmap(ctx, nil, "AI Engineer", 6, "").Source)
	assert.Equal(t, 3, mock.CallCount())
}
