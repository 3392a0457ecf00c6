package curriculum

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonathan/skill-intel/internal/heuristics"
	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	taught   = []string{"Python", "SQL"}
	industry = []string{"Python", "Docker", "Kubernetes"}
	future   = []string{"LLM Fine-tuning"}
)

func TestRecommend_ModelPath(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Text: `{
		"skills_to_add": ["Docker", "docker", "Kubernetes"],
		"skills_to_remove": ["COBOL"],
		"skills_to_reduce_focus": ["SQL"],
		"lab_suggestions": ["Container lab"],
		"project_suggestions": ["Deploy a model"],
		"alignment_score": 0.7,
		"readiness_scores": {"placements": 0.65, "industry_collaboration": 1.4, "accreditation": -1},
		"detailed_recommendations": "Add container skills."
	}`})

	got := NewEngine(mock).Recommend(context.Background(), taught, industry, future)

	assert.Equal(t, types.SourceAI, got.Source)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, got.SkillsToAdd)
	assert.Equal(t, []string{"COBOL"}, got.SkillsToRemove)
	assert.Equal(t, []string{"SQL"}, got.SkillsToReduceFocus)
	assert.Equal(t, 0.7, got.AlignmentScore)
	assert.Equal(t, types.ReadinessScores{Placements: 0.65, IndustryCollaboration: 1, Accreditation: 0}, got.ReadinessScores)
	assert.Equal(t, "Add container skills.", got.DetailedRecommendations)

	prompt := mock.Calls()[0].Prompt
	assert.Contains(t, prompt, "Current curriculum skills: Python, SQL")
	assert.Contains(t, prompt, "Industry-required skills: Python, Docker, Kubernetes")
	assert.Contains(t, prompt, "Future-emerging skills: LLM Fine-tuning")
}

func TestRecommend_MissingFieldsDefault(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Text: `{"skills_to_add": ["Rust"]}`})

	got := NewEngine(mock).Recommend(context.Background(), taught, industry, future)

	assert.Equal(t, types.SourceAI, got.Source)
	assert.Equal(t, []string{"Rust"}, got.SkillsToAdd)
	assert.NotNil(t, got.SkillsToRemove)
	assert.NotNil(t, got.LabSuggestions)
	assert.Equal(t, types.ReadinessScores{}, got.ReadinessScores)
	assert.Equal(t, 0.0, got.AlignmentScore)
}

func TestRecommend_Fallback(t *testing.T) {
	want := heuristics.RecommendCurriculum(taught, industry, future)

	for name, resp := range map[string]llm.MockResponse{
		"prose":       {Text: "Add Docker to the syllabus."},
		"wrong shape": {Text: `{"foo": 1}`},
		"unknown":     {Err: &llm.ErrUnknown{Err: errors.New("boom")}},
	} {
		t.Run(name, func(t *testing.T) {
			got := NewEngine(llm.NewMockClient(resp)).Recommend(context.Background(), taught, industry, future)
			require.NotNil(t, got)
			assert.Equal(t, want, *got)
			assert.Equal(t, 0.33, got.AlignmentScore)
		})
	}
}

func TestRecommend_RateLimitedExhaustionFallsBack(t *testing.T) {
	mock := llm.NewMockClient(
		llm.MockResponse{Err: &llm.ErrRateLimited{}},
		llm.MockResponse{Err: &llm.ErrRateLimited{}},
		llm.MockResponse{Err: &llm.ErrRateLimited{}},
	)
	client := llm.WithRetry(mock, llm.RetryConfig{MaxAttempts: 3, BaseDelay: time.Nanosecond}, nil)

	got := NewEngine(client).Recommend(context.Background(), taught, industry, future)
	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, types.SourceFallback, got.Source)
	assert.Equal(t, []string{"Docker", "Kubernetes", "LLM Fine-tuning"}, got.SkillsToAdd)
}

func TestRecommend_Offline(t *testing.T) {
	got := NewEngine(nil).Recommend(context.Background(), taught, industry, future)
	assert.Equal(t, types.SourceFallback, got.Source)
	assert.Equal(t, []string{"SQL"}, got.SkillsToReduceFocus)
}
