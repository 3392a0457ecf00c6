package skills

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resume = "Backend engineer. Python, PostgreSQL and Docker in production; REST API design; strong communication."

func TestFromResume_ModelPath(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Text: "```json\n[\"golang\", \"Go\", \"k8s\", \"python\", \"\", 4]\n```"})

	got := NewExtractor(mock).FromResume(context.Background(), resume)

	assert.Equal(t, types.SourceAI, got.Source)
	assert.Equal(t, []string{"Go", "Kubernetes", "Python"}, got.Skills)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, llm.TierLite, calls[0].Tier)
	assert.Contains(t, calls[0].Prompt, "Resume text:\n"+resume)
}

func TestFromCurriculum_UsesCurriculumPrompt(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Text: `["Data Structures", "Algorithms"]`})

	got := NewExtractor(mock).FromCurriculum(context.Background(), "Unit 1: Data Structures")

	assert.Equal(t, []string{"Data Structures", "Algorithms"}, got.Skills)
	assert.Contains(t, mock.Calls()[0].Prompt, "Curriculum text:\nUnit 1: Data Structures")
}

func TestFromResume_EmptyModelListIsKept(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Text: `[]`})
	got := NewExtractor(mock).FromResume(context.Background(), resume)
	assert.Equal(t, types.SourceAI, got.Source)
	assert.Empty(t, got.Skills)
}

func TestFromResume_Fallback(t *testing.T) {
	want := []string{"Python", "REST API", "PostgreSQL", "Docker", "Communication"}

	for name, resp := range map[string]llm.MockResponse{
		"object instead of array": {Text: `{"skills": ["Python"]}`},
		"prose":                   {Text: "The candidate knows Python."},
		"auth failure":            {Err: &llm.ErrAuthentication{Err: errors.New("bad key")}},
	} {
		t.Run(name, func(t *testing.T) {
			got := NewExtractor(llm.NewMockClient(resp)).FromResume(context.Background(), resume)
			assert.Equal(t, types.SourceFallback, got.Source)
			assert.Equal(t, want, got.Skills)
		})
	}
}

func TestFromResume_RateLimitedExhaustionFallsBack(t *testing.T) {
	mock := llm.NewMockClient(
		llm.MockResponse{Err: &llm.ErrRateLimited{}},
		llm.MockResponse{Err: &llm.ErrRateLimited{}},
		llm.MockResponse{Err: &llm.ErrRateLimited{}},
	)
	client := llm.WithRetry(mock, llm.RetryConfig{MaxAttempts: 3, BaseDelay: time.Nanosecond}, nil)

	got := NewExtractor(client).FromResume(context.Background(), resume)
	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, types.SourceFallback, got.Source)
	assert.Contains(t, got.Skills, "Docker")
}

func TestExtractor_Offline(t *testing.T) {
	got := NewExtractor(nil).FromCurriculum(context.Background(), "Topics: SQL, Linux and Git.")
	assert.Equal(t, types.SourceFallback, got.Source)
	assert.Equal(t, []string{"SQL", "Linux", "Git"}, got.Skills)
}
