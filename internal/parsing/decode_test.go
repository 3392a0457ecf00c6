package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"fenced object", "```json\n{\"a\": 1}\n```", false},
		{"bare array", `["Go", "Rust"]`, false},
		{"empty", "   ", true},
		{"prose", "Sure! Here are the skills you asked for.", true},
		{"truncated", `{"missing_skills": ["Go"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			if tt.wantErr {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDecodeShapes(t *testing.T) {
	_, err := DecodeArray(`{"skills": ["Go"]}`)
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "array", shapeErr.Expected)
	assert.Equal(t, "object", shapeErr.Got)

	_, err = DecodeObject(`["Go"]`)
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "array", shapeErr.Got)

	_, err = DecodeObject(`"just a string"`)
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "string", shapeErr.Got)

	obj, err := DecodeObject("```\n{\"ok\": true}\n```")
	require.NoError(t, err)
	assert.True(t, obj.Get("ok").Bool())
}

func TestFieldExtraction_Defaults(t *testing.T) {
	obj, err := DecodeObject(`{
		"missing_skills": ["Docker", 7, "", " Kubernetes ", null],
		"gap_score": "0.4",
		"steps": 3,
		"title": "Roadmap",
		"recommendations": ["not", "a", "string"],
		"total_estimated_weeks": 24.9
	}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Docker", "Kubernetes"}, Strings(obj, "missing_skills"))
	assert.Equal(t, []string{}, Strings(obj, "absent"))
	assert.Equal(t, []string{}, Strings(obj, "steps"))

	_, ok := Float(obj, "gap_score")
	assert.False(t, ok, "numeric strings are not numbers")

	weeks, ok := Int(obj, "total_estimated_weeks")
	assert.True(t, ok)
	assert.Equal(t, 24, weeks)

	assert.Equal(t, "Roadmap", Text(obj, "title"))
	assert.Equal(t, "", Text(obj, "recommendations"))
	assert.Equal(t, "", Text(obj, "absent"))

	assert.True(t, HasAny(obj, "nope", "title"))
	assert.False(t, HasAny(obj, "nope", "also_nope"))
}

func TestStringList_RootArray(t *testing.T) {
	arr, err := DecodeArray(`["Python", {"name": "SQL"}, "Git"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Git"}, StringList(arr))
}

func TestCompleteArray(t *testing.T) {
	client := llm.NewMockClient(
		llm.MockResponse{Text: "```json\n[\"Go\"]\n```"},
		llm.MockResponse{Err: &llm.ErrUnknown{Err: errors.New("boom")}},
	)

	arr, err := CompleteArray(context.Background(), client, "extract", llm.TierLite)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, StringList(arr))

	_, err = CompleteArray(context.Background(), client, "extract", llm.TierLite)
	var unknown *llm.ErrUnknown
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, 2, client.CallCount())
}

func TestCompleteObject_ShapeMismatch(t *testing.T) {
	client := llm.NewMockClient(llm.MockResponse{Text: `["Go"]`})

	_, err := CompleteObject(context.Background(), client, "p", llm.TierStandard)
	var shapeErr *ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}
