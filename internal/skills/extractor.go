// Package skills extracts skill names from resume and curriculum text.
package skills

import (
	"context"

	"github.com/jonathan/skill-intel/internal/engine"
	"github.com/jonathan/skill-intel/internal/heuristics"
	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/parsing"
	"github.com/jonathan/skill-intel/internal/prompts"
	"github.com/jonathan/skill-intel/internal/types"
)

// Extractor turns free text into a normalized, de-duplicated skill list.
type Extractor struct {
	engine.Base
}

// NewExtractor creates an Extractor. client may be nil for keyword-only use.
func NewExtractor(client llm.Client, opts ...engine.Option) *Extractor {
	return &Extractor{Base: engine.NewBase("skills", client, llm.TierLite, opts...)}
}

// FromResume extracts technical and soft skills mentioned in a resume.
func (x *Extractor) FromResume(ctx context.Context, text string) *types.ExtractedSkills {
	return x.extract(ctx, prompts.KeyExtractResumeSkills, text)
}

// FromCurriculum extracts the skills a curriculum or syllabus teaches.
func (x *Extractor) FromCurriculum(ctx context.Context, text string) *types.ExtractedSkills {
	return x.extract(ctx, prompts.KeyExtractCurriculumSkills, text)
}

func (x *Extractor) extract(ctx context.Context, key, text string) *types.ExtractedSkills {
	if x.Online() {
		found, err := x.extractWithModel(ctx, key, text)
		if err == nil {
			x.Done(types.SourceAI)
			return &types.ExtractedSkills{Skills: found, Source: types.SourceAI}
		}
		x.FellBack(err)
	}

	x.Done(types.SourceFallback)
	return &types.ExtractedSkills{
		Skills: parsing.NormalizeSkills(heuristics.ExtractSkills(text)),
		Source: types.SourceFallback,
	}
}

func (x *Extractor) extractWithModel(ctx context.Context, key, text string) ([]string, error) {
	prompt, err := prompts.Render(key, map[string]string{"Text": text})
	if err != nil {
		return nil, err
	}
	arr, err := parsing.CompleteArray(ctx, x.Client, prompt, x.Tier)
	if err != nil {
		return nil, err
	}
	return parsing.NormalizeSkills(parsing.StringList(arr)), nil
}
