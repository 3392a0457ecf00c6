package server

import (
	"context"
	"net/http"

	"github.com/jonathan/skill-intel/internal/db"
	"github.com/jonathan/skill-intel/internal/types"
)

// Market context limits of a curriculum analysis
const (
	industrySkillLimit = 30
	futureSkillLimit   = 20
)

// readCurriculumRequest accepts a multipart syllabus upload or a JSON body.
func readCurriculumRequest(r *http.Request) (*types.CurriculumUploadRequest, error) {
	req := &types.CurriculumUploadRequest{}
	if !isMultipart(r) {
		return req, decodeJSON(r, req)
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, &ErrValidation{Message: "invalid multipart form: " + err.Error()}
	}
	text, err := uploadedText(r, "curriculum_text")
	if err != nil {
		return nil, err
	}
	req.Name = r.FormValue("name")
	req.Program = r.FormValue("program")
	req.Text = text
	if req.Text == "" {
		return nil, &ErrValidation{Message: "Either file or curriculum_text must be provided"}
	}
	if err := req.Validate(); err != nil {
		return nil, validationFromValidator(err)
	}
	return req, nil
}

// marketSkills returns the industry and future skill names a curriculum is compared with.
func (s *Server) marketSkills(ctx context.Context) (industry, future []string, err error) {
	ind, err := s.store.ListSkills(ctx, db.SkillFilters{
		TrendStatuses: []types.TrendCategory{types.TrendHighGrowth, types.TrendSaturated},
		Limit:         industrySkillLimit,
	})
	if err != nil {
		return nil, nil, err
	}
	fut, err := s.store.ListSkills(ctx, db.SkillFilters{
		TrendStatuses: []types.TrendCategory{types.TrendEmerging, types.TrendHighGrowth},
		Limit:         futureSkillLimit,
	})
	if err != nil {
		return nil, nil, err
	}
	return db.SkillNames(ind), db.SkillNames(fut), nil
}

// handleUploadCurriculum extracts a curriculum's skills, analyzes it and stores it
func (s *Server) handleUploadCurriculum(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	req, err := readCurriculumRequest(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	ctx := r.Context()
	extracted := s.intel.ExtractCurriculumSkills(ctx, req.Text)
	industry, future, err := s.marketSkills(ctx)
	if err != nil {
		s.fail(w, err)
		return
	}
	rec := s.intel.RecommendCurriculum(ctx, extracted.Skills, industry, future)

	curriculum, err := s.store.CreateCurriculum(ctx, db.CurriculumInput{
		Owner:           s.cfg.Owner,
		Name:            req.Name,
		Program:         req.Program,
		Text:            req.Text,
		ExtractedSkills: extracted.Skills,
		Recommendations: rec,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, curriculum)
}

// handleListCurricula lists the owner's curricula
func (s *Server) handleListCurricula(w http.ResponseWriter, r *http.Request) {
	curricula, err := s.store.ListCurricula(r.Context(), s.cfg.Owner)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, curricula)
}

// handleGetCurriculum retrieves one curriculum
func (s *Server) handleGetCurriculum(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	curriculum, err := s.store.GetCurriculum(r.Context(), s.cfg.Owner, id)
	if err != nil {
		s.fail(w, err)
		return
	}
	if curriculum == nil {
		s.fail(w, &ErrNotFound{Resource: "curriculum", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, curriculum)
}

// handleAnalyzeCurriculum re-runs the recommendation against the current catalogue
func (s *Server) handleAnalyzeCurriculum(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	ctx := r.Context()
	curriculum, err := s.store.GetCurriculum(ctx, s.cfg.Owner, id)
	if err != nil {
		s.fail(w, err)
		return
	}
	if curriculum == nil {
		s.fail(w, &ErrNotFound{Resource: "curriculum", ID: id.String()})
		return
	}

	industry, future, err := s.marketSkills(ctx)
	if err != nil {
		s.fail(w, err)
		return
	}
	rec := s.intel.RecommendCurriculum(ctx, curriculum.ExtractedSkills, industry, future)

	updated, err := s.store.UpdateCurriculumAnalysis(ctx, s.cfg.Owner, id, rec)
	if err != nil {
		s.fail(w, err)
		return
	}
	if updated == nil {
		s.fail(w, &ErrNotFound{Resource: "curriculum", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":              updated.ID,
		"alignment_score": updated.AlignmentScore,
		"recommendations": updated.Recommendations,
	})
}
