package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jonathan/skill-intel/internal/db"
	"github.com/jonathan/skill-intel/internal/ingestion"
	"github.com/jonathan/skill-intel/internal/trends"
	"github.com/jonathan/skill-intel/internal/types"
)

// requiredSkillLimit caps the catalogue fallback of a gap analysis
const requiredSkillLimit = 20

// defaultTargetRole is used when a profile names no role
const defaultTargetRole = "Professional"

// profileResponse is a stored profile with the path that extracted its skills
type profileResponse struct {
	*db.Profile
	Source types.ResultSource `json:"source"`
}

// gapAnalysisResponse is the outcome of analyzing the stored profile
type gapAnalysisResponse struct {
	ProfileID         uuid.UUID          `json:"profile_id"`
	OverallGapScore   float64            `json:"overall_gap_score"`
	SkillGaps         []db.SkillGap      `json:"skill_gaps"`
	MissingSkills     []string           `json:"missing_skills"`
	PriorityShortTerm []string           `json:"priority_skills_short_term"`
	PriorityLongTerm  []string           `json:"priority_skills_long_term"`
	Recommendations   string             `json:"recommendations,omitempty"`
	Source            types.ResultSource `json:"source,omitempty"`
}

// skillForecastResponse is the detailed forecast of a catalogue skill
type skillForecastResponse struct {
	Skill             string              `json:"skill"`
	CurrentDemand     float64             `json:"current_demand"`
	FutureDemand      float64             `json:"future_demand"`
	TrendStatus       types.TrendCategory `json:"trend_status"`
	Forecast6M        *float64            `json:"forecast_6m"`
	Forecast1Y        *float64            `json:"forecast_1y"`
	Forecast3Y        *float64            `json:"forecast_3y"`
	GoogleTrendsScore float64             `json:"google_trends_score"`
	GrowthRate        float64             `json:"growth_rate"`
	TrendData         []types.TrendPoint  `json:"trend_data"`
}

// demandForecastResponse answers an ad-hoc forecast request
type demandForecastResponse struct {
	TrendStatus types.TrendCategory `json:"trend_status"`
	types.ForecastTriple
}

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.HasPrefix(mediaType, "multipart/")
}

// uploadedText returns the extracted text of the "file" part, or the value of
// textField when no file was sent. The multipart form must be parsed.
func uploadedText(r *http.Request, textField string) (string, error) {
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return r.FormValue(textField), nil
	}
	if err != nil {
		return "", &ErrValidation{Field: "file", Message: err.Error()}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	doc, err := ingestion.Extract(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

// readProfileRequest accepts a multipart resume upload or a JSON body.
func readProfileRequest(r *http.Request) (*types.ProfileRequest, error) {
	req := &types.ProfileRequest{}
	if !isMultipart(r) {
		return req, decodeJSON(r, req)
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, &ErrValidation{Message: "invalid multipart form: " + err.Error()}
	}
	text, err := uploadedText(r, "resume_text")
	if err != nil {
		return nil, err
	}
	req.ResumeText = text
	req.Domain = r.FormValue("domain")
	req.TargetRole = r.FormValue("target_role")
	req.ExperienceLevel = r.FormValue("experience_level")
	if err := req.Validate(); err != nil {
		return nil, validationFromValidator(err)
	}
	return req, nil
}

// handleUploadResume extracts skills from a resume and stores them as the profile
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	req, err := readProfileRequest(r)
	if err != nil {
		s.fail(w, err)
		return
	}

	extracted := s.intel.ExtractSkills(r.Context(), req.ResumeText)
	profile, err := s.store.UpsertProfile(r.Context(), db.ProfileInput{
		Owner:           s.cfg.Owner,
		ResumeText:      req.ResumeText,
		Domain:          req.Domain,
		TargetRole:      req.TargetRole,
		ExperienceLevel: req.ExperienceLevel,
		CurrentSkills:   extracted.Skills,
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, profileResponse{Profile: profile, Source: extracted.Source})
}

// requiredSkills picks the catalogue entries a profile is measured against:
// the domain's skills, else emerging and high-growth skills, else any skills.
func (s *Server) requiredSkills(ctx context.Context, domain string) ([]db.Skill, error) {
	if domain != "" {
		skills, err := s.store.ListAllSkills(ctx, domain)
		if err != nil || len(skills) > 0 {
			return skills, err
		}
	}
	skills, err := s.store.ListSkills(ctx, db.SkillFilters{
		TrendStatuses: []types.TrendCategory{types.TrendEmerging, types.TrendHighGrowth},
		Limit:         requiredSkillLimit,
	})
	if err != nil || len(skills) > 0 {
		return skills, err
	}
	return s.store.ListSkills(ctx, db.SkillFilters{Limit: requiredSkillLimit})
}

// handleAnalyzeGaps compares the stored profile with the catalogue and records the gaps
func (s *Server) handleAnalyzeGaps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := s.store.GetProfile(ctx, s.cfg.Owner)
	if err != nil {
		s.fail(w, err)
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found. Please upload a resume first.")
		return
	}

	catalogue, err := s.requiredSkills(ctx, profile.Domain)
	if err != nil {
		s.fail(w, err)
		return
	}
	if len(catalogue) == 0 {
		s.jsonResponse(w, http.StatusOK, gapAnalysisResponse{
			ProfileID:         profile.ID,
			SkillGaps:         []db.SkillGap{},
			MissingSkills:     []string{},
			PriorityShortTerm: []string{},
			PriorityLongTerm:  []string{},
		})
		return
	}

	role := profile.TargetRole
	if role == "" {
		role = defaultTargetRole
	}
	result := s.intel.AnalyzeGaps(ctx, profile.CurrentSkills, db.SkillNames(catalogue), role)

	gaps, err := s.resolveGaps(ctx, catalogue, result)
	if err != nil {
		s.fail(w, err)
		return
	}
	inputs := make([]db.SkillGapInput, len(gaps))
	for i, g := range gaps {
		inputs[i] = db.SkillGapInput{SkillID: g.SkillID, GapScore: g.GapScore, Priority: g.Priority, Timeframe: g.Timeframe}
	}
	if err := s.store.ReplaceSkillGaps(ctx, profile.ID, inputs); err != nil {
		s.fail(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, gapAnalysisResponse{
		ProfileID:         profile.ID,
		OverallGapScore:   result.GapScore,
		SkillGaps:         gaps,
		MissingSkills:     result.MissingSkills,
		PriorityShortTerm: result.PriorityShortTerm,
		PriorityLongTerm:  result.PriorityLongTerm,
		Recommendations:   result.Recommendations,
		Source:            result.Source,
	})
}

// resolveGaps maps missing skill names to catalogue entries. Names with no
// catalogue entry are not recorded. Each missing skill is a full gap.
func (s *Server) resolveGaps(ctx context.Context, catalogue []db.Skill, result *types.GapResult) ([]db.SkillGap, error) {
	byName := make(map[string]db.Skill, len(catalogue))
	for _, sk := range catalogue {
		byName[strings.ToLower(sk.Name)] = sk
	}
	shortTerm := types.NewSkillSet(result.PriorityShortTerm)

	gaps := []db.SkillGap{}
	seen := make(map[uuid.UUID]bool)
	for _, name := range result.MissingSkills {
		sk, ok := byName[strings.ToLower(name)]
		if !ok {
			found, err := s.store.GetSkillByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if found == nil {
				continue
			}
			sk = *found
		}
		if seen[sk.ID] {
			continue
		}
		seen[sk.ID] = true

		priority, timeframe := db.PriorityMedium, db.TimeframeLongTerm
		if shortTerm.Has(name) {
			priority, timeframe = db.PriorityHigh, db.TimeframeShortTerm
		}
		gaps = append(gaps, db.SkillGap{
			SkillID:            sk.ID,
			SkillName:          sk.Name,
			GapScore:           1.0,
			Priority:           priority,
			Timeframe:          timeframe,
			CurrentDemandScore: sk.CurrentDemandScore,
			FutureDemandScore:  sk.FutureDemandScore,
		})
	}
	return gaps, nil
}

// handleTrendingSkills lists catalogue skills by future demand
func (s *Server) handleTrendingSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.store.ListSkills(r.Context(), db.SkillFilters{
		Domain: r.URL.Query().Get("domain"),
		Limit:  parseQueryInt(r, "limit", db.DefaultSkillLimit, 100),
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, skills)
}

// handleSkillForecast returns the stored forecast of one skill with its interest series
func (s *Server) handleSkillForecast(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	skill, err := s.store.GetSkillByName(r.Context(), name)
	if err != nil {
		s.fail(w, err)
		return
	}
	if skill == nil {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}

	var growth float64
	var series []types.TrendPoint
	if s.analyzer != nil {
		trend := s.analyzer.Analyze(r.Context(), skill.Name)
		growth, series = trend.GrowthRate, trend.TrendData
	} else {
		growth = trends.ImpliedGrowth(skill.CurrentDemandScore, skill.FutureDemandScore)
		series = trends.SyntheticSeries(skill.CurrentDemandScore, skill.FutureDemandScore, time.Now().Year())
	}
	if series == nil {
		series = []types.TrendPoint{}
	}

	s.jsonResponse(w, http.StatusOK, skillForecastResponse{
		Skill:             skill.Name,
		CurrentDemand:     skill.CurrentDemandScore,
		FutureDemand:      skill.FutureDemandScore,
		TrendStatus:       skill.TrendStatus,
		Forecast6M:        skill.Forecast6M,
		Forecast1Y:        skill.Forecast1Y,
		Forecast3Y:        skill.Forecast3Y,
		GoogleTrendsScore: skill.GoogleTrendsScore,
		GrowthRate:        growth,
		TrendData:         series,
	})
}

// handleClassifyTrend classifies a measurement
func (s *Server) handleClassifyTrend(w http.ResponseWriter, r *http.Request) {
	var m types.TrendMeasurement
	if err := decodeJSON(r, &m); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"trend_status": s.intel.ClassifyTrend(m),
	})
}

// handleForecastDemand projects demand from a current score and growth rate
func (s *Server) handleForecastDemand(w http.ResponseWriter, r *http.Request) {
	var req types.ForecastRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, demandForecastResponse{
		TrendStatus:    s.intel.ClassifyTrend(types.TrendMeasurement{AverageInterest: req.CurrentDemand, GrowthRate: req.GrowthRate}),
		ForecastTriple: s.intel.ForecastDemand(req.CurrentDemand, req.GrowthRate),
	})
}
