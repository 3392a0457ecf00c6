package server

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/skill-intel/internal/db"
	"github.com/jonathan/skill-intel/internal/trends"
	"github.com/jonathan/skill-intel/internal/types"
)

// trendGrowthLimit caps the default skill set of the growth chart
const trendGrowthLimit = 10

type heatmapEntry struct {
	Skill         string              `json:"skill"`
	Domain        string              `json:"domain"`
	CurrentDemand float64             `json:"current_demand"`
	FutureDemand  float64             `json:"future_demand"`
	TrendStatus   types.TrendCategory `json:"trend_status"`
	Category      string              `json:"category"`
}

type trendGrowthEntry struct {
	Skill          string              `json:"skill"`
	TrendData      []types.TrendPoint  `json:"trend_data"`
	GrowthRate     float64             `json:"growth_rate"`
	Classification types.TrendCategory `json:"classification"`
}

type employabilityResponse struct {
	ReadinessScore      float64 `json:"readiness_score"`
	DomainCoverage      float64 `json:"domain_coverage"`
	TotalSkillsRequired int     `json:"total_skills_required"`
	SkillsCovered       int     `json:"skills_covered"`
	PriorityGaps        int     `json:"priority_gaps"`
}

type institutionResponse struct {
	PlacementReadiness    float64 `json:"placement_readiness"`
	IndustryCollaboration float64 `json:"industry_collaboration"`
	Accreditation         float64 `json:"accreditation"`
	TotalCurricula        int     `json:"total_curricula"`
	Message               string  `json:"message,omitempty"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// handleSkillHeatmap returns demand figures of the catalogue for visualization
func (s *Server) handleSkillHeatmap(w http.ResponseWriter, r *http.Request) {
	skills, err := s.store.ListAllSkills(r.Context(), r.URL.Query().Get("domain"))
	if err != nil {
		s.fail(w, err)
		return
	}
	entries := make([]heatmapEntry, len(skills))
	for i, sk := range skills {
		entries[i] = heatmapEntry{
			Skill:         sk.Name,
			Domain:        sk.Domain,
			CurrentDemand: sk.CurrentDemandScore,
			FutureDemand:  sk.FutureDemandScore,
			TrendStatus:   sk.TrendStatus,
			Category:      sk.Category,
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": entries})
}

// handleTrendGrowth charts growth of the named skills (comma-separated), or of
// the top emerging and high-growth skills. Series are derived from stored demand.
func (s *Server) handleTrendGrowth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var names []string
	if raw := r.URL.Query().Get("skill_names"); raw != "" {
		for _, n := range strings.Split(raw, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	} else {
		top, err := s.store.ListSkills(ctx, db.SkillFilters{
			TrendStatuses: []types.TrendCategory{types.TrendEmerging, types.TrendHighGrowth},
			Limit:         trendGrowthLimit,
		})
		if err != nil {
			s.fail(w, err)
			return
		}
		names = db.SkillNames(top)
	}

	year := time.Now().Year()
	results := []trendGrowthEntry{}
	for _, name := range names {
		sk, err := s.store.GetSkillByName(ctx, name)
		if err != nil {
			s.fail(w, err)
			return
		}
		if sk == nil {
			continue
		}
		status := sk.TrendStatus
		if status == "" {
			status = types.TrendSaturated
		}
		results = append(results, trendGrowthEntry{
			Skill:          sk.Name,
			TrendData:      trends.SyntheticSeries(sk.CurrentDemandScore, sk.FutureDemandScore, year),
			GrowthRate:     round2(trends.ImpliedGrowth(sk.CurrentDemandScore, sk.FutureDemandScore)),
			Classification: status,
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"trends": results})
}

// handleEmployabilityReadiness scores the profile from its recorded gaps
func (s *Server) handleEmployabilityReadiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := s.store.GetProfile(ctx, s.cfg.Owner)
	if err != nil {
		s.fail(w, err)
		return
	}
	if profile == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{"readiness_score": 0.0, "message": "Please upload a resume first"})
		return
	}

	gaps, err := s.store.ListSkillGaps(ctx, profile.ID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if len(gaps) == 0 {
		s.jsonResponse(w, http.StatusOK, map[string]any{"readiness_score": 0.0, "message": "Please run skill gap analysis first"})
		return
	}

	var total float64
	priority := 0
	for _, g := range gaps {
		total += g.GapScore
		if g.Priority == db.PriorityHigh {
			priority++
		}
	}
	resp := employabilityResponse{
		ReadinessScore: round2((1 - total/float64(len(gaps))) * 100),
		PriorityGaps:   priority,
	}

	if profile.Domain != "" {
		domainSkills, err := s.store.ListAllSkills(ctx, profile.Domain)
		if err != nil {
			s.fail(w, err)
			return
		}
		have := types.NewSkillSet(profile.CurrentSkills)
		for _, sk := range domainSkills {
			if have.Has(sk.Name) {
				resp.SkillsCovered++
			}
		}
		resp.TotalSkillsRequired = len(domainSkills)
		if resp.TotalSkillsRequired > 0 {
			resp.DomainCoverage = round2(float64(resp.SkillsCovered) / float64(resp.TotalSkillsRequired) * 100)
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleInstitutionReadiness averages readiness over the owner's curricula.
// Curricula without an analysis count as zero.
func (s *Server) handleInstitutionReadiness(w http.ResponseWriter, r *http.Request) {
	curricula, err := s.store.ListCurricula(r.Context(), s.cfg.Owner)
	if err != nil {
		s.fail(w, err)
		return
	}
	if len(curricula) == 0 {
		s.jsonResponse(w, http.StatusOK, institutionResponse{Message: "Please upload curricula first"})
		return
	}

	var sum types.ReadinessScores
	for _, c := range curricula {
		if c.Recommendations == nil {
			continue
		}
		sum.Placements += c.Recommendations.ReadinessScores.Placements
		sum.IndustryCollaboration += c.Recommendations.ReadinessScores.IndustryCollaboration
		sum.Accreditation += c.Recommendations.ReadinessScores.Accreditation
	}
	n := float64(len(curricula))
	s.jsonResponse(w, http.StatusOK, institutionResponse{
		PlacementReadiness:    round2(sum.Placements / n * 100),
		IndustryCollaboration: round2(sum.IndustryCollaboration / n * 100),
		Accreditation:         round2(sum.Accreditation / n * 100),
		TotalCurricula:        len(curricula),
	})
}
