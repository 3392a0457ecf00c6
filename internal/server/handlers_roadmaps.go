package server

import (
	"net/http"

	"github.com/jonathan/skill-intel/internal/db"
	"github.com/jonathan/skill-intel/internal/types"
)

// handleGenerateRoadmap plans a roadmap from the profile's skills and stores it.
// Skills in the request take precedence over the stored profile.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.RoadmapRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	current := req.CurrentSkills
	if len(current) == 0 {
		profile, err := s.store.GetProfile(r.Context(), s.cfg.Owner)
		if err != nil {
			s.fail(w, err)
			return
		}
		if profile != nil {
			current = profile.CurrentSkills
		}
	}

	plan := s.intel.GenerateRoadmap(r.Context(), current, req.TargetRole, req.TimelineMonths, req.Domain)
	roadmap, err := s.store.CreateRoadmap(r.Context(), db.RoadmapInput{
		Owner:                s.cfg.Owner,
		TargetRole:           req.TargetRole,
		TargetTimelineMonths: req.TimelineMonths,
		Plan:                 *plan,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmap)
}

// handleListRoadmaps lists the owner's roadmaps
func (s *Server) handleListRoadmaps(w http.ResponseWriter, r *http.Request) {
	roadmaps, err := s.store.ListRoadmaps(r.Context(), s.cfg.Owner)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmaps)
}

// handleGetRoadmap retrieves one roadmap
func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	roadmap, err := s.store.GetRoadmap(r.Context(), s.cfg.Owner, id)
	if err != nil {
		s.fail(w, err)
		return
	}
	if roadmap == nil {
		s.fail(w, &ErrNotFound{Resource: "roadmap", ID: id.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmap)
}
