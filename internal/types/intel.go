// Package types provides type definitions for structured data used throughout the skill intelligence system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResultSource records which path produced an engine result.
type ResultSource string

const (
	// SourceAI marks a result decoded from a model completion
	SourceAI ResultSource = "ai"
	// SourceFallback marks a result computed by the deterministic heuristics
	SourceFallback ResultSource = "fallback"
)

// GapResult is the outcome of comparing a person's skills with a target role.
// Every entry of the two priority buckets also appears in MissingSkills.
type GapResult struct {
	MissingSkills     []string     `json:"missing_skills"`
	PriorityShortTerm []string     `json:"priority_skills_short_term"`
	PriorityLongTerm  []string     `json:"priority_skills_long_term"`
	GapScore          float64      `json:"gap_score"` // 0.0 (nothing covered) to 1.0 (no gap)
	Recommendations   string       `json:"recommendations"`
	Source            ResultSource `json:"source"`
	Note              string       `json:"note,omitempty"`
}

// ReadinessScores rates an institution's preparedness, each in [0, 1].
type ReadinessScores struct {
	Placements            float64 `json:"placements"`
	IndustryCollaboration float64 `json:"industry_collaboration"`
	Accreditation         float64 `json:"accreditation"`
}

// CurriculumRecommendation describes how a curriculum should change to meet
// current industry and future demand.
type CurriculumRecommendation struct {
	SkillsToAdd             []string        `json:"skills_to_add"`
	SkillsToRemove          []string        `json:"skills_to_remove"`
	SkillsToReduceFocus     []string        `json:"skills_to_reduce_focus"`
	LabSuggestions          []string        `json:"lab_suggestions"`
	ProjectSuggestions      []string        `json:"project_suggestions"`
	AlignmentScore          float64         `json:"alignment_score"`
	ReadinessScores         ReadinessScores `json:"readiness_scores"`
	DetailedRecommendations string          `json:"detailed_recommendations"`
	Source                  ResultSource    `json:"source"`
	Note                    string          `json:"note,omitempty"`
}

// RoadmapStep is one skill to learn within a roadmap.
type RoadmapStep struct {
	StepNumber              int      `json:"step_number"`
	Skill                   string   `json:"skill"`
	Prerequisites           []string `json:"prerequisites"`
	EstimatedTimeWeeks      int      `json:"estimated_time_weeks"`
	SuggestedCourses        []string `json:"suggested_courses"`
	SuggestedCertifications []string `json:"suggested_certifications"`
	MiniProjects            []string `json:"mini_projects"`
	Description             string   `json:"description"`
}

// RoadmapPlan is an ordered learning plan toward a target role.
type RoadmapPlan struct {
	Title               string        `json:"title"`
	Steps               []RoadmapStep `json:"steps"`
	TotalEstimatedWeeks int           `json:"total_estimated_weeks"`
	CapstoneIdeas       []string      `json:"capstone_ideas"`
	Source              ResultSource  `json:"source"`
	Note                string        `json:"note,omitempty"`
}

// ExtractedSkills is the outcome of skill extraction from free text.
type ExtractedSkills struct {
	Skills []string     `json:"skills"`
	Source ResultSource `json:"source"`
}
