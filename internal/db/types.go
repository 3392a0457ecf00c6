package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skill-intel/internal/types"
)

// Skill categories used by the catalogue
const (
	CategoryTechnical      = "Technical"
	CategorySoft           = "Soft"
	CategoryDomainSpecific = "Domain-specific"
)

// Gap priorities and timeframes
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"

	TimeframeShortTerm = "short-term"
	TimeframeLongTerm  = "long-term"
)

// Skill is a catalogue entry with its demand and forecast fields
type Skill struct {
	ID                 uuid.UUID           `json:"id"`
	Name               string              `json:"name"`
	Category           string              `json:"category,omitempty"`
	Domain             string              `json:"domain,omitempty"`
	Description        string              `json:"description,omitempty"`
	CurrentDemandScore float64             `json:"current_demand_score"`
	FutureDemandScore  float64             `json:"future_demand_score"`
	TrendStatus        types.TrendCategory `json:"trend_status,omitempty"`
	GoogleTrendsScore  float64             `json:"google_trends_score"`
	Forecast6M         *float64            `json:"forecast_6m,omitempty"`
	Forecast1Y         *float64            `json:"forecast_1y,omitempty"`
	Forecast3Y         *float64            `json:"forecast_3y,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// SkillInput is the writable part of a Skill
type SkillInput struct {
	Name               string
	Category           string
	Domain             string
	Description        string
	CurrentDemandScore float64
	FutureDemandScore  float64
	TrendStatus        types.TrendCategory
}

// SkillFilters holds optional filters for listing skills.
// Results are ordered by future demand, highest first.
type SkillFilters struct {
	Domain        string
	TrendStatuses []types.TrendCategory
	Limit         int
}

// Profile is a learner profile built from an uploaded resume
type Profile struct {
	ID              uuid.UUID `json:"id"`
	Owner           string    `json:"-"`
	ResumeText      string    `json:"resume_text,omitempty"`
	Domain          string    `json:"domain,omitempty"`
	TargetRole      string    `json:"target_role,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	CurrentSkills   []string  `json:"current_skills"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileInput replaces the mutable fields of a profile
type ProfileInput struct {
	Owner           string
	ResumeText      string
	Domain          string
	TargetRole      string
	ExperienceLevel string
	CurrentSkills   []string
}

// SkillGapInput is one missing skill to record against a profile
type SkillGapInput struct {
	SkillID   uuid.UUID
	GapScore  float64
	Priority  string
	Timeframe string
}

// SkillGap is a stored gap joined with its skill's demand figures
type SkillGap struct {
	SkillID            uuid.UUID `json:"skill_id"`
	SkillName          string    `json:"skill_name"`
	GapScore           float64   `json:"gap_score"`
	Priority           string    `json:"priority"`
	Timeframe          string    `json:"timeframe"`
	CurrentDemandScore float64   `json:"current_demand_score"`
	FutureDemandScore  float64   `json:"future_demand_score"`
}

// Roadmap is a stored learning plan
type Roadmap struct {
	ID                   uuid.UUID         `json:"id"`
	Owner                string            `json:"-"`
	Title                string            `json:"title"`
	TargetRole           string            `json:"target_role,omitempty"`
	TargetTimelineMonths int               `json:"target_timeline_months"`
	Plan                 types.RoadmapPlan `json:"roadmap_data"`
	GeneratedAt          time.Time         `json:"generated_at"`
}

// RoadmapInput is a roadmap to store
type RoadmapInput struct {
	Owner                string
	TargetRole           string
	TargetTimelineMonths int
	Plan                 types.RoadmapPlan
}

// Curriculum is an uploaded programme with its latest analysis
type Curriculum struct {
	ID              uuid.UUID                       `json:"id"`
	Owner           string                          `json:"-"`
	Name            string                          `json:"name"`
	Program         string                          `json:"program,omitempty"`
	Text            string                          `json:"curriculum_text,omitempty"`
	ExtractedSkills []string                        `json:"extracted_skills"`
	AlignmentScore  float64                         `json:"alignment_score"`
	Recommendations *types.CurriculumRecommendation `json:"recommendations,omitempty"`
	CreatedAt       time.Time                       `json:"created_at"`
	UpdatedAt       time.Time                       `json:"updated_at"`
}

// CurriculumInput is a curriculum to store
type CurriculumInput struct {
	Owner           string
	Name            string
	Program         string
	Text            string
	ExtractedSkills []string
	Recommendations *types.CurriculumRecommendation
}

func ownerOrDefault(owner string) string {
	if owner == "" {
		return DefaultOwner
	}
	return owner
}
