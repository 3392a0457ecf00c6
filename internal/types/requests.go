package types

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared; validator caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// ProfileRequest carries resume text to build a skill profile from.
type ProfileRequest struct {
	ResumeText      string `json:"resume_text" validate:"required"`
	Domain          string `json:"domain,omitempty"`
	TargetRole      string `json:"target_role,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// GapRequest asks for a gap analysis. When RequiredSkills is empty the
// server derives them from the skill catalogue.
type GapRequest struct {
	CurrentSkills  []string `json:"current_skills" validate:"dive,required"`
	RequiredSkills []string `json:"required_skills,omitempty" validate:"dive,required"`
	TargetRole     string   `json:"target_role" validate:"required"`
	Domain         string   `json:"domain,omitempty"`
}

// RoadmapRequest asks for a learning roadmap.
type RoadmapRequest struct {
	CurrentSkills  []string `json:"current_skills" validate:"dive,required"`
	TargetRole     string   `json:"target_role" validate:"required"`
	TimelineMonths int      `json:"target_timeline_months" validate:"required,min=1,max=120"`
	Domain         string   `json:"domain,omitempty"`
}

// CurriculumUploadRequest registers a curriculum from its syllabus text.
type CurriculumUploadRequest struct {
	Name    string `json:"name" validate:"required"`
	Program string `json:"program,omitempty"`
	Text    string `json:"text" validate:"required"`
}

// CurriculumRequest asks for curriculum recommendations against explicit skill lists.
type CurriculumRequest struct {
	CurriculumSkills []string `json:"curriculum_skills" validate:"dive,required"`
	IndustrySkills   []string `json:"industry_skills" validate:"dive,required"`
	FutureSkills     []string `json:"future_skills" validate:"dive,required"`
}

// ForecastRequest asks for a demand forecast.
type ForecastRequest struct {
	CurrentDemand float64 `json:"current_demand" validate:"gte=0,lte=100"`
	GrowthRate    float64 `json:"growth_rate"`
}

// Validate validates the ProfileRequest using the validator.
func (r *ProfileRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the GapRequest using the validator.
func (r *GapRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the RoadmapRequest using the validator.
func (r *RoadmapRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CurriculumUploadRequest using the validator.
func (r *CurriculumUploadRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CurriculumRequest using the validator.
func (r *CurriculumRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ForecastRequest using the validator.
func (r *ForecastRequest) Validate() error {
	return validate.Struct(r)
}
