package heuristics

import (
	"fmt"
	"strings"

	"github.com/jonathan/skill-intel/internal/types"
)

// Roadmap shaping limits
const (
	MaxRoadmapSteps  = 6
	minWeeksPerSkill = 2
	certifiedSteps   = 3
	startingPrereqs  = 2
	weeksPerMonth    = 4
)

// RoleSkills pairs a role pattern with the skills it requires.
type RoleSkills struct {
	Role   string
	Skills []string
}

// roleTable is searched in order; the first match wins.
var roleTable = []RoleSkills{
	{"data scientist", []string{"Python", "Statistics", "Machine Learning", "SQL", "Data Visualization", "Deep Learning"}},
	{"machine learning engineer", []string{"Python", "TensorFlow", "PyTorch", "MLOps", "Cloud Computing", "Docker"}},
	{"software engineer", []string{"Python", "JavaScript", "Git", "APIs", "Databases", "System Design"}},
	{"web developer", []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "Databases"}},
	{"devops engineer", []string{"Linux", "Docker", "Kubernetes", "CI/CD", "Cloud Platforms", "Scripting"}},
	{"cybersecurity analyst", []string{"Network Security", "Linux", "Python", "Penetration Testing", "SIEM", "Compliance"}},
	{"ai engineer", []string{"Python", "Machine Learning", "Deep Learning", "NLP", "Computer Vision", "MLOps"}},
}

var genericSkills = []string{
	"Programming", "Problem Solving", "Communication", "Project Management", "Domain Knowledge", "Continuous Learning",
}

// RequiredSkillsForRole returns the skills required for targetRole. The role
// matches a table entry when either contains the other, ignoring case. A
// blank or unmatched role gets the generic list.
func RequiredSkillsForRole(targetRole string) []string {
	target := strings.ToLower(strings.TrimSpace(targetRole))
	if target != "" {
		for _, entry := range roleTable {
			if strings.Contains(target, entry.Role) || strings.Contains(entry.Role, target) {
				return head(entry.Skills, len(entry.Skills))
			}
		}
	}
	return head(genericSkills, len(genericSkills))
}

// Roles lists the role patterns known to RequiredSkillsForRole, in match order.
func Roles() []string {
	roles := make([]string, len(roleTable))
	for i, entry := range roleTable {
		roles[i] = entry.Role
	}
	return roles
}

// GenerateRoadmap builds a step-per-skill plan for the skills targetRole
// requires that current does not already cover.
func GenerateRoadmap(current []string, targetRole string, timelineMonths int, domain string) types.RoadmapPlan {
	required := RequiredSkillsForRole(targetRole)
	have := types.NewSkillSet(current)

	toLearn := []string{}
	for _, s := range required {
		if !have.Has(s) {
			toLearn = append(toLearn, s)
		}
	}
	if len(toLearn) == 0 {
		toLearn = []string{"Advanced " + required[0]}
	}

	weeks := max(minWeeksPerSkill, timelineMonths*weeksPerMonth/len(toLearn))

	learn := head(toLearn, MaxRoadmapSteps)
	steps := make([]types.RoadmapStep, 0, len(learn))
	for i, skill := range learn {
		number := i + 1

		prereqs := head(current, startingPrereqs)
		if i > 0 {
			prereqs = []string{learn[i-1]}
		}

		certs := []string{}
		if number <= certifiedSteps {
			certs = []string{skill + " Certification"}
		}

		lower := strings.ToLower(skill)
		steps = append(steps, types.RoadmapStep{
			StepNumber:              number,
			Skill:                   skill,
			Prerequisites:           prereqs,
			EstimatedTimeWeeks:      weeks,
			SuggestedCourses:        []string{"Introduction to " + skill, "Advanced " + skill},
			SuggestedCertifications: certs,
			MiniProjects:            []string{fmt.Sprintf("Build a %s project", lower), fmt.Sprintf("Practice %s exercises", lower)},
			Description:             fmt.Sprintf("Learn %s fundamentals and apply them to real-world problems", skill),
		})
	}

	community := domain
	if strings.TrimSpace(community) == "" {
		community = strings.ToLower(targetRole)
	}

	return types.RoadmapPlan{
		Title:               "Roadmap to become " + targetRole,
		Steps:               steps,
		TotalEstimatedWeeks: len(steps) * weeks,
		CapstoneIdeas: []string{
			fmt.Sprintf("Build a complete %s portfolio project", strings.ToLower(targetRole)),
			fmt.Sprintf("Contribute to open-source %s projects", community),
		},
		Source: types.SourceFallback,
		Note:   OfflineRoadmapNote,
	}
}
