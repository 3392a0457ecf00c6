package db

import (
	"context"
	"fmt"

	"github.com/jonathan/skill-intel/internal/types"
)

func seed(name, category, domain, description string, current, future float64, status types.TrendCategory) SkillInput {
	return SkillInput{
		Name:               name,
		Category:           category,
		Domain:             domain,
		Description:        description,
		CurrentDemandScore: current,
		FutureDemandScore:  future,
		TrendStatus:        status,
	}
}

// DefaultCatalogue is the skill catalogue installed into an empty database.
func DefaultCatalogue() []SkillInput {
	return []SkillInput{
		seed("Python", CategoryTechnical, "AI", "Programming language", 85, 90, types.TrendHighGrowth),
		seed("Machine Learning", CategoryTechnical, "AI", "ML algorithms and models", 80, 92, types.TrendHighGrowth),
		seed("Deep Learning", CategoryTechnical, "AI", "Neural networks and deep learning", 75, 88, types.TrendHighGrowth),
		seed("Natural Language Processing", CategoryTechnical, "AI", "NLP techniques", 70, 85, types.TrendEmerging),
		seed("TensorFlow", CategoryTechnical, "AI", "ML framework", 70, 75, types.TrendSaturated),
		seed("PyTorch", CategoryTechnical, "AI", "ML framework", 75, 85, types.TrendHighGrowth),
		seed("LLM Fine-tuning", CategoryTechnical, "AI", "Adapting large language models", 60, 95, types.TrendEmerging),
		seed("JavaScript", CategoryTechnical, "Software Engineering", "Web programming", 85, 80, types.TrendSaturated),
		seed("TypeScript", CategoryTechnical, "Software Engineering", "Typed JavaScript", 80, 90, types.TrendHighGrowth),
		seed("React", CategoryTechnical, "Software Engineering", "Frontend framework", 85, 85, types.TrendSaturated),
		seed("Node.js", CategoryTechnical, "Software Engineering", "Backend runtime", 80, 80, types.TrendSaturated),
		seed("Docker", CategoryTechnical, "Software Engineering", "Containerization", 75, 85, types.TrendHighGrowth),
		seed("Kubernetes", CategoryTechnical, "Software Engineering", "Container orchestration", 70, 88, types.TrendHighGrowth),
		seed("AWS", CategoryTechnical, "Software Engineering", "Cloud platform", 85, 90, types.TrendHighGrowth),
		seed("Data Analysis", CategoryTechnical, "Data Science", "Data exploration", 80, 85, types.TrendHighGrowth),
		seed("SQL", CategoryTechnical, "Data Science", "Database queries", 85, 80, types.TrendSaturated),
		seed("Pandas", CategoryTechnical, "Data Science", "Data manipulation", 75, 80, types.TrendSaturated),
		seed("Blockchain", CategoryTechnical, "FinTech", "Blockchain technology", 55, 70, types.TrendHighGrowth),
		seed("Penetration Testing", CategoryTechnical, "Cybersecurity", "Security testing", 75, 85, types.TrendHighGrowth),
		seed("Healthcare Data Analysis", CategoryDomainSpecific, "Healthcare", "Medical data analysis", 65, 80, types.TrendHighGrowth),
	}
}

// SeedSkills installs DefaultCatalogue when the catalogue is empty.
// It returns the number of skills added.
func (db *DB) SeedSkills(ctx context.Context) (int, error) {
	count, err := db.CountSkills(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	added := 0
	for _, input := range DefaultCatalogue() {
		if _, err := db.UpsertSkill(ctx, input); err != nil {
			return added, fmt.Errorf("failed to seed skills: %w", err)
		}
		added++
	}
	return added, nil
}
