package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skill-intel/internal/types"
)

// DefaultSkillLimit caps ListSkills when no limit is given
const DefaultSkillLimit = 20

const skillColumns = `id, name, category, domain, description, current_demand_score, future_demand_score,
	trend_status, google_trends_score, forecast_6m, forecast_1y, forecast_3y, created_at, updated_at`

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSkill(row rowScanner) (*Skill, error) {
	var s Skill
	var category, domain, description, status *string
	err := row.Scan(&s.ID, &s.Name, &category, &domain, &description,
		&s.CurrentDemandScore, &s.FutureDemandScore, &status, &s.GoogleTrendsScore,
		&s.Forecast6M, &s.Forecast1Y, &s.Forecast3Y, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Category = deref(category)
	s.Domain = deref(domain)
	s.Description = deref(description)
	s.TrendStatus = types.TrendCategory(deref(status))
	return &s, nil
}

// buildSkillQuery renders the filtered catalogue query and its arguments.
func buildSkillQuery(filters SkillFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultSkillLimit
	}

	query := `SELECT ` + skillColumns + ` FROM skills WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Domain != "" {
		query += fmt.Sprintf(" AND domain = $%d", argNum)
		args = append(args, filters.Domain)
		argNum++
	}
	if len(filters.TrendStatuses) > 0 {
		statuses := make([]string, len(filters.TrendStatuses))
		for i, s := range filters.TrendStatuses {
			statuses[i] = string(s)
		}
		query += fmt.Sprintf(" AND trend_status = ANY($%d)", argNum)
		args = append(args, statuses)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY future_demand_score DESC, name LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

// ListSkills retrieves catalogue entries with optional filters
func (db *DB) ListSkills(ctx context.Context, filters SkillFilters) ([]Skill, error) {
	query, args := buildSkillQuery(filters)
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// ListAllSkills retrieves the whole catalogue, optionally for one domain, ordered by name
func (db *DB) ListAllSkills(ctx context.Context, domain string) ([]Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills`
	args := []any{}
	if domain != "" {
		query += ` WHERE domain = $1`
		args = append(args, domain)
	}
	query += ` ORDER BY name`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, *s)
	}
	return skills, rows.Err()
}

// GetSkillByName retrieves a skill by exact name. Returns nil if not found.
func (db *DB) GetSkillByName(ctx context.Context, name string) (*Skill, error) {
	s, err := scanSkill(db.pool.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE name = $1`, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill %s: %w", name, err)
	}
	return s, nil
}

// CountSkills returns the catalogue size
func (db *DB) CountSkills(ctx context.Context) (int, error) {
	var n int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count skills: %w", err)
	}
	return n, nil
}

// UpsertSkill inserts a skill or updates the existing one with the same name
func (db *DB) UpsertSkill(ctx context.Context, input SkillInput) (*Skill, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("skill name is required")
	}
	s, err := scanSkill(db.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, domain, description, current_demand_score, future_demand_score, trend_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (name) DO UPDATE SET
		     category = EXCLUDED.category,
		     domain = EXCLUDED.domain,
		     description = EXCLUDED.description,
		     current_demand_score = EXCLUDED.current_demand_score,
		     future_demand_score = EXCLUDED.future_demand_score,
		     trend_status = EXCLUDED.trend_status,
		     updated_at = NOW()
		 RETURNING `+skillColumns,
		name, nullIfEmpty(input.Category), nullIfEmpty(input.Domain), nullIfEmpty(input.Description),
		input.CurrentDemandScore, input.FutureDemandScore, nullIfEmpty(string(input.TrendStatus)),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert skill %s: %w", name, err)
	}
	return s, nil
}

// UpdateSkillTrend stores a fresh trend analysis on an existing skill.
// Future demand takes the one-year forecast. Returns false if the skill does not exist.
func (db *DB) UpdateSkillTrend(ctx context.Context, trend types.SkillTrend) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE skills SET
		     current_demand_score = $2,
		     future_demand_score = $3,
		     trend_status = $4,
		     google_trends_score = $2,
		     forecast_6m = $5,
		     forecast_1y = $3,
		     forecast_3y = $6,
		     updated_at = NOW()
		 WHERE name = $1`,
		trend.Skill, trend.CurrentDemand, trend.Forecasts.Forecast1Y, string(trend.TrendStatus),
		trend.Forecasts.Forecast6M, trend.Forecasts.Forecast3Y,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update trend for %s: %w", trend.Skill, err)
	}
	return result.RowsAffected() > 0, nil
}

// SkillNames returns the names of skills, in order
func SkillNames(skills []Skill) []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}
