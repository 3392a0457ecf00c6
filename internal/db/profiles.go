package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skill-intel/internal/types"
)

// GetProfile retrieves the profile of an owner. Returns nil if not found.
func (db *DB) GetProfile(ctx context.Context, owner string) (*Profile, error) {
	var p Profile
	var resume, domain, role, level *string
	var skills []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, owner, resume_text, domain, target_role, experience_level, current_skills, created_at, updated_at
		 FROM user_profiles WHERE owner = $1`,
		ownerOrDefault(owner),
	).Scan(&p.ID, &p.Owner, &resume, &domain, &role, &level, &skills, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	p.ResumeText = deref(resume)
	p.Domain = deref(domain)
	p.TargetRole = deref(role)
	p.ExperienceLevel = deref(level)
	if err := json.Unmarshal(skills, &p.CurrentSkills); err != nil {
		return nil, fmt.Errorf("failed to decode profile skills: %w", err)
	}
	p.CurrentSkills = types.DedupeSkills(p.CurrentSkills)
	return &p, nil
}

// UpsertProfile creates or replaces an owner's profile
func (db *DB) UpsertProfile(ctx context.Context, input ProfileInput) (*Profile, error) {
	skills := types.DedupeSkills(input.CurrentSkills)
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile skills: %w", err)
	}

	p := Profile{
		Owner:           ownerOrDefault(input.Owner),
		ResumeText:      input.ResumeText,
		Domain:          input.Domain,
		TargetRole:      input.TargetRole,
		ExperienceLevel: input.ExperienceLevel,
		CurrentSkills:   skills,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO user_profiles (owner, resume_text, domain, target_role, experience_level, current_skills)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (owner) DO UPDATE SET
		     resume_text = EXCLUDED.resume_text,
		     domain = EXCLUDED.domain,
		     target_role = EXCLUDED.target_role,
		     experience_level = EXCLUDED.experience_level,
		     current_skills = EXCLUDED.current_skills,
		     updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		p.Owner, nullIfEmpty(p.ResumeText), nullIfEmpty(p.Domain), nullIfEmpty(p.TargetRole),
		nullIfEmpty(p.ExperienceLevel), skillsJSON,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return &p, nil
}

// ReplaceSkillGaps clears a profile's gaps and stores the new set in one transaction
func (db *DB) ReplaceSkillGaps(ctx context.Context, profileID uuid.UUID, gaps []SkillGapInput) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM skill_gaps WHERE profile_id = $1`, profileID); err != nil {
		return fmt.Errorf("failed to clear skill gaps: %w", err)
	}
	for _, g := range gaps {
		_, err := tx.Exec(ctx,
			`INSERT INTO skill_gaps (profile_id, skill_id, gap_score, priority, timeframe)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (profile_id, skill_id) DO NOTHING`,
			profileID, g.SkillID, g.GapScore, g.Priority, g.Timeframe,
		)
		if err != nil {
			return fmt.Errorf("failed to insert skill gap: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit skill gaps: %w", err)
	}
	return nil
}

// ListSkillGaps retrieves a profile's gaps with skill demand figures
func (db *DB) ListSkillGaps(ctx context.Context, profileID uuid.UUID) ([]SkillGap, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT g.skill_id, s.name, g.gap_score, g.priority, g.timeframe,
		        s.current_demand_score, s.future_demand_score
		 FROM skill_gaps g JOIN skills s ON s.id = g.skill_id
		 WHERE g.profile_id = $1
		 ORDER BY g.priority, s.future_demand_score DESC`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill gaps: %w", err)
	}
	defer rows.Close()

	gaps := []SkillGap{}
	for rows.Next() {
		var g SkillGap
		if err := rows.Scan(&g.SkillID, &g.SkillName, &g.GapScore, &g.Priority, &g.Timeframe,
			&g.CurrentDemandScore, &g.FutureDemandScore); err != nil {
			return nil, fmt.Errorf("failed to scan skill gap: %w", err)
		}
		gaps = append(gaps, g)
	}
	return gaps, rows.Err()
}
