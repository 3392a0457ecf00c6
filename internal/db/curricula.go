package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skill-intel/internal/types"
)

const curriculumColumns = `id, owner, name, program, curriculum_text, extracted_skills, alignment_score,
	recommendations, created_at, updated_at`

func scanCurriculum(row rowScanner) (*Curriculum, error) {
	var c Curriculum
	var program, text *string
	var skills, recs []byte
	if err := row.Scan(&c.ID, &c.Owner, &c.Name, &program, &text, &skills, &c.AlignmentScore,
		&recs, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Program = deref(program)
	c.Text = deref(text)
	if err := json.Unmarshal(skills, &c.ExtractedSkills); err != nil {
		return nil, fmt.Errorf("failed to decode curriculum skills: %w", err)
	}
	if len(recs) > 0 {
		var rec types.CurriculumRecommendation
		if err := json.Unmarshal(recs, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode curriculum recommendations: %w", err)
		}
		c.Recommendations = &rec
	}
	return &c, nil
}

func marshalRecommendation(rec *types.CurriculumRecommendation) ([]byte, float64, error) {
	if rec == nil {
		return nil, 0, nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	return data, rec.AlignmentScore, nil
}

// CreateCurriculum stores an uploaded curriculum with its first analysis
func (db *DB) CreateCurriculum(ctx context.Context, input CurriculumInput) (*Curriculum, error) {
	skills, err := json.Marshal(types.DedupeSkills(input.ExtractedSkills))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal curriculum skills: %w", err)
	}
	recs, alignment, err := marshalRecommendation(input.Recommendations)
	if err != nil {
		return nil, err
	}

	c, err := scanCurriculum(db.pool.QueryRow(ctx,
		`INSERT INTO curricula (owner, name, program, curriculum_text, extracted_skills, alignment_score, recommendations)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+curriculumColumns,
		ownerOrDefault(input.Owner), input.Name, nullIfEmpty(input.Program), nullIfEmpty(input.Text),
		skills, alignment, recs,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create curriculum: %w", err)
	}
	return c, nil
}

// ListCurricula retrieves an owner's curricula, newest first
func (db *DB) ListCurricula(ctx context.Context, owner string) ([]Curriculum, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+curriculumColumns+` FROM curricula WHERE owner = $1 ORDER BY created_at DESC`,
		ownerOrDefault(owner),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list curricula: %w", err)
	}
	defer rows.Close()

	curricula := []Curriculum{}
	for rows.Next() {
		c, err := scanCurriculum(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan curriculum: %w", err)
		}
		curricula = append(curricula, *c)
	}
	return curricula, rows.Err()
}

// GetCurriculum retrieves one of an owner's curricula. Returns nil if not found.
func (db *DB) GetCurriculum(ctx context.Context, owner string, id uuid.UUID) (*Curriculum, error) {
	c, err := scanCurriculum(db.pool.QueryRow(ctx,
		`SELECT `+curriculumColumns+` FROM curricula WHERE id = $1 AND owner = $2`,
		id, ownerOrDefault(owner),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get curriculum: %w", err)
	}
	return c, nil
}

// UpdateCurriculumAnalysis replaces a curriculum's recommendations and alignment.
// Returns nil if the curriculum does not exist.
func (db *DB) UpdateCurriculumAnalysis(ctx context.Context, owner string, id uuid.UUID, rec *types.CurriculumRecommendation) (*Curriculum, error) {
	recs, alignment, err := marshalRecommendation(rec)
	if err != nil {
		return nil, err
	}

	c, err := scanCurriculum(db.pool.QueryRow(ctx,
		`UPDATE curricula SET recommendations = $3, alignment_score = $4, updated_at = NOW()
		 WHERE id = $1 AND owner = $2
		 RETURNING `+curriculumColumns,
		id, ownerOrDefault(owner), recs, alignment,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update curriculum: %w", err)
	}
	return c, nil
}
