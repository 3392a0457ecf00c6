package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roadmapColumns = `id, owner, title, target_role, target_timeline_months, roadmap_data, generated_at`

func scanRoadmap(row rowScanner) (*Roadmap, error) {
	var r Roadmap
	var role *string
	var months *int
	var data []byte
	if err := row.Scan(&r.ID, &r.Owner, &r.Title, &role, &months, &data, &r.GeneratedAt); err != nil {
		return nil, err
	}
	r.TargetRole = deref(role)
	if months != nil {
		r.TargetTimelineMonths = *months
	}
	if err := json.Unmarshal(data, &r.Plan); err != nil {
		return nil, fmt.Errorf("failed to decode roadmap data: %w", err)
	}
	return &r, nil
}

// CreateRoadmap stores a generated roadmap. The title comes from the plan.
func (db *DB) CreateRoadmap(ctx context.Context, input RoadmapInput) (*Roadmap, error) {
	data, err := json.Marshal(input.Plan)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	title := input.Plan.Title
	if title == "" {
		title = "Roadmap to " + input.TargetRole
	}

	r, err := scanRoadmap(db.pool.QueryRow(ctx,
		`INSERT INTO roadmaps (owner, title, target_role, target_timeline_months, roadmap_data)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+roadmapColumns,
		ownerOrDefault(input.Owner), title, nullIfEmpty(input.TargetRole), input.TargetTimelineMonths, data,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create roadmap: %w", err)
	}
	return r, nil
}

// ListRoadmaps retrieves an owner's roadmaps, newest first
func (db *DB) ListRoadmaps(ctx context.Context, owner string) ([]Roadmap, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+roadmapColumns+` FROM roadmaps WHERE owner = $1 ORDER BY generated_at DESC`,
		ownerOrDefault(owner),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}
	defer rows.Close()

	roadmaps := []Roadmap{}
	for rows.Next() {
		r, err := scanRoadmap(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roadmap: %w", err)
		}
		roadmaps = append(roadmaps, *r)
	}
	return roadmaps, rows.Err()
}

// GetRoadmap retrieves one of an owner's roadmaps. Returns nil if not found.
func (db *DB) GetRoadmap(ctx context.Context, owner string, id uuid.UUID) (*Roadmap, error) {
	r, err := scanRoadmap(db.pool.QueryRow(ctx,
		`SELECT `+roadmapColumns+` FROM roadmaps WHERE id = $1 AND owner = $2`,
		id, ownerOrDefault(owner),
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}
	return r, nil
}
