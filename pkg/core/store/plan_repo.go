package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bankplan/pkg/core/assumption"
	"bankplan/pkg/core/projection"
)

// PlanRepo stores plans: one assumption document plus the last computed
// results, as a single JSONB blob per plan.
type PlanRepo struct{}

// NewPlanRepo creates a new repository instance.
func NewPlanRepo() *PlanRepo {
	return &PlanRepo{}
}

// Plan is the stored unit. Results may be nil for a plan that was saved
// before its first computation.
type Plan struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Assumptions *assumption.Set     `json:"assumptions"`
	Results     *projection.Results `json:"results,omitempty"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// Schema assumption (managed elsewhere, migrations):
// CREATE TABLE IF NOT EXISTS plans (
//   id UUID PRIMARY KEY,
//   name TEXT NOT NULL,
//   plan_json JSONB NOT NULL,
//   updated_at TIMESTAMPTZ NOT NULL
// );

// Save upserts a plan by ID. An empty ID gets a fresh one assigned; the
// (possibly generated) ID is returned.
func (r *PlanRepo) Save(ctx context.Context, p *Plan) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.UpdatedAt = time.Now()

	jsonData, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}

	query := `
		INSERT INTO plans (id, name, plan_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			plan_json = EXCLUDED.plan_json,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := pool.Exec(ctx, query, p.ID, p.Name, jsonData, p.UpdatedAt); err != nil {
		return "", fmt.Errorf("save plan %s: %w", p.ID, err)
	}
	return p.ID, nil
}

// Load retrieves one plan by ID.
func (r *PlanRepo) Load(ctx context.Context, id string) (*Plan, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := pool.QueryRow(ctx, `SELECT plan_json FROM plans WHERE id = $1`, id).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("plan %s not found", id)
		}
		return nil, fmt.Errorf("load plan %s: %w", id, err)
	}

	var p Plan
	if err := json.Unmarshal(jsonData, &p); err != nil {
		return nil, fmt.Errorf("unmarshal plan %s: %w", id, err)
	}
	return &p, nil
}

// PlanSummary is the listing row: no document bodies.
type PlanSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// List returns all stored plans, most recently updated first.
func (r *PlanRepo) List(ctx context.Context) ([]PlanSummary, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx, `SELECT id, name, updated_at FROM plans ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var out []PlanSummary
	for rows.Next() {
		var s PlanSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a plan by ID. Deleting a missing plan is not an error.
func (r *PlanRepo) Delete(ctx context.Context, id string) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}
	if _, err := pool.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	return nil
}
