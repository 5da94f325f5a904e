package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bess_economics/pkg/core/pipeline"
)

// RunRepo stores evaluation results, one row per scenario. Re-saving a
// scenario overwrites the previous run but keeps a fresh run ID.
type RunRepo struct{}

// NewRunRepo creates a repository instance.
func NewRunRepo() *RunRepo {
	return &RunRepo{}
}

// RunRecord is one saved evaluation.
type RunRecord struct {
	ID        string           `json:"id"`
	Scenario  string           `json:"scenario"`
	Result    *pipeline.Result `json:"result,omitempty"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Save persists a result under its scenario name, upserting on the name.
// The indicator NaN sentinels serialize as null, so the JSONB document is
// always well-formed.
//
// Schema assumption (managed by migrations):
//
//	CREATE TABLE IF NOT EXISTS evaluation_runs (
//	  scenario TEXT PRIMARY KEY,
//	  run_id UUID,
//	  result_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
func (r *RunRepo) Save(ctx context.Context, scenario string, result *pipeline.Result) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}
	if scenario == "" {
		return "", fmt.Errorf("scenario name must not be empty")
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	runID := uuid.NewString()
	query := `
		INSERT INTO evaluation_runs (scenario, run_id, result_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (scenario)
		DO UPDATE SET
			run_id = EXCLUDED.run_id,
			result_json = EXCLUDED.result_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, scenario, runID, jsonData, time.Now()); err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}
	return runID, nil
}

// Load retrieves the saved run for a scenario.
func (r *RunRepo) Load(ctx context.Context, scenario string) (*RunRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT run_id, result_json, updated_at FROM evaluation_runs WHERE scenario = $1`

	var rec RunRecord
	var jsonData []byte
	err := pool.QueryRow(ctx, query, scenario).Scan(&rec.ID, &jsonData, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no run found for scenario %s", scenario)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	rec.Scenario = scenario
	if err := json.Unmarshal(jsonData, &rec.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run data: %w", err)
	}
	return &rec, nil
}

// List returns the saved runs without their result payloads, newest first.
func (r *RunRepo) List(ctx context.Context) ([]RunRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT scenario, run_id, updated_at FROM evaluation_runs ORDER BY updated_at DESC`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.Scenario, &rec.ID, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
