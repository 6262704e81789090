package repository

import (
	"context"
	"database/sql"

	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// runRepo is the concrete implementation of RunRepository
type runRepo struct {
	db *database.DB
}

// NewRunRepo creates a new import run repository
func NewRunRepo(db *database.DB) RunRepository {
	return &runRepo{db: db}
}

// Create inserts a new import run record
func (r *runRepo) Create(ctx context.Context, run *models.ImportRun) error {
	query := `
		INSERT INTO import_runs (id, status, source_path, total_rows, loaded_rows, error, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.Status, run.SourcePath, run.TotalRows, run.LoadedRows, run.Error, run.StartedAt,
	)
	return err
}

// Update updates an import run record
func (r *runRepo) Update(ctx context.Context, run *models.ImportRun) error {
	query := `
		UPDATE import_runs
		SET status = $1, total_rows = $2, loaded_rows = $3, error = $4, completed_at = $5
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		run.Status, run.TotalRows, run.LoadedRows, run.Error, run.CompletedAt, run.ID,
	)
	return err
}

// GetLatest retrieves the most recently started run
func (r *runRepo) GetLatest(ctx context.Context) (*models.ImportRun, error) {
	query := `
		SELECT id, status, source_path, total_rows, loaded_rows, error, started_at, completed_at
		FROM import_runs ORDER BY started_at DESC LIMIT 1
	`
	var run models.ImportRun
	err := r.db.QueryRowContext(ctx, query).Scan(
		&run.ID, &run.Status, &run.SourcePath, &run.TotalRows, &run.LoadedRows,
		&run.Error, &run.StartedAt, &run.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}
