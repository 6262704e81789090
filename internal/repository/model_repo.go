package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// modelRepo is the concrete implementation of ModelRepository
type modelRepo struct {
	db *database.DB
}

// NewModelRepo creates a new model profile repository
func NewModelRepo(db *database.DB) ModelRepository {
	return &modelRepo{db: db}
}

const modelColumns = `id, user_id, display_name, website_urls, social_handles, portrait_urls,
	sex, date_created, created_at, updated_at`

// Create inserts a new model profile and fills in its generated id
func (r *modelRepo) Create(ctx context.Context, model *models.ModelProfile) error {
	query := `
		INSERT INTO models (user_id, display_name, website_urls, social_handles, portrait_urls,
			sex, date_created, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		model.UserID, model.DisplayName, model.WebsiteURLs, model.SocialHandles,
		model.PortraitURLs, model.Sex, model.DateCreated, now, now,
	).Scan(&model.ID)
}

// GetByID retrieves a model profile by ID
func (r *modelRepo) GetByID(ctx context.Context, id int64) (*models.ModelProfile, error) {
	var m models.ModelProfile
	err := r.db.QueryRowContext(ctx, `SELECT `+modelColumns+` FROM models WHERE id = $1`, id).Scan(
		&m.ID, &m.UserID, &m.DisplayName, &m.WebsiteURLs, &m.SocialHandles,
		&m.PortraitURLs, &m.Sex, &m.DateCreated, &m.CreatedAt, &m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List retrieves all model profiles ordered by id
func (r *modelRepo) List(ctx context.Context) ([]*models.ModelProfile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+modelColumns+` FROM models ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.ModelProfile
	for rows.Next() {
		var m models.ModelProfile
		err := rows.Scan(
			&m.ID, &m.UserID, &m.DisplayName, &m.WebsiteURLs, &m.SocialHandles,
			&m.PortraitURLs, &m.Sex, &m.DateCreated, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, &m)
	}
	return profiles, rows.Err()
}

// Update updates a model profile's mutable fields
func (r *modelRepo) Update(ctx context.Context, model *models.ModelProfile) error {
	query := `
		UPDATE models
		SET display_name = $1, website_urls = $2, social_handles = $3, portrait_urls = $4,
			sex = $5, updated_at = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query,
		model.DisplayName, model.WebsiteURLs, model.SocialHandles, model.PortraitURLs,
		model.Sex, time.Now(), model.ID,
	)
	return err
}

// Delete removes a model profile
func (r *modelRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM models WHERE id = $1", id)
	return err
}

// Count returns the total number of model profiles
func (r *modelRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM models").Scan(&count)
	return count, err
}
