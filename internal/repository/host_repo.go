package repository

import (
	"context"
	"database/sql"

	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// hostRepo is the concrete implementation of HostRepository. Hosts are
// written only by the import, so the repository is read-only.
type hostRepo struct {
	db *database.DB
}

// NewHostRepo creates a new host repository
func NewHostRepo(db *database.DB) HostRepository {
	return &hostRepo{db: db}
}

const hostColumns = `id, user_id, name, description, summary, social_handles, host_tags,
	default_date_time, default_duration, date_created, created_at, updated_at`

// GetByID retrieves a host by ID
func (r *hostRepo) GetByID(ctx context.Context, id int64) (*models.Host, error) {
	var h models.Host
	err := r.db.QueryRowContext(ctx, `SELECT `+hostColumns+` FROM hosts WHERE id = $1`, id).Scan(
		&h.ID, &h.UserID, &h.Name, &h.Description, &h.Summary, &h.SocialHandles,
		&h.HostTags, &h.DefaultDateTime, &h.DefaultDuration, &h.DateCreated,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// List retrieves all hosts ordered by id
func (r *hostRepo) List(ctx context.Context) ([]*models.Host, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+hostColumns+` FROM hosts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hosts []*models.Host
	for rows.Next() {
		var h models.Host
		err := rows.Scan(
			&h.ID, &h.UserID, &h.Name, &h.Description, &h.Summary, &h.SocialHandles,
			&h.HostTags, &h.DefaultDateTime, &h.DefaultDuration, &h.DateCreated,
			&h.CreatedAt, &h.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		hosts = append(hosts, &h)
	}
	return hosts, rows.Err()
}

// Count returns the total number of hosts
func (r *hostRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM hosts").Scan(&count)
	return count, err
}
