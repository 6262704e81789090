package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// eventRepo is the concrete implementation of EventRepository
type eventRepo struct {
	db *database.DB
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *database.DB) EventRepository {
	return &eventRepo{db: db}
}

const eventColumns = `id, host_user_id, venue_id, name, description, frequency, week_day,
	images, pricing_table, pricing_text, pricing_tags, pose_format, created_at, updated_at`

// Create inserts a new event and fills in its generated id
func (r *eventRepo) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (host_user_id, venue_id, name, description, frequency, week_day,
			images, pricing_table, pricing_text, pricing_tags, pose_format, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		event.HostUserID, event.VenueID, event.Name, event.Description, event.Frequency,
		event.WeekDay, event.Images, event.PricingTable, event.PricingText,
		event.PricingTags, event.PoseFormat, now, now,
	).Scan(&event.ID)
}

// GetByID retrieves an event by ID
func (r *eventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	var e models.Event
	err := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id).Scan(
		&e.ID, &e.HostUserID, &e.VenueID, &e.Name, &e.Description, &e.Frequency,
		&e.WeekDay, &e.Images, &e.PricingTable, &e.PricingText, &e.PricingTags,
		&e.PoseFormat, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List retrieves all events ordered by id
func (r *eventRepo) List(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var e models.Event
		err := rows.Scan(
			&e.ID, &e.HostUserID, &e.VenueID, &e.Name, &e.Description, &e.Frequency,
			&e.WeekDay, &e.Images, &e.PricingTable, &e.PricingText, &e.PricingTags,
			&e.PoseFormat, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

// Update updates an event's mutable fields
func (r *eventRepo) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET host_user_id = $1, venue_id = $2, name = $3, description = $4, frequency = $5,
			week_day = $6, pricing_table = $7, pricing_text = $8, pose_format = $9, updated_at = $10
		WHERE id = $11
	`
	_, err := r.db.ExecContext(ctx, query,
		event.HostUserID, event.VenueID, event.Name, event.Description, event.Frequency,
		event.WeekDay, event.PricingTable, event.PricingText, event.PoseFormat,
		time.Now(), event.ID,
	)
	return err
}

// Delete removes an event
func (r *eventRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id)
	return err
}

// Count returns the total number of events
func (r *eventRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&count)
	return count, err
}
