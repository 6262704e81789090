package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// venueRepo is the concrete implementation of VenueRepository
type venueRepo struct {
	db *database.DB
}

// NewVenueRepo creates a new venue repository
func NewVenueRepo(db *database.DB) VenueRepository {
	return &venueRepo{db: db}
}

const venueColumns = `id, user_id, name, address_line_1, address_line_2, address_city,
	address_county, address_postcode, address_area, tz, latitude, longitude,
	date_created, created_at, updated_at`

// Create inserts a new venue and fills in its generated id
func (r *venueRepo) Create(ctx context.Context, venue *models.Venue) error {
	query := `
		INSERT INTO venues (user_id, name, address_line_1, address_line_2, address_city,
			address_county, address_postcode, address_area, tz, latitude, longitude,
			date_created, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		venue.UserID, venue.Name, venue.AddressLine1, venue.AddressLine2, venue.AddressCity,
		venue.AddressCounty, venue.AddressPostcode, venue.AddressArea, venue.TZ,
		venue.Latitude, venue.Longitude, venue.DateCreated, now, now,
	).Scan(&venue.ID)
}

// GetByID retrieves a venue by ID
func (r *venueRepo) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	return r.get(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
}

// GetByName retrieves a venue by its exact name
func (r *venueRepo) GetByName(ctx context.Context, name string) (*models.Venue, error) {
	return r.get(ctx, `SELECT `+venueColumns+` FROM venues WHERE name = $1`, name)
}

func (r *venueRepo) get(ctx context.Context, query string, arg any) (*models.Venue, error) {
	var v models.Venue
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&v.ID, &v.UserID, &v.Name, &v.AddressLine1, &v.AddressLine2, &v.AddressCity,
		&v.AddressCounty, &v.AddressPostcode, &v.AddressArea, &v.TZ,
		&v.Latitude, &v.Longitude, &v.DateCreated, &v.CreatedAt, &v.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List retrieves all venues ordered by id
func (r *venueRepo) List(ctx context.Context) ([]*models.Venue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []*models.Venue
	for rows.Next() {
		var v models.Venue
		err := rows.Scan(
			&v.ID, &v.UserID, &v.Name, &v.AddressLine1, &v.AddressLine2, &v.AddressCity,
			&v.AddressCounty, &v.AddressPostcode, &v.AddressArea, &v.TZ,
			&v.Latitude, &v.Longitude, &v.DateCreated, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		venues = append(venues, &v)
	}
	return venues, rows.Err()
}

// Update updates a venue's mutable fields
func (r *venueRepo) Update(ctx context.Context, venue *models.Venue) error {
	query := `
		UPDATE venues
		SET name = $1, address_line_1 = $2, address_line_2 = $3, address_city = $4,
			address_county = $5, address_postcode = $6, address_area = $7, tz = $8,
			latitude = $9, longitude = $10, updated_at = $11
		WHERE id = $12
	`
	_, err := r.db.ExecContext(ctx, query,
		venue.Name, venue.AddressLine1, venue.AddressLine2, venue.AddressCity,
		venue.AddressCounty, venue.AddressPostcode, venue.AddressArea, venue.TZ,
		venue.Latitude, venue.Longitude, time.Now(), venue.ID,
	)
	return err
}

// Delete removes a venue
func (r *venueRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM venues WHERE id = $1", id)
	return err
}

// Count returns the total number of venues
func (r *venueRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM venues").Scan(&count)
	return count, err
}
