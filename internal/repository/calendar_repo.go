package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// calendarRepo is the concrete implementation of CalendarRepository
type calendarRepo struct {
	db *database.DB
}

// NewCalendarRepo creates a new calendar session repository
func NewCalendarRepo(db *database.DB) CalendarRepository {
	return &calendarRepo{db: db}
}

const sessionColumns = `id, event_id, model_user_id, status, attendance_inperson,
	attendance_online, date_time, duration, pose_format, created_at, updated_at`

// Create inserts a new calendar session and fills in its generated id
func (r *calendarRepo) Create(ctx context.Context, session *models.CalendarSession) error {
	query := `
		INSERT INTO calendar (event_id, model_user_id, status, attendance_inperson,
			attendance_online, date_time, duration, pose_format, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		session.EventID, session.ModelUserID, session.Status, session.AttendanceInPerson,
		session.AttendanceOnline, session.DateTime, session.Duration, session.PoseFormat,
		now, now,
	).Scan(&session.ID)
}

// GetByID retrieves a session by ID
func (r *calendarRepo) GetByID(ctx context.Context, id int64) (*models.CalendarSession, error) {
	var s models.CalendarSession
	err := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM calendar WHERE id = $1`, id).Scan(
		&s.ID, &s.EventID, &s.ModelUserID, &s.Status, &s.AttendanceInPerson,
		&s.AttendanceOnline, &s.DateTime, &s.Duration, &s.PoseFormat,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByEvent retrieves the sessions of one event in date order
func (r *calendarRepo) ListByEvent(ctx context.Context, eventID int64) ([]*models.CalendarSession, error) {
	return r.list(ctx, `SELECT `+sessionColumns+` FROM calendar WHERE event_id = $1 ORDER BY date_time`, eventID)
}

// List retrieves all sessions in date order
func (r *calendarRepo) List(ctx context.Context) ([]*models.CalendarSession, error) {
	return r.list(ctx, `SELECT `+sessionColumns+` FROM calendar ORDER BY date_time`)
}

func (r *calendarRepo) list(ctx context.Context, query string, args ...any) ([]*models.CalendarSession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.CalendarSession
	for rows.Next() {
		var s models.CalendarSession
		err := rows.Scan(
			&s.ID, &s.EventID, &s.ModelUserID, &s.Status, &s.AttendanceInPerson,
			&s.AttendanceOnline, &s.DateTime, &s.Duration, &s.PoseFormat,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

// Update updates a session's mutable fields
func (r *calendarRepo) Update(ctx context.Context, session *models.CalendarSession) error {
	query := `
		UPDATE calendar
		SET event_id = $1, model_user_id = $2, status = $3, attendance_inperson = $4,
			attendance_online = $5, date_time = $6, duration = $7, pose_format = $8, updated_at = $9
		WHERE id = $10
	`
	_, err := r.db.ExecContext(ctx, query,
		session.EventID, session.ModelUserID, session.Status, session.AttendanceInPerson,
		session.AttendanceOnline, session.DateTime, session.Duration, session.PoseFormat,
		time.Now(), session.ID,
	)
	return err
}

// Delete removes a session
func (r *calendarRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM calendar WHERE id = $1", id)
	return err
}

// Count returns the total number of sessions
func (r *calendarRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calendar").Scan(&count)
	return count, err
}
