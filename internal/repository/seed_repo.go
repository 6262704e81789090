package repository

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// seedRepo is the concrete implementation of Seeder
type seedRepo struct {
	db *database.DB
}

// NewSeedRepo creates a new seed repository
func NewSeedRepo(db *database.DB) Seeder {
	return &seedRepo{db: db}
}

// TruncateAll empties every seeded table and resets identity sequences.
// import_runs is deliberately kept, it is the audit trail of these resets.
func (r *seedRepo) TruncateAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		TRUNCATE calendar, events, hosts, models, user_profiles, venues, users, exchange_rates
		RESTART IDENTITY CASCADE
	`)
	return err
}

// LoadUsers inserts users one by one so generated ids come back; downstream
// tables join on them. Returns the email -> id map for join resolution.
func (r *seedRepo) LoadUsers(ctx context.Context, users []*models.User) (map[string]int64, error) {
	ids := make(map[string]int64, len(users))
	now := time.Now()

	query := `
		INSERT INTO users (email, password_hash, is_global_active, is_admin, date_created, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	for _, user := range users {
		err := r.db.QueryRowContext(ctx, query,
			user.Email, user.PasswordHash, user.IsGlobalActive, user.IsAdmin,
			user.DateCreated, now, now,
		).Scan(&user.ID)
		if err != nil {
			return ids, err
		}
		ids[user.Email] = user.ID
	}
	return ids, nil
}

// LoadProfiles bulk-inserts user profiles using PostgreSQL COPY
func (r *seedRepo) LoadProfiles(ctx context.Context, profiles []*models.UserProfile) (int, error) {
	return r.copyLoad(ctx, "user_profiles",
		[]string{"user_id", "handle", "fullname", "phone_number", "avatar_url", "created_at", "updated_at"},
		len(profiles),
		func(i int, now time.Time) []any {
			p := profiles[i]
			return []any{p.UserID, p.Handle, p.Fullname, p.PhoneNumber, p.AvatarURL, now, now}
		},
	)
}

// LoadVenues inserts venues one by one so generated ids come back for the
// event join. Returns the name -> id map.
func (r *seedRepo) LoadVenues(ctx context.Context, venues []*models.Venue) (map[string]int64, error) {
	ids := make(map[string]int64, len(venues))
	now := time.Now()

	query := `
		INSERT INTO venues (user_id, name, address_line_1, address_line_2, address_city,
			address_county, address_postcode, address_area, tz, latitude, longitude,
			date_created, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	for _, v := range venues {
		err := r.db.QueryRowContext(ctx, query,
			v.UserID, v.Name, v.AddressLine1, v.AddressLine2, v.AddressCity,
			v.AddressCounty, v.AddressPostcode, v.AddressArea, v.TZ,
			v.Latitude, v.Longitude, v.DateCreated, now, now,
		).Scan(&v.ID)
		if err != nil {
			return ids, err
		}
		ids[v.Name] = v.ID
	}
	return ids, nil
}

// LoadModels bulk-inserts model profiles using PostgreSQL COPY
func (r *seedRepo) LoadModels(ctx context.Context, profiles []*models.ModelProfile) (int, error) {
	return r.copyLoad(ctx, "models",
		[]string{"user_id", "display_name", "website_urls", "social_handles", "portrait_urls",
			"sex", "date_created", "created_at", "updated_at"},
		len(profiles),
		func(i int, now time.Time) []any {
			m := profiles[i]
			return []any{m.UserID, m.DisplayName, m.WebsiteURLs, m.SocialHandles, m.PortraitURLs,
				m.Sex, m.DateCreated, now, now}
		},
	)
}

// LoadHosts bulk-inserts host metadata using PostgreSQL COPY
func (r *seedRepo) LoadHosts(ctx context.Context, hosts []*models.Host) (int, error) {
	return r.copyLoad(ctx, "hosts",
		[]string{"user_id", "name", "description", "summary", "social_handles", "host_tags",
			"default_date_time", "default_duration", "date_created", "created_at", "updated_at"},
		len(hosts),
		func(i int, now time.Time) []any {
			h := hosts[i]
			return []any{h.UserID, h.Name, h.Description, h.Summary, h.SocialHandles, h.HostTags,
				h.DefaultDateTime, h.DefaultDuration, h.DateCreated, now, now}
		},
	)
}

// LoadEvents bulk-inserts events using PostgreSQL COPY. Join ids must already
// be resolved; the database assigns event ids in slice order, which keeps the
// anchor-index convention intact.
func (r *seedRepo) LoadEvents(ctx context.Context, events []*models.Event) (int, error) {
	return r.copyLoad(ctx, "events",
		[]string{"host_user_id", "venue_id", "name", "description", "frequency", "week_day",
			"images", "pricing_table", "pricing_text", "pricing_tags", "pose_format",
			"created_at", "updated_at"},
		len(events),
		func(i int, now time.Time) []any {
			e := events[i]
			return []any{e.HostUserID, e.VenueID, e.Name, e.Description, e.Frequency, e.WeekDay,
				e.Images, e.PricingTable, e.PricingText, e.PricingTags, e.PoseFormat, now, now}
		},
	)
}

// LoadSessions bulk-inserts calendar sessions using PostgreSQL COPY
func (r *seedRepo) LoadSessions(ctx context.Context, sessions []*models.CalendarSession) (int, error) {
	return r.copyLoad(ctx, "calendar",
		[]string{"event_id", "model_user_id", "status", "attendance_inperson", "attendance_online",
			"date_time", "duration", "pose_format", "created_at", "updated_at"},
		len(sessions),
		func(i int, now time.Time) []any {
			s := sessions[i]
			return []any{s.EventID, s.ModelUserID, s.Status, s.AttendanceInPerson, s.AttendanceOnline,
				s.DateTime, s.Duration, s.PoseFormat, now, now}
		},
	)
}

// copyLoad runs one COPY transaction over n rows
func (r *seedRepo) copyLoad(ctx context.Context, table string, columns []string, n int, row func(int, time.Time) []any) (int, error) {
	if n == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	now := time.Now()
	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, row(i, now)...); err != nil {
			return 0, err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return n, nil
}
