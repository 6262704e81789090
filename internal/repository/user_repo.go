package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, password_hash, is_global_active, is_admin, date_created, created_at, updated_at`

// Create inserts a new user and fills in its generated id
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, is_global_active, is_admin, date_created, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.IsGlobalActive, user.IsAdmin,
		user.DateCreated, now, now,
	).Scan(&user.ID)
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail retrieves a user by email
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepo) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.IsGlobalActive, &user.IsAdmin,
		&user.DateCreated, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists checks if a user with the given email exists
func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

// List retrieves all users ordered by id
func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID, &user.Email, &user.PasswordHash, &user.IsGlobalActive, &user.IsAdmin,
			&user.DateCreated, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// Update updates a user's mutable fields
func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, is_global_active = $2, is_admin = $3, updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query,
		user.Email, user.IsGlobalActive, user.IsAdmin, time.Now(), user.ID,
	)
	return err
}

// Delete removes a user and its dependent rows via FK cascade
func (r *userRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	return err
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// CreateProfile inserts the profile row for a user
func (r *userRepo) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, handle, fullname, phone_number, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.Handle, profile.Fullname, profile.PhoneNumber, profile.AvatarURL,
		now, now,
	).Scan(&profile.ID)
}

// GetProfile retrieves the profile for a user
func (r *userRepo) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	query := `
		SELECT id, user_id, handle, fullname, phone_number, avatar_url, created_at, updated_at
		FROM user_profiles WHERE user_id = $1
	`
	var profile models.UserProfile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.Handle, &profile.Fullname,
		&profile.PhoneNumber, &profile.AvatarURL, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListProfiles retrieves all user profiles ordered by user id
func (r *userRepo) ListProfiles(ctx context.Context) ([]*models.UserProfile, error) {
	query := `
		SELECT id, user_id, handle, fullname, phone_number, avatar_url, created_at, updated_at
		FROM user_profiles ORDER BY user_id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.UserProfile
	for rows.Next() {
		var profile models.UserProfile
		err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.Handle, &profile.Fullname,
			&profile.PhoneNumber, &profile.AvatarURL, &profile.CreatedAt, &profile.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, &profile)
	}
	return profiles, rows.Err()
}

// UpdateProfile updates a profile's mutable fields
func (r *userRepo) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET handle = $1, fullname = $2, phone_number = $3, avatar_url = $4, updated_at = $5
		WHERE user_id = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.Handle, profile.Fullname, profile.PhoneNumber, profile.AvatarURL,
		time.Now(), profile.UserID,
	)
	return err
}
