package models

import (
	"time"
)

// User represents an account row: credentials and global flags only, the
// profile lives in UserProfile.
type User struct {
	ID             int64      `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	IsGlobalActive bool       `json:"is_global_active" db:"is_global_active"`
	IsAdmin        bool       `json:"is_admin" db:"is_admin"`
	DateCreated    *time.Time `json:"date_created,omitempty" db:"date_created"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// UserProfile holds the public-facing profile for a user.
type UserProfile struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Handle      string    `json:"handle" db:"handle"`
	Fullname    string    `json:"fullname" db:"fullname"`
	PhoneNumber string    `json:"phone_number,omitempty" db:"phone_number"`
	AvatarURL   string    `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and the authenticated user.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
