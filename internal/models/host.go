package models

import (
	"time"
)

// Host is the organizer metadata seeded alongside a host's user account:
// event defaults and public blurbs. Hosts are written only by the import, so
// the API exposes them read-only.
type Host struct {
	ID              int64      `json:"id" db:"id"`
	UserID          *int64     `json:"user_id,omitempty" db:"user_id"`
	Name            string     `json:"name" db:"name"`
	Description     string     `json:"description,omitempty" db:"description"`
	Summary         string     `json:"summary,omitempty" db:"summary"`
	SocialHandles   string     `json:"social_handles,omitempty" db:"social_handles"`
	HostTags        string     `json:"host_tags,omitempty" db:"host_tags"`
	DefaultDateTime *time.Time `json:"default_date_time,omitempty" db:"default_date_time"`
	DefaultDuration *float64   `json:"default_duration,omitempty" db:"default_duration"`
	DateCreated     *time.Time `json:"date_created,omitempty" db:"date_created"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
