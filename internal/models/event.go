package models

import (
	"time"
)

// Event represents a recurring drawing event run by a host at a venue.
// VenueID is nullable: the import leaves an event unattached when no venue
// matched.
type Event struct {
	ID           int64     `json:"id" db:"id"`
	HostUserID   *int64    `json:"host_user_id,omitempty" db:"host_user_id"`
	VenueID      *int64    `json:"venue_id,omitempty" db:"venue_id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description,omitempty" db:"description"`
	Frequency    string    `json:"frequency" db:"frequency"`
	WeekDay      string    `json:"week_day" db:"week_day"`
	Images       string    `json:"images,omitempty" db:"images"`
	PricingTable string    `json:"pricing_table,omitempty" db:"pricing_table"`
	PricingText  string    `json:"pricing_text,omitempty" db:"pricing_text"`
	PricingTags  string    `json:"pricing_tags,omitempty" db:"pricing_tags"`
	PoseFormat   string    `json:"pose_format,omitempty" db:"pose_format"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// EventRequest is the create/update payload for an event.
type EventRequest struct {
	HostUserID   *int64 `json:"host_user_id"`
	VenueID      *int64 `json:"venue_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Frequency    string `json:"frequency"`
	WeekDay      string `json:"week_day"`
	PricingTable string `json:"pricing_table"`
	PricingText  string `json:"pricing_text"`
	PoseFormat   string `json:"pose_format"`
}

// SessionStatus is the lifecycle state of a calendar session.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusOpenCall  SessionStatus = "opencall"
	SessionStatusConfirmed SessionStatus = "confirmed"
	SessionStatusClosed    SessionStatus = "closed"
)

// ValidSessionStatuses defines allowed session statuses.
var ValidSessionStatuses = map[SessionStatus]bool{
	SessionStatusPending:   true,
	SessionStatusOpenCall:  true,
	SessionStatusConfirmed: true,
	SessionStatusClosed:    true,
}

// CalendarSession represents one scheduled or historical session of an event.
// ModelUserID is nullable for sessions whose model never resolved during
// import.
type CalendarSession struct {
	ID                 int64         `json:"id" db:"id"`
	EventID            int64         `json:"event_id" db:"event_id"`
	ModelUserID        *int64        `json:"model_user_id,omitempty" db:"model_user_id"`
	Status             SessionStatus `json:"status" db:"status"`
	AttendanceInPerson float64       `json:"attendance_inperson" db:"attendance_inperson"`
	AttendanceOnline   float64       `json:"attendance_online" db:"attendance_online"`
	DateTime           time.Time     `json:"date_time" db:"date_time"`
	Duration           float64       `json:"duration" db:"duration"`
	PoseFormat         string        `json:"pose_format,omitempty" db:"pose_format"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`
}

// SessionRequest is the create/update payload for a calendar session.
type SessionRequest struct {
	EventID            int64   `json:"event_id"`
	ModelUserID        *int64  `json:"model_user_id"`
	Status             string  `json:"status"`
	AttendanceInPerson float64 `json:"attendance_inperson"`
	AttendanceOnline   float64 `json:"attendance_online"`
	DateTime           string  `json:"date_time"`
	Duration           float64 `json:"duration"`
	PoseFormat         string  `json:"pose_format"`
}
