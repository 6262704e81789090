package models

import (
	"time"
)

// Venue represents a physical venue where sessions take place.
type Venue struct {
	ID              int64      `json:"id" db:"id"`
	UserID          *int64     `json:"user_id,omitempty" db:"user_id"`
	Name            string     `json:"name" db:"name"`
	AddressLine1    string     `json:"address_line_1,omitempty" db:"address_line_1"`
	AddressLine2    string     `json:"address_line_2,omitempty" db:"address_line_2"`
	AddressCity     string     `json:"address_city,omitempty" db:"address_city"`
	AddressCounty   string     `json:"address_county,omitempty" db:"address_county"`
	AddressPostcode string     `json:"address_postcode,omitempty" db:"address_postcode"`
	AddressArea     string     `json:"address_area,omitempty" db:"address_area"`
	TZ              string     `json:"tz" db:"tz"`
	Latitude        string     `json:"latitude,omitempty" db:"latitude"`
	Longitude       string     `json:"longitude,omitempty" db:"longitude"`
	DateCreated     *time.Time `json:"date_created,omitempty" db:"date_created"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// VenueRequest is the create/update payload for a venue.
type VenueRequest struct {
	Name            string `json:"name"`
	AddressLine1    string `json:"address_line_1"`
	AddressLine2    string `json:"address_line_2"`
	AddressCity     string `json:"address_city"`
	AddressCounty   string `json:"address_county"`
	AddressPostcode string `json:"address_postcode"`
	AddressArea     string `json:"address_area"`
	TZ              string `json:"tz"`
	Latitude        string `json:"latitude"`
	Longitude       string `json:"longitude"`
}
