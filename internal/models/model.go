package models

import (
	"time"
)

// ModelProfile represents a life model's public listing. JSON-shaped columns
// (website_urls, social_handles, portrait_urls) are stored as serialized
// text, matching the seeded legacy shape.
type ModelProfile struct {
	ID            int64      `json:"id" db:"id"`
	UserID        int64      `json:"user_id" db:"user_id"`
	DisplayName   string     `json:"display_name" db:"display_name"`
	WebsiteURLs   string     `json:"website_urls,omitempty" db:"website_urls"`
	SocialHandles string     `json:"social_handles,omitempty" db:"social_handles"`
	PortraitURLs  string     `json:"portrait_urls,omitempty" db:"portrait_urls"`
	Sex           string     `json:"sex" db:"sex"`
	DateCreated   *time.Time `json:"date_created,omitempty" db:"date_created"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// ValidSexes defines the sex enum values.
var ValidSexes = map[string]bool{
	"male":        true,
	"female":      true,
	"unspecified": true,
}

// ModelRegisterRequest is the public model sign-up payload: an account plus
// its model listing in one step.
type ModelRegisterRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Fullname      string `json:"fullname"`
	DisplayName   string `json:"display_name"`
	PhoneNumber   string `json:"phone_number"`
	WebsiteURLs   string `json:"website_urls"`
	SocialHandles string `json:"social_handles"`
	PortraitURLs  string `json:"portrait_urls"`
	Sex           string `json:"sex"`
}

// ModelRequest is the create/update payload for a model profile.
type ModelRequest struct {
	UserID        int64  `json:"user_id"`
	DisplayName   string `json:"display_name"`
	WebsiteURLs   string `json:"website_urls"`
	SocialHandles string `json:"social_handles"`
	PortraitURLs  string `json:"portrait_urls"`
	Sex           string `json:"sex"`
}
