package export

import "strings"

// Rel links a projected row back to its user by email; join resolution
// happens at load time.
type Rel struct {
	Email string `json:"email"`
}

// UserRow is the destination users table row shape.
type UserRow struct {
	Email          string `json:"email"`
	PasswordHash   string `json:"password_hash"`
	IsGlobalActive bool   `json:"is_global_active"`
	IsAdmin        bool   `json:"is_admin"`
	DateCreated    string `json:"date_created"`
}

// UserProfileRow is the destination user_profiles table row shape.
type UserProfileRow struct {
	Rel Rel `json:"REL"`

	Handle      string `json:"handle"`
	Fullname    string `json:"fullname"`
	PhoneNumber string `json:"phone_number"`
	AvatarURL   string `json:"avatar_url"`
}

// ModelRow is the destination models table row shape.
type ModelRow struct {
	Rel Rel `json:"REL"`

	DisplayName   string `json:"display_name"`
	WebsiteURLs   string `json:"website_urls"`
	SocialHandles string `json:"social_handles"`
	PortraitURLs  string `json:"portrait_urls"`
	Sex           string `json:"sex"`
	DateCreated   string `json:"date_created"`
}

// HostRel links a host row to its user and directory key.
type HostRel struct {
	Email string `json:"email"`
	Key   string `json:"key"`
}

// HostRow is the destination hosts table row shape.
type HostRow struct {
	Rel HostRel           `json:"REL"`
	Ref map[string]string `json:"REF,omitempty"`

	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Summary         string   `json:"summary"`
	SocialHandles   string   `json:"social_handles"`
	HostTags        string   `json:"host_tags"`
	DefaultDateTime string   `json:"default_date_time"`
	DefaultDuration *float64 `json:"default_duration"`
	DateCreated     string   `json:"date_created"`
}

// VenueRow is the destination venues table row shape.
type VenueRow struct {
	Rel Rel `json:"REL"`

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
	DateCreated     string `json:"date_created"`
}

// Each projector is a pure function over the directory: it filters entries
// by kind, maps a fixed column subset, and preserves the directory's
// insertion order. Any join information a row needs was already placed on
// the entry during synthesis.

// MakeUsers projects the credentials row for every directory entry.
func MakeUsers(dir *Directory) []UserRow {
	rows := make([]UserRow, 0, dir.Len())
	for _, e := range dir.Entries() {
		rows = append(rows, UserRow{
			Email:          e.Email,
			PasswordHash:   e.PasswordHash,
			IsGlobalActive: e.IsGlobalActive,
			IsAdmin:        e.IsAdmin,
			DateCreated:    e.DateCreated,
		})
	}
	return rows
}

// MakeUserProfiles projects the profile row for every directory entry.
func MakeUserProfiles(dir *Directory) []UserProfileRow {
	rows := make([]UserProfileRow, 0, dir.Len())
	for _, e := range dir.Entries() {
		rows = append(rows, UserProfileRow{
			Rel:         Rel{Email: e.Email},
			Handle:      e.Handle,
			Fullname:    e.Fullname,
			PhoneNumber: e.PhoneNumber,
			AvatarURL:   e.AvatarURL,
		})
	}
	return rows
}

// MakeModels projects model rows for model-kind entries only.
func MakeModels(dir *Directory) []ModelRow {
	var rows []ModelRow
	for _, e := range dir.Entries() {
		if e.Kind != KindModel {
			continue
		}
		rows = append(rows, ModelRow{
			Rel:           Rel{Email: e.Email},
			DisplayName:   e.DisplayName,
			WebsiteURLs:   e.WebsiteURLs,
			SocialHandles: e.SocialHandles,
			PortraitURLs:  e.PortraitURLs,
			Sex:           e.Sex,
			DateCreated:   e.DateCreated,
		})
	}
	return rows
}

// MakeHosts projects host rows for host-kind entries only.
func MakeHosts(dir *Directory) []HostRow {
	var rows []HostRow
	for _, e := range dir.Entries() {
		if e.Kind != KindHost {
			continue
		}
		rows = append(rows, HostRow{
			Rel:             HostRel{Email: e.Email, Key: e.Slug},
			Ref:             e.REF,
			Name:            firstNonEmpty(e.Name, e.Fullname, e.Slug),
			Description:     e.Description,
			Summary:         e.Summary,
			SocialHandles:   e.SocialHandles,
			HostTags:        e.HostTags,
			DefaultDateTime: e.Schedule.ISO(),
			DefaultDuration: e.Schedule.Duration,
			DateCreated:     e.DateCreated,
		})
	}
	return rows
}

// MakeVenues projects venue rows for host-kind entries only. Missing address
// detail falls back to splitting the first address line on its comma.
func MakeVenues(dir *Directory) []VenueRow {
	var rows []VenueRow
	for _, e := range dir.Entries() {
		if e.Kind != KindHost {
			continue
		}

		venueName, venueStreet := splitAddressLine(e.AddressLine1)

		rows = append(rows, VenueRow{
			Rel:             Rel{Email: e.Email},
			Name:            firstNonEmpty(e.Name, venueName, "Unknown Venue"),
			AddressLine1:    e.AddressLine1,
			AddressLine2:    firstNonEmpty(e.AddressLine2, venueStreet),
			AddressCity:     firstNonEmpty(e.City, "London"),
			AddressCounty:   e.County,
			AddressPostcode: e.Postcode,
			AddressArea:     e.Area,
			TZ:              firstNonEmpty(e.TZ, "Europe/London"),
			Latitude:        e.Latitude,
			Longitude:       e.Longitude,
			DateCreated:     e.DateCreated,
		})
	}
	return rows
}

func splitAddressLine(line string) (name, street string) {
	parts := strings.SplitN(line, ",", 2)
	name = parts[0]
	if len(parts) > 1 {
		street = parts[1]
	}
	return name, street
}
