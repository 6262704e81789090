package export

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// StaticVenue is a curated venue record from the static postcode dictionary.
type StaticVenue struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	County       string `json:"county"`
	Postcode     string `json:"postcode"`
	Area         string `json:"area"`
	TZ           string `json:"tz"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
	CreatedOn    string `json:"created_on"`
}

// HostContact is static contact metadata for an event organizer.
type HostContact struct {
	Name        string `json:"name"`
	Handle      string `json:"handle"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Logline     string `json:"logline"`
}

// matchKeys returns every string under which this contact can be joined to a
// venue slug: the raw name, its lowercase form, the handle, and the slug.
func (c HostContact) matchKeys() map[string]bool {
	keys := make(map[string]bool)
	for _, k := range []string{
		strings.TrimSpace(c.Name),
		strings.ToLower(strings.TrimSpace(c.Name)),
		c.Handle,
		Slugify(c.Name),
	} {
		if k != "" {
			keys[k] = true
		}
	}
	return keys
}

// LoadStaticVenues reads the static venue dictionary file.
func LoadStaticVenues(path string) ([]StaticVenue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read static venues: %w", err)
	}
	var venues []StaticVenue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("parse static venues: %w", err)
	}
	return venues, nil
}

// LoadHostContacts reads the static host contact metadata file.
func LoadHostContacts(path string) ([]HostContact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read host contacts: %w", err)
	}
	var contacts []HostContact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("parse host contacts: %w", err)
	}
	return contacts, nil
}

var (
	closedVenueRe = regexp.MustCompile(`(?i)close`)
	gmtRe         = regexp.MustCompile(`(?i)gmt`)
)

const defaultLogline = "Regular Life Drawing Sessions"

// BuildVenueHosts cross-references the raw venue sheet against the postcode
// dictionary and host contact metadata to produce host-type entries, one per
// venue still in operation. Venues whose attended marker matches "close" are
// permanently discontinued and excluded from every downstream table.
func BuildVenueHosts(raw RawExport, dictionary []StaticVenue, contacts []HostContact, log zerolog.Logger) ([]*Entry, []Issue, error) {
	sheet, ok := raw["venues"]
	if !ok || sheet == nil {
		return nil, nil, fmt.Errorf("raw export has no venues sheet")
	}

	byPostcode := make(map[string]StaticVenue, len(dictionary))
	for _, v := range dictionary {
		byPostcode[strings.ToUpper(v.Postcode)] = v
	}

	var open []Row
	for _, venue := range sheet.Records {
		if closedVenueRe.MatchString(venue.Get("attended")) {
			continue
		}
		open = append(open, venue)
	}

	log.Info().Int("venues", len(open)).Msg("Processing venues")

	var entries []*Entry
	var issues []Issue

	for n, venue := range open {
		name := venue.Get("name")
		if name == "" {
			name = fmt.Sprintf("venue-%d", n+1)
		}
		key := Slugify(name)
		placeholder := key + "@placeholder.com"

		contact := findContact(contacts, key)

		static, matched := byPostcode[strings.ToUpper(venue.Get("postcode"))]
		if !matched {
			static = StaticVenue{
				AddressLine1: venue.Get("address"),
				City:         "London",
				Postcode:     venue.Get("postcode"),
				Area:         venue.Get("area"),
				TZ:           normalizeTZ(venue.Get("tz")),
			}
		}

		matchPostcode := ""
		if matched {
			matchPostcode = venue.Get("postcode")
		}

		contactEmail := contact.Email
		if contactEmail == "" {
			contactEmail = placeholder
		}

		logline := contact.Logline
		if logline == "" {
			logline = defaultLogline
		}

		schedule, err := DefaultDateTime(
			orDefault(venue.Get("time"), "7 PM"),
			orDefault(venue.Get("duration"), "2"),
			orDefault(venue.Get("dayno"), "1"),
		)
		if err != nil {
			log.Warn().Err(err).Str("venue", name).Msg("Unparseable schedule, using default slot")
			issues = append(issues, Issue{Sheet: "venues", Slug: key, Field: "time", Message: err.Error()})
			schedule, _ = DefaultDateTime("7 PM", "2", "1")
		}

		dateCreated := static.CreatedOn
		if dateCreated == "" {
			dateCreated = venue.Get("dateAdded")
		}

		handle := contact.Handle
		if handle == "" {
			handle = key
		}

		entry := &Entry{
			Kind:  KindHost,
			Sheet: "hosts",
			Slug:  Slugify(venue.Get("name")),
			Index: n + 1,

			MatchPostcode:  matchPostcode,
			Fullname:       venue.Get("name"),
			Email:          strings.ToLower(strings.TrimSpace(contactEmail)),
			PasswordHash:   HashPassword(contactEmail, contact.Password),
			UserStatus:     "unconfirmed",
			IsGlobalActive: true,
			IsAdmin:        false,

			PhoneNumber:    "",
			Handle:         handle,
			Description:    contact.Description,
			Summary:        contact.Summary,
			Logline:        logline,
			AvatarURL:      "",
			InterestTags:   "[]",
			FlagEmoji:      whiteFlag,
			AffiliateURLs:  "[]",
			PaymentMethods: paymentMethodsJSON("", "", ""),

			Schedule: schedule,

			DisplayName:   venue.Get("name"),
			SocialHandles: hostSocialHandles(venue),
			HostTags:      hostTagsJSON(venue.Get("tag")),

			Name:         static.Name,
			AddressLine1: static.AddressLine1,
			AddressLine2: static.AddressLine2,
			City:         static.City,
			County:       static.County,
			Postcode:     static.Postcode,
			Area:         static.Area,
			TZ:           orDefault(static.TZ, "Europe/London"),
			Latitude:     static.Latitude,
			Longitude:    static.Longitude,
			DateCreated:  dateCreated,

			EventName:    venue.Get("fullname", "name"),
			Frequency:    venue.Get("frequency"),
			WeekDay:      venue.Get("day"),
			PricingTable: pricingTableJSON(venue.Get("inperson"), venue.Get("online")),
			PricingText:  venue.Get("comments"),
			WebsiteURLs:  quotedList(venue.Get("website")),
		}

		entry.REF = map[string]string{
			"events.name":             entry.Fullname,
			"venues.name":             entry.Name,
			"venues.address_postcode": entry.Postcode,
			"users.email":             entry.Email,
			"users.handle":            entry.Handle,
		}

		log.Debug().
			Int("index", n+1).
			Str("fullname", entry.Fullname).
			Str("name", entry.Name).
			Str("handle", entry.Handle).
			Str("postcode", entry.Postcode).
			Str("email", entry.Email).
			Msg("Venue synthesized")

		entries = append(entries, entry)
	}

	return entries, issues, nil
}

func findContact(contacts []HostContact, key string) HostContact {
	for _, c := range contacts {
		if c.matchKeys()[key] {
			return c
		}
	}
	return HostContact{}
}

func normalizeTZ(tz string) string {
	if tz == "" || gmtRe.MatchString(tz) {
		return "Europe/London"
	}
	return tz
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// hostSocialHandles serializes the host shape: one object with a key per
// network, null when absent. Models use a list shape instead.
func hostSocialHandles(venue Row) string {
	return mustJSON(struct {
		Instagram *string `json:"instagram"`
		Twitter   *string `json:"twitter"`
		Facebook  *string `json:"facebook"`
	}{
		Instagram: nullable(venue.Get("instagram")),
		Twitter:   nullable(venue.Get("twitter")),
		Facebook:  nullable(venue.Get("facebook")),
	})
}

func hostTagsJSON(raw string) string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ";") {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	return mustJSON(tags)
}

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// pricingTableJSON builds the [channel, price] pair list. Prices keep only
// digits and dots; a value that strips to nothing becomes null, never zero.
func pricingTableJSON(inperson, online string) string {
	return mustJSON([][2]any{
		{"inperson", nullable(nonPriceChars.ReplaceAllString(inperson, ""))},
		{"online", nullable(nonPriceChars.ReplaceAllString(online, ""))},
	})
}
