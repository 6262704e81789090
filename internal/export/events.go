package export

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// EventRel carries the join keys a seeded event row needs downstream: the
// host's user email, the resolved venue name (nil when unmatched), and the
// host display name.
type EventRel struct {
	Email    string  `json:"email"`
	Key      *string `json:"key"`
	HostName string  `json:"host_name"`
}

// EventRow is the destination events table row shape.
type EventRow struct {
	Rel EventRel `json:"REL"`

	Name         string `json:"name"`
	Description  string `json:"description"`
	Frequency    string `json:"frequency"`
	WeekDay      string `json:"week_day"`
	Images       string `json:"images"`
	PricingTable string `json:"pricing_table"`
	PricingText  string `json:"pricing_text"`
	PricingTags  string `json:"pricing_tags"`
	PoseFormat   string `json:"pose_format"`
}

// Matching strategy names, in precedence order. The order is itself the
// contract: same inputs always resolve the same way, and an explicit
// reference always beats a text hit.
const (
	MatchRef      = "ref"
	MatchLookup   = "lookup"
	MatchText     = "text"
	MatchIdentity = "identity"
)

// BuildHostVenueMap derives host name → venue name associations from the raw
// venue sheet, using the first line of each venue's address field.
func BuildHostVenueMap(raw RawExport) map[string]string {
	m := make(map[string]string)
	sheet, ok := raw["venues"]
	if !ok || sheet == nil {
		return m
	}
	for _, record := range sheet.Records {
		name := record.Get("name")
		address := record.Get("address")
		if name == "" || address == "" {
			continue
		}
		firstLine := strings.TrimSpace(strings.SplitN(address, "\n", 2)[0])
		m[strings.ToLower(strings.TrimSpace(name))] = firstLine
	}
	return m
}

// ResolveVenue resolves which physical venue a host's recurring event occurs
// at, trying each strategy in strict precedence with no backtracking:
//
//  1. the entry's explicit REF["venues.name"] reference,
//  2. the raw-export host→venue-name lookup map,
//  3. free-text containment search over the host's name/description fields,
//     testing venue names longest first so specific beats generic,
//  4. identity: the host's own name equals a venue's name.
//
// A best-effort heuristic join: no match leaves the event unattached, not an
// error.
func ResolveVenue(entry *Entry, hostName string, contact HostContact, venues []StaticVenue, hostVenueMap map[string]string) (*StaticVenue, string) {
	if ref := entry.REF["venues.name"]; ref != "" {
		if v := findVenueByName(venues, ref); v != nil {
			return v, MatchRef
		}
	}

	if hostName != "" {
		if mapped := hostVenueMap[strings.ToLower(hostName)]; mapped != "" {
			if v := findVenueByName(venues, mapped); v != nil {
				return v, MatchLookup
			}
		}
	}

	blob := strings.ToLower(strings.Join([]string{
		entry.Fullname, entry.EventName, contact.Description, contact.Summary, entry.Description,
	}, " "))
	for _, v := range venuesByNameLength(venues) {
		name := strings.ToLower(v.Name)
		if name != "" && strings.Contains(blob, name) {
			return v, MatchText
		}
	}

	if v := findVenueByName(venues, entry.Fullname); v != nil {
		return v, MatchIdentity
	}

	return nil, ""
}

// MakeEvents projects one event row per host entry, resolving the venue via
// the matching cascade.
func MakeEvents(dir *Directory, venues []StaticVenue, contacts []HostContact, hostVenueMap map[string]string, log zerolog.Logger) []EventRow {
	var rows []EventRow

	for _, entry := range dir.Entries() {
		if entry.Kind != KindHost {
			continue
		}

		contact := findEventContact(contacts, entry)

		hostName := entry.REF["events.name"]
		if hostName == "" {
			hostName = contact.Name
		}
		if hostName == "" {
			hostName = entry.Fullname
		}

		venue, strategy := ResolveVenue(entry, hostName, contact, venues, hostVenueMap)
		var venueName *string
		if venue != nil {
			venueName = &venue.Name
		} else {
			log.Warn().Str("host", hostName).Msg("No venue match, event left unattached")
		}
		if venue != nil {
			log.Debug().Str("host", hostName).Str("venue", venue.Name).Str("strategy", strategy).Msg("Venue resolved")
		}

		email := contact.Email
		if email == "" {
			email = entry.Email
		}

		rows = append(rows, EventRow{
			Rel: EventRel{
				Email:    email,
				Key:      venueName,
				HostName: hostName,
			},
			Name:         firstNonEmpty(hostName, entry.EventName, "Life Drawing Session"),
			Description:  firstNonEmpty(contact.Summary, contact.Description, entry.Summary, entry.Description),
			Frequency:    firstNonEmpty(entry.Frequency, "weekly"),
			WeekDay:      firstNonEmpty(entry.WeekDay, "unknown"),
			Images:       "[]",
			PricingTable: firstNonEmpty(entry.PricingTable, "[]"),
			PricingText:  entry.PricingText,
			PricingTags:  "[]",
			PoseFormat:   "Mixed poses: gesture, short, medium, long",
		})
	}

	return rows
}

// findEventContact matches a host entry to its contact metadata by email,
// handle, or name.
func findEventContact(contacts []HostContact, entry *Entry) HostContact {
	for _, c := range contacts {
		if entry.Email != "" && c.Email != "" && strings.EqualFold(c.Email, entry.Email) {
			return c
		}
		if c.Handle != "" && c.Handle == entry.Slug {
			return c
		}
		if strings.EqualFold(c.Name, entry.Fullname) {
			return c
		}
	}
	return HostContact{}
}

func findVenueByName(venues []StaticVenue, name string) *StaticVenue {
	for i := range venues {
		if strings.EqualFold(venues[i].Name, name) {
			return &venues[i]
		}
	}
	return nil
}

// venuesByNameLength returns the venues sorted longest name first; ties keep
// dictionary order.
func venuesByNameLength(venues []StaticVenue) []*StaticVenue {
	sorted := make([]*StaticVenue, len(venues))
	for i := range venues {
		sorted[i] = &venues[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Name) > len(sorted[j].Name)
	})
	return sorted
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
