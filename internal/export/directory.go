package export

import "strings"

// Kind classifies a directory entry. The legacy pipeline dispatched on regex
// matches against the source sheet title; the tagged enum makes the
// projector selection explicit and exhaustive.
type Kind int

const (
	KindSystem Kind = iota
	KindModel
	KindHost
	KindArtist
)

func (k Kind) String() string {
	switch k {
	case KindSystem:
		return "system"
	case KindModel:
		return "model"
	case KindHost:
		return "host"
	case KindArtist:
		return "artist"
	}
	return "unknown"
}

// KindForSheet maps a legacy sheet title onto an entry kind. Sheets that are
// neither model nor host shaped hold artist-like subscriber records.
func KindForSheet(title string) Kind {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "model"):
		return KindModel
	case strings.Contains(t, "host"), strings.Contains(t, "venue"):
		return KindHost
	default:
		return KindArtist
	}
}

// Entry is the unified user/host record, the pivot structure of the import.
// JSON-shaped fields (InterestTags, PaymentMethods, PricingTable, ...) are
// pre-serialized strings at the point they leave this pipeline; the table
// layer never re-interprets them.
type Entry struct {
	Kind  Kind
	Sheet string
	Slug  string

	// users
	Fullname       string
	Handle         string
	Email          string
	PasswordHash   string
	UserStatus     string
	IsGlobalActive bool
	IsAdmin        bool

	// user_profiles
	PhoneNumber    string
	Description    string
	Summary        string
	Logline        string
	AvatarURL      string
	InterestTags   string
	FlagEmoji      string
	AffiliateURLs  string
	PaymentMethods string

	// models
	DisplayName   string
	WebsiteURLs   string
	PortraitURLs  string
	SocialHandles string
	Sex           string

	DateCreated string
	TZ          string

	// hosts / venues
	Index         int
	MatchPostcode string
	Name          string
	AddressLine1  string
	AddressLine2  string
	City          string
	County        string
	Postcode      string
	Area          string
	Latitude      string
	Longitude     string
	Schedule      Schedule
	EventName     string
	Frequency     string
	WeekDay       string
	PricingTable  string
	PricingText   string
	HostTags      string

	// REF records which exact strings keyed the venue/user/event joins at
	// synthesis time; the event matcher treats it as an authoritative
	// override.
	REF map[string]string
}

// Conflict records a suppressed or superseding write for the same slug.
// Callers and tests assert on these instead of scraping logs.
type Conflict struct {
	Slug       string `json:"slug"`
	Sheet      string `json:"sheet"`
	Fullname   string `json:"fullname"`
	Resolution string `json:"resolution"` // "kept-first" or "replaced"
}

// Directory is the in-memory mapping from slug to merged entry. It preserves
// insertion order so projections are deterministic, and it is built once per
// run and discarded after projection.
type Directory struct {
	entries   map[string]*Entry
	order     []string
	conflicts []Conflict
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{entries: make(map[string]*Entry)}
}

// Put inserts the entry under its slug. The first writer wins: a second
// write for the same slug is suppressed and recorded as a conflict.
func (d *Directory) Put(e *Entry) bool {
	if _, exists := d.entries[e.Slug]; exists {
		d.conflicts = append(d.conflicts, Conflict{
			Slug:       e.Slug,
			Sheet:      e.Sheet,
			Fullname:   e.Fullname,
			Resolution: "kept-first",
		})
		return false
	}
	d.entries[e.Slug] = e
	d.order = append(d.order, e.Slug)
	return true
}

// Override replaces any existing entry for the slug. The venue-derived host
// records are layered over the form-export users last, so on a shared slug
// the host record wins; that union order is deliberate and is how legacy
// venue names merge with host contact records. Supersessions are still
// surfaced as conflicts.
func (d *Directory) Override(e *Entry) {
	if _, exists := d.entries[e.Slug]; exists {
		d.conflicts = append(d.conflicts, Conflict{
			Slug:       e.Slug,
			Sheet:      e.Sheet,
			Fullname:   e.Fullname,
			Resolution: "replaced",
		})
		d.entries[e.Slug] = e
		return
	}
	d.entries[e.Slug] = e
	d.order = append(d.order, e.Slug)
}

// Get returns the entry for a slug.
func (d *Directory) Get(slug string) (*Entry, bool) {
	e, ok := d.entries[slug]
	return e, ok
}

// Entries returns all entries in insertion order.
func (d *Directory) Entries() []*Entry {
	out := make([]*Entry, 0, len(d.order))
	for _, slug := range d.order {
		out = append(out, d.entries[slug])
	}
	return out
}

// Conflicts returns the suppressed and superseding writes seen so far.
func (d *Directory) Conflicts() []Conflict {
	return d.conflicts
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	return len(d.order)
}
