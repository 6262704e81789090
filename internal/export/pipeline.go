package export

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/rs/zerolog"
)

// Tables is the single output document of an import run, keyed by
// destination table name and ready for bulk load.
type Tables struct {
	Users         []UserRow        `json:"users"`
	UserProfiles  []UserProfileRow `json:"user_profiles"`
	Venues        []VenueRow       `json:"venues"`
	Models        []ModelRow       `json:"models"`
	Hosts         []HostRow        `json:"hosts"`
	Events        []EventRow       `json:"events"`
	Calendar      []CalendarRow    `json:"calendar"`
	ExchangeRates []ExchangeRate   `json:"exchange_rates"`
}

// Report collects the soft problems of a run: suppressed directory merges
// and per-row validation issues. Callers assert on it instead of scraping
// logs.
type Report struct {
	Conflicts []Conflict `json:"conflicts"`
	Issues    []Issue    `json:"issues"`
}

// PipelineOptions configures a single import run.
type PipelineOptions struct {
	AdminEmail    string
	AdminPassword string
	TesterPrefix  string
	// AnchorVenue names the venue whose projected index supplies the fixed
	// event id every historical calendar session is bound to.
	AnchorVenue string
}

// Pipeline transforms the raw legacy export into the normalized tables
// document. It is single-threaded and runs to completion; the directory it
// builds lives only for the duration of Run.
type Pipeline struct {
	Raw          RawExport
	StaticVenues []StaticVenue
	HostContacts []HostContact
	Rates        *RatesDocument
	Options      PipelineOptions

	Log zerolog.Logger
}

// Run builds the unified directory, projects every destination table, and
// returns the tables document with the run report. Same inputs always
// produce the same output; a failed run is re-run from scratch, never
// resumed.
func (p *Pipeline) Run() (*Tables, *Report, error) {
	log := p.Log.With().Str("component", "pipeline").Logger()
	report := &Report{}

	dir, issues := BuildUsers(p.Raw, UserSynthOptions{
		AdminEmail:    p.Options.AdminEmail,
		AdminPassword: p.Options.AdminPassword,
		TesterPrefix:  p.Options.TesterPrefix,
	}, log)
	report.Issues = append(report.Issues, issues...)

	hostEntries, issues, err := BuildVenueHosts(p.Raw, p.StaticVenues, p.HostContacts, log)
	if err != nil {
		return nil, nil, err
	}
	report.Issues = append(report.Issues, issues...)

	// Venue-derived host records are layered last so they supersede form
	// export rows sharing a slug; that is how legacy venue names merge with
	// host contact records.
	for _, entry := range hostEntries {
		dir.Override(entry)
	}
	report.Conflicts = dir.Conflicts()

	venues := MakeVenues(dir)
	eventID := anchorEventID(venues, p.Options.AnchorVenue, log)

	calendarSheet, ok := p.Raw["calendar"]
	if !ok || calendarSheet == nil {
		return nil, nil, fmt.Errorf("raw export has no calendar sheet")
	}

	calendar, issues := MakeCalendar(calendarSheet.Records, dir, eventID, log)
	report.Issues = append(report.Issues, issues...)

	var rates []ExchangeRate
	if p.Rates != nil {
		rates = p.Rates.Records
	}

	tables := &Tables{
		Users:         MakeUsers(dir),
		UserProfiles:  MakeUserProfiles(dir),
		Venues:        venues,
		Models:        MakeModels(dir),
		Hosts:         MakeHosts(dir),
		Events:        MakeEvents(dir, p.StaticVenues, p.HostContacts, BuildHostVenueMap(p.Raw), log),
		Calendar:      calendar,
		ExchangeRates: rates,
	}

	log.Info().
		Int("users", len(tables.Users)).
		Int("venues", len(tables.Venues)).
		Int("models", len(tables.Models)).
		Int("hosts", len(tables.Hosts)).
		Int("events", len(tables.Events)).
		Int("calendar", len(tables.Calendar)).
		Int("conflicts", len(report.Conflicts)).
		Int("issues", len(report.Issues)).
		Msg("Pipeline run complete")

	return tables, report, nil
}

// anchorEventID finds the projected index of the anchor venue; the fixed
// event id is that index plus one, or zero when the venue is absent.
func anchorEventID(venues []VenueRow, anchor string, log zerolog.Logger) int {
	if anchor == "" {
		anchor = "homerton"
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(anchor))
	if err != nil {
		return 0
	}
	for i, v := range venues {
		if re.MatchString(v.Name) {
			log.Info().Int("index", i).Str("venue", v.Name).Msg("Anchor venue found")
			return i + 1
		}
	}
	log.Warn().Str("anchor", anchor).Msg("Anchor venue not found")
	return 0
}

// SaveTables serializes the tables document to disk.
func SaveTables(tables *Tables, path string, log zerolog.Logger) error {
	data, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize tables: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write tables: %w", err)
	}

	log.Info().Str("path", path).Time("at", time.Now()).Msg("Saved parsed database")
	return nil
}

// LoadTables reads a previously saved tables document.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	var tables Tables
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}
	return &tables, nil
}
