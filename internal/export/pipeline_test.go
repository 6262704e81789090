package export

import (
	"path/filepath"
	"testing"
)

func pipelineFixture() *Pipeline {
	return &Pipeline{
		Raw: RawExport{
			"models": {Title: "models", Records: []Row{
				{"fullname": "Jane Doe", "emailaddress": "jane@test.com"},
			}},
			"artists": {Title: "artists", Records: []Row{
				{"fullname": "Homerton Sessions", "emailaddress": "old@artist.com"},
			}},
			"venues": {Title: "venues", Records: []Row{
				{"name": "Homerton Sessions", "postcode": "E9 6AS", "day": "Tuesday"},
				{"name": "Closed Venue", "attended": "closed 2019"},
			}},
			"calendar": {Title: "calendar", Records: []Row{
				{"pk": "LD101", "fullname": "Jane Doe", "date": "2024-03-05", "start": "19"},
				{"pk": "(open)", "fullname": "Jane Doe", "date": "2024-03-12", "start": "19"},
			}},
		},
		StaticVenues: []StaticVenue{{
			Name:         "Homerton Library",
			AddressLine1: "Homerton High Street",
			City:         "London",
			Postcode:     "E9 6AS",
			TZ:           "Europe/London",
		}},
		HostContacts: []HostContact{{
			Name:  "Homerton Sessions",
			Email: "host@homerton.art",
		}},
		Rates: &RatesDocument{
			Timestamp: "2024-03-05T12:00:00Z",
			Records:   []ExchangeRate{{CurrencyCode: "GBP", RateToUSD: 1.27}},
		},
		Options: PipelineOptions{AdminEmail: "admin@test.local", AdminPassword: "pw"},
		Log:     testLog,
	}
}

func TestPipelineRun(t *testing.T) {
	tables, report, err := pipelineFixture().Run()
	if err != nil {
		t.Fatal(err)
	}

	// admin + model + host; the artist row shares the host's slug and is
	// superseded by the venue-derived record
	if len(tables.Users) != 3 {
		t.Fatalf("users = %d, want 3", len(tables.Users))
	}
	if len(tables.Models) != 1 {
		t.Errorf("models = %d, want 1", len(tables.Models))
	}
	if len(tables.Hosts) != 1 {
		t.Errorf("hosts = %d, want 1", len(tables.Hosts))
	}
	if len(tables.Venues) != 1 {
		t.Fatalf("venues = %d, want 1 (closed venue excluded)", len(tables.Venues))
	}
	if tables.Venues[0].Name != "Homerton Library" {
		t.Errorf("venue = %q, want dictionary name", tables.Venues[0].Name)
	}

	if len(tables.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(tables.Events))
	}
	event := tables.Events[0]
	if event.Rel.Key == nil || *event.Rel.Key != "Homerton Library" {
		t.Errorf("event venue key = %v, want Homerton Library", event.Rel.Key)
	}
	if event.Rel.Email != "host@homerton.art" {
		t.Errorf("event host email = %q", event.Rel.Email)
	}
	if event.WeekDay != "Tuesday" {
		t.Errorf("event week day = %q", event.WeekDay)
	}

	// one session row survives; the open placeholder is dropped
	if len(tables.Calendar) != 1 {
		t.Fatalf("calendar = %d, want 1", len(tables.Calendar))
	}
	session := tables.Calendar[0]
	if session.EventID != 1 {
		t.Errorf("session event_id = %d, want anchor index + 1", session.EventID)
	}
	if session.Rel.Email != "jane@test.com" {
		t.Errorf("session email = %q", session.Rel.Email)
	}

	if len(tables.ExchangeRates) != 1 || tables.ExchangeRates[0].CurrencyCode != "GBP" {
		t.Errorf("rates not carried through: %+v", tables.ExchangeRates)
	}

	// the host record superseding the artist row is surfaced in the report
	found := false
	for _, c := range report.Conflicts {
		if c.Slug == "homerton-sessions" && c.Resolution == "replaced" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a replaced conflict for the shared slug, got %+v", report.Conflicts)
	}
}

func TestPipelineRunIsDeterministic(t *testing.T) {
	first, _, err := pipelineFixture().Run()
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := pipelineFixture().Run()
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Users) != len(second.Users) {
		t.Fatal("user counts differ between identical runs")
	}
	for i := range first.Users {
		if first.Users[i].Email != second.Users[i].Email {
			t.Errorf("user %d ordering differs: %q vs %q", i, first.Users[i].Email, second.Users[i].Email)
		}
	}
}

func TestPipelineRequiresCalendarSheet(t *testing.T) {
	p := pipelineFixture()
	delete(p.Raw, "calendar")

	if _, _, err := p.Run(); err == nil {
		t.Fatal("a missing calendar sheet is fatal")
	}
}

func TestAnchorEventID(t *testing.T) {
	venues := []VenueRow{
		{Name: "Crypt Gallery"},
		{Name: "Homerton Library"},
	}

	if got := anchorEventID(venues, "", testLog); got != 2 {
		t.Errorf("default anchor = %d, want 2", got)
	}
	if got := anchorEventID(venues, "crypt", testLog); got != 1 {
		t.Errorf("explicit anchor = %d, want 1", got)
	}
	if got := anchorEventID(venues, "nowhere", testLog); got != 0 {
		t.Errorf("missing anchor = %d, want 0", got)
	}
}

func TestSaveLoadTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parsed-db.json")

	tables, _, err := pipelineFixture().Run()
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveTables(tables, path, testLog); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadTables(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Users) != len(tables.Users) {
		t.Errorf("round trip lost users: %d vs %d", len(loaded.Users), len(tables.Users))
	}
	if len(loaded.Calendar) != len(tables.Calendar) {
		t.Errorf("round trip lost calendar rows: %d vs %d", len(loaded.Calendar), len(tables.Calendar))
	}
}
