package export

import (
	"strings"
	"testing"
)

func venueSheet(rows ...Row) RawExport {
	return RawExport{"venues": {Title: "venues", Records: rows}}
}

func TestBuildVenueHostsExcludesClosed(t *testing.T) {
	raw := venueSheet(
		Row{"name": "Open Studio", "postcode": "E9 6AS"},
		Row{"name": "Gone Studio", "attended": "CLOSED 2020"},
	)

	entries, _, err := BuildVenueHosts(raw, nil, nil, testLog)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("closed venues must be excluded, got %d entries", len(entries))
	}
	if entries[0].Fullname != "Open Studio" {
		t.Errorf("kept the wrong venue: %q", entries[0].Fullname)
	}
}

func TestBuildVenueHostsPostcodeDictionaryWins(t *testing.T) {
	dictionary := []StaticVenue{{
		Name:         "Homerton Library",
		AddressLine1: "Homerton High Street",
		City:         "London",
		Postcode:     "E9 6AS",
		TZ:           "Europe/London",
	}}
	raw := venueSheet(Row{
		"name":     "Hackney Drawing Club",
		"postcode": "e9 6as",
		"address":  "some scraped address",
	})

	entries, _, err := BuildVenueHosts(raw, dictionary, nil, testLog)
	if err != nil {
		t.Fatal(err)
	}

	e := entries[0]
	if e.Name != "Homerton Library" || e.AddressLine1 != "Homerton High Street" {
		t.Errorf("dictionary record should win over sheet address, got %+v", e)
	}
	if e.MatchPostcode != "e9 6as" {
		t.Errorf("match postcode should record the sheet value, got %q", e.MatchPostcode)
	}
	if e.REF["venues.name"] != "Homerton Library" {
		t.Errorf("REF should carry the resolved venue name, got %q", e.REF["venues.name"])
	}
}

func TestBuildVenueHostsContactMerge(t *testing.T) {
	contacts := []HostContact{{
		Name:        "Hackney Drawing Club",
		Handle:      "hackney-dc",
		Email:       "Host@Hackney.Art",
		Description: "Long running untutored session",
	}}
	raw := venueSheet(Row{"name": "Hackney Drawing Club"})

	entries, _, err := BuildVenueHosts(raw, nil, contacts, testLog)
	if err != nil {
		t.Fatal(err)
	}

	e := entries[0]
	if e.Email != "host@hackney.art" {
		t.Errorf("contact email should be used and lowercased, got %q", e.Email)
	}
	if e.Handle != "hackney-dc" {
		t.Errorf("handle = %q", e.Handle)
	}
	if e.Description != "Long running untutored session" {
		t.Errorf("description = %q", e.Description)
	}
	if e.Logline != defaultLogline {
		t.Errorf("missing logline should default, got %q", e.Logline)
	}
}

func TestBuildVenueHostsPlaceholderEmail(t *testing.T) {
	raw := venueSheet(Row{"name": "The Old Church"})

	entries, _, err := BuildVenueHosts(raw, nil, nil, testLog)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Email != "the-old-church@placeholder.com" {
		t.Errorf("email = %q", entries[0].Email)
	}
}

func TestBuildVenueHostsScheduleFallback(t *testing.T) {
	raw := venueSheet(Row{"name": "Bad Clock", "time": "whenever"})

	entries, issues, err := BuildVenueHosts(raw, nil, nil, testLog)
	if err != nil {
		t.Fatal(err)
	}
	// the default Monday 7 PM slot
	want, _ := DefaultDateTime("7 PM", "2", "1")
	if entries[0].Schedule.ISO() != want.ISO() {
		t.Errorf("schedule should fall back to the default slot, got %q", entries[0].Schedule.ISO())
	}
	found := false
	for _, issue := range issues {
		if issue.Slug == "bad-clock" && issue.Field == "time" {
			found = true
		}
	}
	if !found {
		t.Error("unparseable schedule should surface an issue")
	}
}

func TestBuildVenueHostsMissingSheet(t *testing.T) {
	_, _, err := BuildVenueHosts(RawExport{}, nil, nil, testLog)
	if err == nil {
		t.Fatal("a missing venues sheet is fatal")
	}
}

func TestPricingTableJSON(t *testing.T) {
	tests := []struct {
		name               string
		inperson, online   string
		wantIn, wantOnline string
	}{
		{"currency stripped", "£10", "8.50 gbp", `"10"`, `"8.50"`},
		{"free text becomes null", "donation", "", "null", "null"},
		{"plain numbers kept", "12", "9", `"12"`, `"9"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricingTableJSON(tt.inperson, tt.online)
			want := `[["inperson",` + tt.wantIn + `],["online",` + tt.wantOnline + `]]`
			if got != want {
				t.Errorf("pricingTableJSON(%q, %q) = %s, want %s", tt.inperson, tt.online, got, want)
			}
		})
	}
}

func TestHostTagsJSON(t *testing.T) {
	if got := hostTagsJSON("untutored; drop-in ;"); got != `["untutored","drop-in"]` {
		t.Errorf("hostTagsJSON = %s", got)
	}
	if got := hostTagsJSON(""); got != "[]" {
		t.Errorf("empty tags should yield [], got %s", got)
	}
}

func TestHostSocialHandlesShape(t *testing.T) {
	got := hostSocialHandles(Row{"instagram": "crypt.draws"})
	if !strings.Contains(got, `"instagram":"crypt.draws"`) {
		t.Errorf("instagram handle missing: %s", got)
	}
	if !strings.Contains(got, `"twitter":null`) {
		t.Errorf("absent networks must be null: %s", got)
	}
}

func TestNormalizeTZ(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "Europe/London"},
		{"GMT", "Europe/London"},
		{"gmt+0", "Europe/London"},
		{"Europe/Paris", "Europe/Paris"},
	}
	for _, tt := range tests {
		if got := normalizeTZ(tt.in); got != tt.want {
			t.Errorf("normalizeTZ(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
