package export

import "testing"

func matcherVenues() []StaticVenue {
	return []StaticVenue{
		{Name: "Crypt", Postcode: "WC1H 9JE"},
		{Name: "Crypt Gallery", Postcode: "NW1 2BA"},
		{Name: "Homerton Library", Postcode: "E9 6AS"},
		{Name: "The Old Church", Postcode: "N16 9ES"},
	}
}

func TestResolveVenueRefBeatsTextSearch(t *testing.T) {
	// entry text mentions Homerton Library, but the explicit reference
	// points at The Old Church; the reference must win
	entry := &Entry{
		Fullname:    "Stokey Drawing Club",
		Description: "Sessions at Homerton Library every week",
		REF:         map[string]string{"venues.name": "the old church"},
	}

	venue, strategy := ResolveVenue(entry, "Stokey Drawing Club", HostContact{}, matcherVenues(), nil)
	if venue == nil || venue.Name != "The Old Church" {
		t.Fatalf("explicit reference must beat text search, got %+v", venue)
	}
	if strategy != MatchRef {
		t.Errorf("strategy = %q, want %q", strategy, MatchRef)
	}
}

func TestResolveVenueLookupMap(t *testing.T) {
	entry := &Entry{Fullname: "London Drawing"}
	lookup := map[string]string{"london drawing": "Crypt Gallery"}

	venue, strategy := ResolveVenue(entry, "London Drawing", HostContact{}, matcherVenues(), lookup)
	if venue == nil || venue.Name != "Crypt Gallery" {
		t.Fatalf("lookup map should resolve, got %+v", venue)
	}
	if strategy != MatchLookup {
		t.Errorf("strategy = %q, want %q", strategy, MatchLookup)
	}
}

func TestResolveVenueTextSearchPrefersLongestName(t *testing.T) {
	// "Crypt Gallery" contains "Crypt"; the longer, more specific name must
	// be tested first
	entry := &Entry{
		Fullname:    "Drink and Draw",
		Description: "Weekly sessions in the Crypt Gallery basement",
	}

	venue, strategy := ResolveVenue(entry, "Drink and Draw", HostContact{}, matcherVenues(), nil)
	if venue == nil || venue.Name != "Crypt Gallery" {
		t.Fatalf("longest name should match first, got %+v", venue)
	}
	if strategy != MatchText {
		t.Errorf("strategy = %q, want %q", strategy, MatchText)
	}
}

func TestResolveVenueByOwnName(t *testing.T) {
	// a host named exactly after a venue resolves through the text search,
	// which scans the host's own name field
	entry := &Entry{Fullname: "Homerton Library"}

	venue, strategy := ResolveVenue(entry, "", HostContact{}, matcherVenues(), nil)
	if venue == nil || venue.Name != "Homerton Library" {
		t.Fatalf("host named after a venue should resolve, got %+v", venue)
	}
	if strategy != MatchText {
		t.Errorf("strategy = %q, want %q", strategy, MatchText)
	}
}

func TestResolveVenueNoMatch(t *testing.T) {
	entry := &Entry{Fullname: "Unknown Collective"}

	venue, strategy := ResolveVenue(entry, "Unknown Collective", HostContact{}, matcherVenues(), nil)
	if venue != nil {
		t.Fatalf("expected no match, got %+v", venue)
	}
	if strategy != "" {
		t.Errorf("strategy = %q, want empty", strategy)
	}
}

func TestMakeEvents(t *testing.T) {
	dir := NewDirectory()
	dir.Put(&Entry{
		Kind:     KindHost,
		Slug:     "homerton-library",
		Fullname: "Homerton Library",
		Email:    "homerton@placeholder.com",
		REF: map[string]string{
			"events.name": "Homerton Library",
			"venues.name": "Homerton Library",
		},
		Frequency:    "weekly",
		WeekDay:      "Tuesday",
		PricingTable: `[["inperson","10"],["online",null]]`,
	})
	// non-host entries are ignored
	dir.Put(&Entry{Kind: KindModel, Slug: "jane-doe", Fullname: "Jane Doe"})

	rows := MakeEvents(dir, matcherVenues(), nil, nil, testLog)

	if len(rows) != 1 {
		t.Fatalf("expected 1 event row, got %d", len(rows))
	}
	row := rows[0]
	if row.Rel.Key == nil || *row.Rel.Key != "Homerton Library" {
		t.Errorf("venue key = %v, want Homerton Library", row.Rel.Key)
	}
	if row.Name != "Homerton Library" {
		t.Errorf("name = %q", row.Name)
	}
	if row.Frequency != "weekly" || row.WeekDay != "Tuesday" {
		t.Errorf("schedule fields wrong: %+v", row)
	}
	if row.PricingTable != `[["inperson","10"],["online",null]]` {
		t.Errorf("pricing table should pass through pre-serialized, got %q", row.PricingTable)
	}
	if row.PoseFormat == "" {
		t.Error("pose format default missing")
	}
}

func TestMakeEventsUnmatchedVenueIsNil(t *testing.T) {
	dir := NewDirectory()
	dir.Put(&Entry{Kind: KindHost, Slug: "nowhere", Fullname: "Nowhere Collective", Email: "x@y.com"})

	rows := MakeEvents(dir, matcherVenues(), nil, nil, testLog)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Rel.Key != nil {
		t.Errorf("unmatched venue must stay nil, got %v", *rows[0].Rel.Key)
	}
	if rows[0].Frequency != "weekly" || rows[0].WeekDay != "unknown" {
		t.Errorf("defaults missing: %+v", rows[0])
	}
}

func TestBuildHostVenueMap(t *testing.T) {
	raw := RawExport{
		"venues": {Title: "venues", Records: []Row{
			{"name": "London Drawing", "address": "Crypt Gallery\nEuston Road\nLondon"},
			{"name": "No Address"},
		}},
	}

	m := BuildHostVenueMap(raw)
	if m["london drawing"] != "Crypt Gallery" {
		t.Errorf("map should hold first address line, got %q", m["london drawing"])
	}
	if _, ok := m["no address"]; ok {
		t.Error("rows without address must be skipped")
	}
}
