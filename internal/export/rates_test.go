package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRatesCacheFreshness(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	cache := RatesCache{TTL: 3 * time.Hour, Clock: fixedClock(now)}

	tests := []struct {
		name string
		doc  *RatesDocument
		want bool
	}{
		{"nil document", nil, false},
		{"no timestamp", &RatesDocument{}, false},
		{"garbage timestamp", &RatesDocument{Timestamp: "yesterday"}, false},
		{"inside window", &RatesDocument{Timestamp: now.Add(-2 * time.Hour).Format(time.RFC3339)}, true},
		{"outside window", &RatesDocument{Timestamp: now.Add(-4 * time.Hour).Format(time.RFC3339)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cache.Fresh(tt.doc); got != tt.want {
				t.Errorf("Fresh = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRatesCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	cache := RatesCache{Path: path, TTL: 3 * time.Hour}

	if cache.Load() != nil {
		t.Fatal("missing file should load as nil")
	}

	doc := &RatesDocument{
		Timestamp: "2024-03-05T12:00:00Z",
		Records:   []ExchangeRate{{CurrencyCode: "GBP", RateToUSD: 1.27}},
	}
	if err := cache.Store(doc); err != nil {
		t.Fatal(err)
	}

	loaded := cache.Load()
	if loaded == nil || len(loaded.Records) != 1 || loaded.Records[0].CurrencyCode != "GBP" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func TestRatesClientFetchInvertsRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"USD":1,"GBP":0.8,"EUR":0.9}}`))
	}))
	defer srv.Close()

	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	client := &RatesClient{
		URL: srv.URL,
		Cache: RatesCache{
			Path:  filepath.Join(t.TempDir(), "rates.json"),
			TTL:   3 * time.Hour,
			Clock: fixedClock(now),
		},
		Codes: []string{"GBP", "EUR", "XXX"},
		Log:   testLog,
	}

	doc, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(doc.Records))
	}

	byCode := map[string]float64{}
	for _, r := range doc.Records {
		byCode[r.CurrencyCode] = r.RateToUSD
	}
	if byCode["GBP"] != 1.25 {
		t.Errorf("GBP = %v, want 1.25 (inverse of 0.8)", byCode["GBP"])
	}
	if byCode["EUR"] != 1.111111 {
		t.Errorf("EUR = %v, want 1.111111 (inverse rounded to 6 places)", byCode["EUR"])
	}
	if byCode["XXX"] != 1.0 {
		t.Errorf("unknown code should default to 1.0, got %v", byCode["XXX"])
	}

	// the fetch is persisted for the next run
	if cached := client.Cache.Load(); cached == nil || len(cached.Records) != 3 {
		t.Error("fetch result should be written to the cache file")
	}
}

func TestRatesClientReusesFreshCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"rates":{"GBP":0.8}}`))
	}))
	defer srv.Close()

	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	cache := RatesCache{
		Path:  filepath.Join(t.TempDir(), "rates.json"),
		TTL:   3 * time.Hour,
		Clock: fixedClock(now),
	}
	cache.Store(&RatesDocument{
		Timestamp: now.Add(-time.Hour).Format(time.RFC3339),
		Records:   []ExchangeRate{{CurrencyCode: "GBP", RateToUSD: 1.3}},
	})

	client := &RatesClient{URL: srv.URL, Cache: cache, Codes: []string{"GBP"}, Log: testLog}

	doc, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("fresh cache must suppress the fetch, upstream called %d times", calls)
	}
	if doc.Records[0].RateToUSD != 1.3 {
		t.Errorf("cached record should be returned verbatim, got %v", doc.Records[0].RateToUSD)
	}
}

func TestRatesClientStaleCacheRefetches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"GBP":0.8}}`))
	}))
	defer srv.Close()

	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	cache := RatesCache{
		Path:  filepath.Join(t.TempDir(), "rates.json"),
		TTL:   3 * time.Hour,
		Clock: fixedClock(now),
	}
	cache.Store(&RatesDocument{
		Timestamp: now.Add(-5 * time.Hour).Format(time.RFC3339),
		Records:   []ExchangeRate{{CurrencyCode: "GBP", RateToUSD: 1.3}},
	})

	client := &RatesClient{URL: srv.URL, Cache: cache, Codes: []string{"GBP"}, Log: testLog}

	doc, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if doc.Records[0].RateToUSD != 1.25 {
		t.Errorf("stale cache must be refreshed, got %v", doc.Records[0].RateToUSD)
	}
}

func TestRatesClientUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := &RatesClient{
		URL:   srv.URL,
		Cache: RatesCache{Path: filepath.Join(t.TempDir(), "rates.json"), TTL: time.Hour},
		Log:   testLog,
	}

	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("upstream failure must be returned, not defaulted")
	}
}
