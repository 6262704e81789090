package export

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// TargetCurrencies is the default set of currencies the platform prices in.
var TargetCurrencies = []string{
	"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY",
	"NZD", "INR", "BRL", "RUB", "ZAR", "MXN", "SGD", "HKD",
	"SEK", "NOK", "KRW", "TRY",
}

// ExchangeRate is one seeded exchange_rates row.
type ExchangeRate struct {
	CurrencyCode string  `json:"currency_code"`
	RateToUSD    float64 `json:"rate_to_usd"`
	UpdatedAt    string  `json:"updated_at"`
}

// RatesDocument is the cached rates file: a fetch timestamp plus the records.
type RatesDocument struct {
	Timestamp string         `json:"timestamp"`
	Records   []ExchangeRate `json:"records"`
}

// RatesCache is the explicit file cache for rate fetches. The clock is
// injectable so the freshness window is testable.
type RatesCache struct {
	Path string
	TTL  time.Duration
	Clock func() time.Time
}

func (c RatesCache) now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}
	return time.Now()
}

// Fresh reports whether the cached document is still inside the TTL window.
func (c RatesCache) Fresh(doc *RatesDocument) bool {
	if doc == nil || doc.Timestamp == "" {
		return false
	}
	last, err := time.Parse(time.RFC3339, doc.Timestamp)
	if err != nil {
		return false
	}
	return c.now().Sub(last) < c.TTL
}

// Load reads the cached document; a missing or unreadable file yields nil.
func (c RatesCache) Load() *RatesDocument {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil
	}
	var doc RatesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return &doc
}

// Store writes the document back to the cache file.
func (c RatesCache) Store(doc *RatesDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path, data, 0644)
}

// RatesClient fetches USD-based exchange rates with a disk cache.
type RatesClient struct {
	HTTP  *http.Client
	URL   string
	Cache RatesCache
	Codes []string

	Log zerolog.Logger
}

type upstreamRates struct {
	Rates map[string]float64 `json:"rates"`
}

// Fetch returns the target currency rates, reusing the cache when it is
// fresher than the TTL. A fetch failure is fatal to an import run; the
// caller exits non-zero rather than retrying.
func (c *RatesClient) Fetch(ctx context.Context) (*RatesDocument, error) {
	codes := c.Codes
	if len(codes) == 0 {
		codes = TargetCurrencies
	}

	if cached := c.Cache.Load(); c.Cache.Fresh(cached) {
		age := c.Cache.now().Sub(mustParseRFC3339(cached.Timestamp))
		c.Log.Info().Dur("age", age).Msg("Exchange rates are fresh, skipping fetch")
		return cached, nil
	}

	c.Log.Info().Str("url", c.URL).Msg("Fetching exchange rates")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch exchange rates: unexpected status %s", resp.Status)
	}

	var upstream upstreamRates
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("decode exchange rates: %w", err)
	}

	now := c.Cache.now().UTC().Format(time.RFC3339)
	records := make([]ExchangeRate, 0, len(codes))
	for _, code := range codes {
		record := ExchangeRate{CurrencyCode: code, RateToUSD: 1.0, UpdatedAt: now}
		if rate, ok := upstream.Rates[code]; ok && rate != 0 {
			// Upstream quotes 1 USD = rate CUR; we store the inverse.
			record.RateToUSD = math.Round(1/rate*1e6) / 1e6
		} else {
			c.Log.Warn().Str("code", code).Msg("Rate not found, defaulting to 1.0")
		}
		records = append(records, record)
	}

	doc := &RatesDocument{Timestamp: now, Records: records}
	if err := c.Cache.Store(doc); err != nil {
		c.Log.Warn().Err(err).Str("path", c.Cache.Path).Msg("Could not write rates cache")
	} else {
		c.Log.Info().Int("records", len(records)).Str("path", c.Cache.Path).Msg("Saved exchange rates")
	}

	return doc, nil
}

func mustParseRFC3339(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
