package models

import (
	"time"
)

// ExchangeRate represents one stored currency rate relative to USD.
type ExchangeRate struct {
	ID           int64     `json:"id" db:"id"`
	CurrencyCode string    `json:"currency_code" db:"currency_code"`
	RateToUSD    float64   `json:"rate_to_usd" db:"rate_to_usd"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
