package repository

import (
	"context"

	"github.com/lib/pq"
	"github.com/lifedrawing-art/backend/internal/database"
	"github.com/lifedrawing-art/backend/internal/models"
)

// rateRepo is the concrete implementation of RateRepository
type rateRepo struct {
	db *database.DB
}

// NewRateRepo creates a new exchange rate repository
func NewRateRepo(db *database.DB) RateRepository {
	return &rateRepo{db: db}
}

// List retrieves all stored rates ordered by currency code
func (r *rateRepo) List(ctx context.Context) ([]*models.ExchangeRate, error) {
	query := `SELECT id, currency_code, rate_to_usd, updated_at FROM exchange_rates ORDER BY currency_code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []*models.ExchangeRate
	for rows.Next() {
		var rate models.ExchangeRate
		if err := rows.Scan(&rate.ID, &rate.CurrencyCode, &rate.RateToUSD, &rate.UpdatedAt); err != nil {
			return nil, err
		}
		rates = append(rates, &rate)
	}
	return rates, rows.Err()
}

// ReplaceAll swaps the whole rates table for the given set using COPY. The
// table is tiny so full replacement is simpler than per-row upserts.
func (r *rateRepo) ReplaceAll(ctx context.Context, rates []*models.ExchangeRate) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM exchange_rates"); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("exchange_rates",
		"currency_code", "rate_to_usd", "updated_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, rate := range rates {
		if _, err := stmt.ExecContext(ctx, rate.CurrencyCode, rate.RateToUSD, rate.UpdatedAt); err != nil {
			return 0, err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(rates), nil
}
