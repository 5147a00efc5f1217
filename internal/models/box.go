package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionBox represents a collection box row.
type CollectionBox struct {
	BoxID         int64     `db:"box_id"`
	EventID       *int64    `db:"event_id"` // Nullable
	IsDeleted     bool      `db:"is_deleted"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// BoxCurrencyAmount represents one per-currency entry row of a box.
// Unique per (box_id, currency_code).
type BoxCurrencyAmount struct {
	AmountID      int64           `db:"amount_id"`
	BoxID         int64           `db:"box_id"`
	CurrencyCode  string          `db:"currency_code"`
	Amount        decimal.Decimal `db:"amount"`
	IsDeleted     bool            `db:"is_deleted"`
	CreatedAt     time.Time       `db:"created_at"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
