package models

import "time"

// Currency represents a supported currency row.
type Currency struct {
	CurrencyCode  string    `db:"currency_code"` // Primary Key (e.g., "USD")
	Name          string    `db:"name"`          // e.g., "US Dollar"
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
