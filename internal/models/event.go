package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundraisingEvent represents a fundraising event row.
type FundraisingEvent struct {
	EventID        int64           `db:"event_id"`
	Name           string          `db:"name"`
	CurrencyCode   string          `db:"currency_code"`
	AccountBalance decimal.Decimal `db:"account_balance"`
	CreatedAt      time.Time       `db:"created_at"`
	LastUpdatedAt  time.Time       `db:"last_updated_at"`
}
