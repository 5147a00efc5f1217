package domain

import (
	"github.com/shopspring/decimal"
)

// FundraisingEvent is an event collecting donations in a single target
// currency. Its account balance is mutated only by box settlement.
type FundraisingEvent struct {
	EventID        int64           `json:"eventID"`
	Name           string          `json:"name"`
	CurrencyCode   string          `json:"currencyCode"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	AuditFields
}

// DisplayBalance returns the account balance rounded half-up to 2 decimal
// places. Rounding is a presentation concern; the stored balance keeps full
// precision.
func (e *FundraisingEvent) DisplayBalance() decimal.Decimal {
	return e.AccountBalance.Round(2)
}
