package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyAmount is a single per-currency cash entry inside a collection box.
// A box holds at most one entry per currency code. Entries are zeroed, never
// removed, when a box is emptied, so the currency stays registered on the box.
type CurrencyAmount struct {
	AmountID     int64           `json:"amountID"`
	BoxID        int64           `json:"boxID"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	IsDeleted    bool            `json:"-"`
	AuditFields
}

// CollectionBox is a physical collection box, optionally assigned to exactly
// one fundraising event. Deletion is soft: a deleted box is invisible to all
// lookups but its rows remain for auditability.
type CollectionBox struct {
	BoxID     int64            `json:"boxID"`
	EventID   *int64           `json:"eventID,omitempty"`
	Amounts   []CurrencyAmount `json:"amounts"`
	IsDeleted bool             `json:"-"`
	AuditFields
}

// IsAssigned reports whether the box is linked to a fundraising event.
func (b *CollectionBox) IsAssigned() bool {
	return b.EventID != nil
}

// IsEmpty reports whether every currency entry holds a non-positive amount.
// A box with no entries at all is empty.
func (b *CollectionBox) IsEmpty() bool {
	for _, a := range b.Amounts {
		if a.Amount.IsPositive() {
			return false
		}
	}
	return true
}

// Settlement summarises a successful emptying of a box into its event.
type Settlement struct {
	BoxID            int64           `json:"boxID"`
	EventID          int64           `json:"eventID"`
	CurrencyCode     string          `json:"currencyCode"`
	TotalTransferred decimal.Decimal `json:"totalTransferred"`
}
