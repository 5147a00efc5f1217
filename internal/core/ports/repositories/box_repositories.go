package repositories

import (
	"context"

	"collectbox/internal/core/domain"
	"collectbox/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// BoxReader defines read operations for collection box data.
// All lookups exclude soft-deleted boxes.
type BoxReader interface {
	// FindBoxByID retrieves a non-deleted box with its currency entries.
	FindBoxByID(ctx context.Context, boxID int64) (*domain.CollectionBox, error)

	// ListBoxes retrieves a page of non-deleted boxes (with entries) plus the total count.
	ListBoxes(ctx context.Context, params pagination.Params) ([]domain.CollectionBox, int64, error)
}

// BoxWriter defines write operations for collection box data.
type BoxWriter interface {
	// CreateBox persists a new unassigned box with no entries.
	CreateBox(ctx context.Context) (*domain.CollectionBox, error)

	// AssignBoxToEvent links a box to an event. The update is conditional on
	// the box being live and unassigned, so a concurrent assignment loses.
	AssignBoxToEvent(ctx context.Context, boxID, eventID int64) error

	// AddAmount atomically increments the (box, currency) entry, creating it
	// if the box has never held that currency.
	AddAmount(ctx context.Context, boxID int64, currencyCode string, amount decimal.Decimal) error

	// SoftDeleteBox marks a box and all its entries deleted in one transaction.
	SoftDeleteBox(ctx context.Context, boxID int64) error

	// SettleBox commits a settlement: under row locks it verifies the box
	// still matches the given snapshot, zeroes every positive entry, and adds
	// total to the event's account balance. Nothing is mutated on failure.
	SettleBox(ctx context.Context, box domain.CollectionBox, eventID int64, total decimal.Decimal) error
}

// BoxRepositoryFacade combines all box-related repository interfaces
type BoxRepositoryFacade interface {
	BoxReader
	BoxWriter
}
