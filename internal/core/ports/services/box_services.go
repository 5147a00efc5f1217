package services

import (
	"context"

	"collectbox/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BoxSvcFacade defines the collection box ledger operations.
type BoxSvcFacade interface {
	// RegisterBox creates a new unassigned, empty box.
	RegisterBox(ctx context.Context) (*domain.CollectionBox, error)

	// ListBoxes returns a page of boxes ordered by id plus the total count.
	ListBoxes(ctx context.Context, page, size int, direction string) ([]domain.CollectionBox, int64, error)

	// UnregisterBox soft-deletes a box and its currency entries.
	UnregisterBox(ctx context.Context, boxID int64) error

	// AssignBoxToEvent links an empty, unassigned box to an event.
	AssignBoxToEvent(ctx context.Context, boxID, eventID int64) (*domain.CollectionBox, error)

	// AddMoney deposits a strictly positive amount of a registered currency
	// into an assigned box.
	AddMoney(ctx context.Context, boxID int64, currencyCode string, amount decimal.Decimal) error

	// EmptyBox settles all positive entries of a box into its event's account
	// balance, converting to the event's currency where needed.
	EmptyBox(ctx context.Context, boxID int64) (*domain.Settlement, error)
}
