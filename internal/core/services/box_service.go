package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"collectbox/internal/apperrors"
	"collectbox/internal/core/domain"
	portsrepo "collectbox/internal/core/ports/repositories"
	portssvc "collectbox/internal/core/ports/services"
	"collectbox/internal/observability/metrics"
	"collectbox/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// boxSortFields are the caller-facing sort fields for box listings.
var boxSortFields = []string{"id"}

// BoxService implements the collection box ledger.
type BoxService struct {
	boxRepo      portsrepo.BoxRepositoryFacade
	eventRepo    portsrepo.EventRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	converter    portssvc.RateConverter
}

// NewBoxService creates a new BoxService.
func NewBoxService(
	boxRepo portsrepo.BoxRepositoryFacade,
	eventRepo portsrepo.EventRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	converter portssvc.RateConverter,
) *BoxService {
	return &BoxService{
		boxRepo:      boxRepo,
		eventRepo:    eventRepo,
		currencyRepo: currencyRepo,
		converter:    converter,
	}
}

// Ensure implementation matches interface
var _ portssvc.BoxSvcFacade = (*BoxService)(nil)

// RegisterBox creates a new unassigned, empty collection box.
func (s *BoxService) RegisterBox(ctx context.Context) (*domain.CollectionBox, error) {
	box, err := s.boxRepo.CreateBox(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to register collection box: %w", err)
	}
	return box, nil
}

// ListBoxes returns a page of non-deleted boxes ordered by id.
func (s *BoxService) ListBoxes(ctx context.Context, page, size int, direction string) ([]domain.CollectionBox, int64, error) {
	params, err := pagination.New(page, size, "id", direction, boxSortFields...)
	if err != nil {
		return nil, 0, err
	}

	boxes, total, err := s.boxRepo.ListBoxes(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list collection boxes: %w", err)
	}
	return boxes, total, nil
}

// UnregisterBox soft-deletes a box together with its currency entries.
// An already-deleted box reports not-found; deleted boxes are invisible.
func (s *BoxService) UnregisterBox(ctx context.Context, boxID int64) error {
	if err := s.boxRepo.SoftDeleteBox(ctx, boxID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: collection box with ID %d not found", apperrors.ErrNotFound, boxID)
		}
		return fmt.Errorf("failed to unregister box %d: %w", boxID, err)
	}
	return nil
}

// AssignBoxToEvent links an empty, unassigned box to a fundraising event.
func (s *BoxService) AssignBoxToEvent(ctx context.Context, boxID, eventID int64) (*domain.CollectionBox, error) {
	box, err := s.findBox(ctx, boxID)
	if err != nil {
		return nil, err
	}

	if box.IsAssigned() {
		return nil, fmt.Errorf("%w: box %d is already assigned to a fundraising event", apperrors.ErrValidation, boxID)
	}
	if !box.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot assign box %d because it is not empty", apperrors.ErrValidation, boxID)
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: fundraising event with ID %d not found", apperrors.ErrNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to load event %d for assignment: %w", eventID, err)
	}

	if err := s.boxRepo.AssignBoxToEvent(ctx, boxID, event.EventID); err != nil {
		return nil, fmt.Errorf("failed to assign box %d to event %d: %w", boxID, eventID, err)
	}

	box.EventID = &event.EventID
	return box, nil
}

// AddMoney deposits a strictly positive amount of a supported currency into
// an assigned box. The increment itself is a single atomic upsert, so
// concurrent deposits into the same box-currency pair never lose an update.
func (s *BoxService) AddMoney(ctx context.Context, boxID int64, currencyCode string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: invalid amount: %s, amount must be greater than 0", apperrors.ErrValidation, amount)
	}

	box, err := s.findBox(ctx, boxID)
	if err != nil {
		return err
	}
	if !box.IsAssigned() {
		return fmt.Errorf("%w: box %d is not assigned to any fundraising event", apperrors.ErrValidation, boxID)
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: currency '%s' not found or unsupported", apperrors.ErrNotFound, currencyCode)
		}
		return fmt.Errorf("failed to resolve currency '%s': %w", currencyCode, err)
	}

	if err := s.boxRepo.AddAmount(ctx, boxID, currencyCode, amount); err != nil {
		return fmt.Errorf("failed to add %s %s to box %d: %w", amount, currencyCode, boxID, err)
	}
	return nil
}

// EmptyBox settles the box into its event's account balance. All conversions
// run before the commit transaction; a conversion failure aborts the whole
// settlement with no mutation.
func (s *BoxService) EmptyBox(ctx context.Context, boxID int64) (*domain.Settlement, error) {
	start := time.Now()
	settlement, err := s.emptyBox(ctx, boxID)

	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.ObserveSettlement(result, time.Since(start))

	return settlement, err
}

func (s *BoxService) emptyBox(ctx context.Context, boxID int64) (*domain.Settlement, error) {
	box, err := s.findBox(ctx, boxID)
	if err != nil {
		return nil, err
	}
	if !box.IsAssigned() {
		return nil, fmt.Errorf("%w: box %d is not assigned to any fundraising event", apperrors.ErrValidation, boxID)
	}
	if box.IsEmpty() {
		return nil, fmt.Errorf("%w: attempt to transfer money from box %d which is empty", apperrors.ErrValidation, boxID)
	}

	event, err := s.eventRepo.FindEventByID(ctx, *box.EventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: fundraising event with ID %d not found", apperrors.ErrNotFound, *box.EventID)
		}
		return nil, fmt.Errorf("failed to load event %d for settlement: %w", *box.EventID, err)
	}

	// Accumulation order over entries does not affect the total.
	total := decimal.Zero
	for _, entry := range box.Amounts {
		if !entry.Amount.IsPositive() {
			continue
		}

		contribution := entry.Amount
		if entry.CurrencyCode != event.CurrencyCode {
			contribution, err = s.converter.Convert(ctx, entry.Amount, entry.CurrencyCode, event.CurrencyCode)
			if err != nil {
				return nil, fmt.Errorf("settlement of box %d aborted: %w", boxID, err)
			}
		}
		total = total.Add(contribution)
	}

	if err := s.boxRepo.SettleBox(ctx, *box, event.EventID, total); err != nil {
		return nil, fmt.Errorf("failed to settle box %d into event %d: %w", boxID, event.EventID, err)
	}

	return &domain.Settlement{
		BoxID:            boxID,
		EventID:          event.EventID,
		CurrencyCode:     event.CurrencyCode,
		TotalTransferred: total,
	}, nil
}

// findBox loads a non-deleted box or reports it as not found.
func (s *BoxService) findBox(ctx context.Context, boxID int64) (*domain.CollectionBox, error) {
	box, err := s.boxRepo.FindBoxByID(ctx, boxID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: collection box with ID %d not found", apperrors.ErrNotFound, boxID)
		}
		return nil, fmt.Errorf("failed to load box %d: %w", boxID, err)
	}
	return box, nil
}
