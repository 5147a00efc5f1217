package pgsql

import (
	"context"
	"errors"
	"fmt"

	"collectbox/internal/apperrors"
	"collectbox/internal/core/domain"
	portsrepo "collectbox/internal/core/ports/repositories"
	"collectbox/internal/models"
	"collectbox/internal/utils/mapping"
	"collectbox/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// eventSortColumns maps exposed sort fields to actual columns.
var eventSortColumns = map[string]string{
	"id":      "event_id",
	"name":    "name",
	"balance": "account_balance",
}

type PgxEventRepository struct {
	BaseRepository
}

// NewEventRepository creates a new repository for fundraising event data.
func NewEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

// SaveEvent inserts a new fundraising event and returns it with its assigned ID.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.FundraisingEvent) (*domain.FundraisingEvent, error) {
	modelEvent := mapping.ToModelEvent(event)

	query := `
		INSERT INTO fundraising_events (name, currency_code, account_balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING event_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelEvent.Name,
		modelEvent.CurrencyCode,
		modelEvent.AccountBalance,
		modelEvent.CreatedAt,
		modelEvent.LastUpdatedAt,
	).Scan(&modelEvent.EventID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save fundraising event '%s': %w", modelEvent.Name, err)
	}

	domainEvent := mapping.ToDomainEvent(modelEvent)
	return &domainEvent, nil
}

// FindEventByID retrieves a fundraising event by its ID.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID int64) (*domain.FundraisingEvent, error) {
	query := `
		SELECT event_id, name, currency_code, account_balance, created_at, last_updated_at
		FROM fundraising_events
		WHERE event_id = $1;
	`
	var modelEvent models.FundraisingEvent
	err := r.Pool.QueryRow(ctx, query, eventID).Scan(
		&modelEvent.EventID,
		&modelEvent.Name,
		&modelEvent.CurrencyCode,
		&modelEvent.AccountBalance,
		&modelEvent.CreatedAt,
		&modelEvent.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fundraising event %d: %w", eventID, err)
	}

	domainEvent := mapping.ToDomainEvent(modelEvent)
	return &domainEvent, nil
}

// ExistsEventByName reports whether an event with the given name exists.
func (r *PgxEventRepository) ExistsEventByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM fundraising_events WHERE name = $1);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check fundraising event name '%s': %w", name, err)
	}
	return exists, nil
}

// ListEvents retrieves a page of fundraising events and the total count.
func (r *PgxEventRepository) ListEvents(ctx context.Context, params pagination.Params) ([]domain.FundraisingEvent, int64, error) {
	column, ok := eventSortColumns[params.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: unsupported sort field '%s'", apperrors.ErrValidation, params.SortBy)
	}

	var total int64
	countQuery := `SELECT count(*) FROM fundraising_events;`
	if err := r.Pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count fundraising events: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT event_id, name, currency_code, account_balance, created_at, last_updated_at
		FROM fundraising_events
		ORDER BY %s %s
		LIMIT $1 OFFSET $2;
	`, column, params.Direction)
	rows, err := r.Pool.Query(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query fundraising events: %w", err)
	}
	defer rows.Close()

	modelEvents, err := collectEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return mapping.ToDomainEventSlice(modelEvents), total, nil
}

// ListAllEvents retrieves every fundraising event, sorted. Used by the HTML
// report and file exports, which are not paginated.
func (r *PgxEventRepository) ListAllEvents(ctx context.Context, sortBy string, direction pagination.Direction) ([]domain.FundraisingEvent, error) {
	column, ok := eventSortColumns[sortBy]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported sort field '%s'", apperrors.ErrValidation, sortBy)
	}

	query := fmt.Sprintf(`
		SELECT event_id, name, currency_code, account_balance, created_at, last_updated_at
		FROM fundraising_events
		ORDER BY %s %s;
	`, column, direction)
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fundraising events: %w", err)
	}
	defer rows.Close()

	modelEvents, err := collectEvents(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainEventSlice(modelEvents), nil
}

func collectEvents(rows pgx.Rows) ([]models.FundraisingEvent, error) {
	modelEvents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FundraisingEvent, error) {
		var event models.FundraisingEvent
		err := row.Scan(
			&event.EventID,
			&event.Name,
			&event.CurrencyCode,
			&event.AccountBalance,
			&event.CreatedAt,
			&event.LastUpdatedAt,
		)
		return event, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan fundraising events: %w", err)
	}
	return modelEvents, nil
}
