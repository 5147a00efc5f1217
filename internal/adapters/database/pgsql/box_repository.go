package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"collectbox/internal/apperrors"
	"collectbox/internal/core/domain"
	portsrepo "collectbox/internal/core/ports/repositories"
	"collectbox/internal/models"
	"collectbox/internal/utils/mapping"
	"collectbox/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBoxRepository struct {
	BaseRepository
}

// NewBoxRepository creates a new repository for collection box data.
func NewBoxRepository(pool *pgxpool.Pool) portsrepo.BoxRepositoryFacade {
	return &PgxBoxRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BoxRepositoryFacade = (*PgxBoxRepository)(nil)

// CreateBox inserts a new unassigned, empty collection box.
func (r *PgxBoxRepository) CreateBox(ctx context.Context) (*domain.CollectionBox, error) {
	now := time.Now()
	query := `
		INSERT INTO collection_boxes (event_id, is_deleted, created_at, last_updated_at)
		VALUES (NULL, false, $1, $1)
		RETURNING box_id;
	`
	var boxID int64
	if err := r.Pool.QueryRow(ctx, query, now).Scan(&boxID); err != nil {
		return nil, fmt.Errorf("failed to create collection box: %w", err)
	}

	return &domain.CollectionBox{
		BoxID: boxID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// FindBoxByID retrieves a collection box together with its per-currency amounts.
// Soft-deleted boxes are treated as absent.
func (r *PgxBoxRepository) FindBoxByID(ctx context.Context, boxID int64) (*domain.CollectionBox, error) {
	query := `
		SELECT box_id, event_id, is_deleted, created_at, last_updated_at
		FROM collection_boxes
		WHERE box_id = $1 AND is_deleted = false;
	`
	var modelBox models.CollectionBox
	err := r.Pool.QueryRow(ctx, query, boxID).Scan(
		&modelBox.BoxID,
		&modelBox.EventID,
		&modelBox.IsDeleted,
		&modelBox.CreatedAt,
		&modelBox.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find collection box %d: %w", boxID, err)
	}

	amounts, err := r.findAmountsByBoxIDs(ctx, []int64{boxID})
	if err != nil {
		return nil, err
	}

	box := mapping.ToDomainBox(modelBox, amounts[boxID])
	return &box, nil
}

// ListBoxes retrieves a page of collection boxes and the total count.
func (r *PgxBoxRepository) ListBoxes(ctx context.Context, params pagination.Params) ([]domain.CollectionBox, int64, error) {
	var total int64
	countQuery := `SELECT count(*) FROM collection_boxes WHERE is_deleted = false;`
	if err := r.Pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count collection boxes: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT box_id, event_id, is_deleted, created_at, last_updated_at
		FROM collection_boxes
		WHERE is_deleted = false
		ORDER BY box_id %s
		LIMIT $1 OFFSET $2;
	`, params.Direction)
	rows, err := r.Pool.Query(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query collection boxes: %w", err)
	}
	defer rows.Close()

	modelBoxes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CollectionBox, error) {
		var box models.CollectionBox
		err := row.Scan(
			&box.BoxID,
			&box.EventID,
			&box.IsDeleted,
			&box.CreatedAt,
			&box.LastUpdatedAt,
		)
		return box, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan collection boxes: %w", err)
	}

	boxIDs := make([]int64, 0, len(modelBoxes))
	for _, modelBox := range modelBoxes {
		boxIDs = append(boxIDs, modelBox.BoxID)
	}
	amountsByBox, err := r.findAmountsByBoxIDs(ctx, boxIDs)
	if err != nil {
		return nil, 0, err
	}

	boxes := make([]domain.CollectionBox, 0, len(modelBoxes))
	for _, modelBox := range modelBoxes {
		boxes = append(boxes, mapping.ToDomainBox(modelBox, amountsByBox[modelBox.BoxID]))
	}
	return boxes, total, nil
}

// AssignBoxToEvent links an unassigned box to an event. The update is
// conditional on the box still being unassigned, so a concurrent assignment
// loses cleanly instead of overwriting.
func (r *PgxBoxRepository) AssignBoxToEvent(ctx context.Context, boxID int64, eventID int64) error {
	query := `
		UPDATE collection_boxes
		SET event_id = $2, last_updated_at = $3
		WHERE box_id = $1 AND event_id IS NULL AND is_deleted = false;
	`
	tag, err := r.Pool.Exec(ctx, query, boxID, eventID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to assign collection box %d: %w", boxID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: collection box %d was deleted or assigned concurrently", apperrors.ErrConflict, boxID)
	}
	return nil
}

// AddAmount credits an amount to the box's per-currency entry. The upsert is a
// single atomic statement, so concurrent deposits in the same currency never
// lose updates.
func (r *PgxBoxRepository) AddAmount(ctx context.Context, boxID int64, currencyCode string, amount decimal.Decimal) error {
	query := `
		INSERT INTO box_currency_amounts (box_id, currency_code, amount, is_deleted, created_at, last_updated_at)
		VALUES ($1, $2, $3, false, $4, $4)
		ON CONFLICT (box_id, currency_code)
		DO UPDATE SET amount = box_currency_amounts.amount + EXCLUDED.amount, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query, boxID, currencyCode, amount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add %s %s to collection box %d: %w", amount.String(), currencyCode, boxID, err)
	}
	return nil
}

// SoftDeleteBox marks a box and its amount entries as deleted. The held money
// is discarded with the box.
func (r *PgxBoxRepository) SoftDeleteBox(ctx context.Context, boxID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	now := time.Now()
	boxQuery := `
		UPDATE collection_boxes
		SET is_deleted = true, last_updated_at = $2
		WHERE box_id = $1 AND is_deleted = false;
	`
	tag, err := tx.Exec(ctx, boxQuery, boxID, now)
	if err != nil {
		return fmt.Errorf("failed to delete collection box %d: %w", boxID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	amountsQuery := `
		UPDATE box_currency_amounts
		SET is_deleted = true, last_updated_at = $2
		WHERE box_id = $1 AND is_deleted = false;
	`
	if _, err := tx.Exec(ctx, amountsQuery, boxID, now); err != nil {
		return fmt.Errorf("failed to delete amounts of collection box %d: %w", boxID, err)
	}

	return r.Commit(ctx, tx)
}

// SettleBox empties a box into its event's account in one transaction. The
// caller computed the converted total from the box snapshot it holds; here the
// box and its entries are re-locked and each entry is verified against that
// snapshot. Any drift since the snapshot aborts the settlement without
// mutating anything.
func (r *PgxBoxRepository) SettleBox(ctx context.Context, box domain.CollectionBox, eventID int64, total decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	boxQuery := `
		SELECT event_id, is_deleted
		FROM collection_boxes
		WHERE box_id = $1
		FOR UPDATE;
	`
	var lockedEventID *int64
	var isDeleted bool
	if err := tx.QueryRow(ctx, boxQuery, box.BoxID).Scan(&lockedEventID, &isDeleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock collection box %d: %w", box.BoxID, err)
	}
	if isDeleted {
		return apperrors.ErrNotFound
	}
	if lockedEventID == nil || *lockedEventID != eventID {
		return fmt.Errorf("%w: collection box %d changed assignment during settlement", apperrors.ErrConflict, box.BoxID)
	}

	amountsQuery := `
		SELECT amount_id, amount
		FROM box_currency_amounts
		WHERE box_id = $1 AND is_deleted = false
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, amountsQuery, box.BoxID)
	if err != nil {
		return fmt.Errorf("failed to lock amounts of collection box %d: %w", box.BoxID, err)
	}
	lockedAmounts := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var amountID int64
		var amount decimal.Decimal
		if err := rows.Scan(&amountID, &amount); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan locked amounts of collection box %d: %w", box.BoxID, err)
		}
		lockedAmounts[amountID] = amount
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read locked amounts of collection box %d: %w", box.BoxID, err)
	}

	if len(lockedAmounts) != len(box.Amounts) {
		return fmt.Errorf("%w: contents of collection box %d changed during settlement", apperrors.ErrConflict, box.BoxID)
	}
	for _, entry := range box.Amounts {
		locked, ok := lockedAmounts[entry.AmountID]
		if !ok || !locked.Equal(entry.Amount) {
			return fmt.Errorf("%w: contents of collection box %d changed during settlement", apperrors.ErrConflict, box.BoxID)
		}
	}

	zeroQuery := `
		UPDATE box_currency_amounts
		SET amount = 0, last_updated_at = $2
		WHERE box_id = $1 AND is_deleted = false;
	`
	now := time.Now()
	if _, err := tx.Exec(ctx, zeroQuery, box.BoxID, now); err != nil {
		return fmt.Errorf("failed to empty collection box %d: %w", box.BoxID, err)
	}

	creditQuery := `
		UPDATE fundraising_events
		SET account_balance = account_balance + $2, last_updated_at = $3
		WHERE event_id = $1;
	`
	tag, err := tx.Exec(ctx, creditQuery, eventID, total, now)
	if err != nil {
		return fmt.Errorf("failed to credit fundraising event %d: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: fundraising event with ID %d not found", apperrors.ErrNotFound, eventID)
	}

	return r.Commit(ctx, tx)
}

// findAmountsByBoxIDs loads the live per-currency entries for a set of boxes,
// grouped by box ID.
func (r *PgxBoxRepository) findAmountsByBoxIDs(ctx context.Context, boxIDs []int64) (map[int64][]models.BoxCurrencyAmount, error) {
	amountsByBox := make(map[int64][]models.BoxCurrencyAmount, len(boxIDs))
	if len(boxIDs) == 0 {
		return amountsByBox, nil
	}

	query := `
		SELECT amount_id, box_id, currency_code, amount, is_deleted, created_at, last_updated_at
		FROM box_currency_amounts
		WHERE box_id = ANY($1) AND is_deleted = false
		ORDER BY box_id, currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, boxIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query box amounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var amount models.BoxCurrencyAmount
		err := rows.Scan(
			&amount.AmountID,
			&amount.BoxID,
			&amount.CurrencyCode,
			&amount.Amount,
			&amount.IsDeleted,
			&amount.CreatedAt,
			&amount.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan box amount: %w", err)
		}
		amountsByBox[amount.BoxID] = append(amountsByBox[amount.BoxID], amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read box amounts: %w", err)
	}
	return amountsByBox, nil
}
