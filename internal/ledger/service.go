package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)

	// BeginMovement opens a storage transaction holding a write lock on
	// the item's balance row. The balance read under that lock is
	// available via MovementTx.Stock.
	BeginMovement(ctx context.Context, itemID uuid.UUID) (MovementTx, error)

	// BeginRevision opens a storage transaction holding write locks on
	// the ledger row and its owning item's balance row.
	BeginRevision(ctx context.Context, txID uuid.UUID) (RevisionTx, error)
}

// MovementTx is the atomic unit for recording new movements.
type MovementTx interface {
	// Stock is the item's balance as read under the row lock.
	Stock() int64
	InsertTransactions(ctx context.Context, txs []*Transaction) error
	UpdateItemStock(ctx context.Context, stock int64) error
	Commit() error
	Rollback() error
}

// RevisionTx is the atomic unit for editing or deleting an existing
// movement.
type RevisionTx interface {
	Stock() int64
	// Transaction is the target ledger row as read under the lock.
	Transaction() *Transaction
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	UpdateItemStock(ctx context.Context, stock int64) error
	Commit() error
	Rollback() error
}

// Invalidator is notified after a commit so read-side caches can drop
// stale projections. Failures are logged, never propagated: a committed
// ledger change is never rolled back over a cache.
type Invalidator interface {
	ItemChanged(ctx context.Context, itemID uuid.UUID) error
}

// Service is the ledger engine. Every mutation runs as one storage
// transaction that re-reads the balance under a row lock, validates the
// non-negativity invariant, and writes the balance and the ledger rows
// together.
type Service struct {
	repo        Repository
	invalidator Invalidator
	now         func() time.Time
}

func NewService(repo Repository, invalidator Invalidator) *Service {
	return &Service{
		repo:        repo,
		invalidator: invalidator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type RecordParams struct {
	ItemID      uuid.UUID
	Type        Type
	Quantity    int64
	Description string
	// CreatedAt overrides the movement timestamp (bulk imports,
	// backdated entries). Zero means now.
	CreatedAt time.Time
	// IdempotencyKey, when set, makes a retried call fail with
	// ErrDuplicateRequest instead of double-applying.
	IdempotencyKey string
}

// Record applies a single movement: balance delta, non-negativity check
// and ledger insert in one atomic unit.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Transaction, error) {
	if !params.Type.Valid() {
		return nil, ErrInvalidType
	}

	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	mtx, err := s.repo.BeginMovement(ctx, params.ItemID)
	if err != nil {
		return nil, err
	}
	defer mtx.Rollback()

	stock := mtx.Stock() + signedDelta(params.Type, params.Quantity)
	if stock < 0 {
		return nil, ErrInsufficientStock
	}

	tx := &Transaction{
		ItemID:         params.ItemID,
		Type:           params.Type,
		Quantity:       params.Quantity,
		Description:    params.Description,
		IdempotencyKey: params.IdempotencyKey,
		CreatedAt:      params.CreatedAt,
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = s.now()
	}

	if err := mtx.InsertTransactions(ctx, []*Transaction{tx}); err != nil {
		return nil, err
	}

	if err := mtx.UpdateItemStock(ctx, stock); err != nil {
		return nil, err
	}

	if err := mtx.Commit(); err != nil {
		return nil, fmt.Errorf("committing movement: %w", err)
	}

	s.notifyItemChanged(ctx, params.ItemID)

	return tx, nil
}

type BatchOutboundParams struct {
	ItemID   uuid.UUID
	Type     Type
	Quantity int64
	// One transaction is written per description, each of Quantity.
	Descriptions []string
}

// RecordBatchOutbound writes one OUT movement per description, all of
// the same quantity, as a single atomicity unit: if the combined
// deduction would drive the balance negative, no transaction is written.
func (s *Service) RecordBatchOutbound(ctx context.Context, params BatchOutboundParams) ([]*Transaction, error) {
	if params.Type != TypeOut {
		return nil, ErrInvalidType
	}

	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if len(params.Descriptions) == 0 {
		return nil, ErrEmptyBatch
	}

	mtx, err := s.repo.BeginMovement(ctx, params.ItemID)
	if err != nil {
		return nil, err
	}
	defer mtx.Rollback()

	total := params.Quantity * int64(len(params.Descriptions))

	stock := mtx.Stock() - total
	if stock < 0 {
		return nil, ErrInsufficientStock
	}

	now := s.now()
	txs := make([]*Transaction, len(params.Descriptions))

	for i, desc := range params.Descriptions {
		txs[i] = &Transaction{
			ItemID:      params.ItemID,
			Type:        TypeOut,
			Quantity:    params.Quantity,
			Description: desc,
			CreatedAt:   now,
		}
	}

	if err := mtx.InsertTransactions(ctx, txs); err != nil {
		return nil, err
	}

	if err := mtx.UpdateItemStock(ctx, stock); err != nil {
		return nil, err
	}

	if err := mtx.Commit(); err != nil {
		return nil, fmt.Errorf("committing batch: %w", err)
	}

	s.notifyItemChanged(ctx, params.ItemID)

	return txs, nil
}

type EditParams struct {
	Quantity    int64
	Description string
	// CreatedAt, when non-nil, backdates the movement.
	CreatedAt *time.Time
}

// Edit replaces a movement's quantity/description/timestamp. The balance
// is corrected by reverting the original signed delta and reapplying the
// new one; the movement's type never changes.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, params EditParams) (*Transaction, error) {
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	rtx, err := s.repo.BeginRevision(ctx, id)
	if err != nil {
		return nil, err
	}
	defer rtx.Rollback()

	old := rtx.Transaction()

	reverted := rtx.Stock() - signedDelta(old.Type, old.Quantity)

	stock := reverted + signedDelta(old.Type, params.Quantity)
	if stock < 0 {
		return nil, ErrInsufficientStock
	}

	updated := *old
	updated.Quantity = params.Quantity
	updated.Description = params.Description

	if params.CreatedAt != nil {
		updated.CreatedAt = *params.CreatedAt
	}

	now := s.now()
	updated.UpdatedAt = &now

	if err := rtx.UpdateTransaction(ctx, &updated); err != nil {
		return nil, err
	}

	if err := rtx.UpdateItemStock(ctx, stock); err != nil {
		return nil, err
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("committing edit: %w", err)
	}

	s.notifyItemChanged(ctx, old.ItemID)

	return &updated, nil
}

// Delete removes a movement and reverts its effect on the balance.
// Deleting an IN movement is rejected when the balance cannot absorb it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	rtx, err := s.repo.BeginRevision(ctx, id)
	if err != nil {
		return err
	}
	defer rtx.Rollback()

	old := rtx.Transaction()

	stock := rtx.Stock() - signedDelta(old.Type, old.Quantity)
	if stock < 0 {
		return ErrInsufficientStock
	}

	if err := rtx.DeleteTransaction(ctx, old.ID); err != nil {
		return err
	}

	if err := rtx.UpdateItemStock(ctx, stock); err != nil {
		return err
	}

	if err := rtx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	s.notifyItemChanged(ctx, old.ItemID)

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

const maxListLimit = 50

type ListFilter struct {
	Type   *Type
	ItemID *uuid.UUID
	Limit  int
}

// List returns movements most-recent-first, at most 50.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, ErrInvalidType
	}

	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) notifyItemChanged(ctx context.Context, itemID uuid.UUID) {
	if s.invalidator == nil {
		return
	}

	if err := s.invalidator.ItemChanged(ctx, itemID); err != nil {
		slog.Warn("cache invalidation failed", "item_id", itemID, "error", err)
	}
}
