package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hjkwon/stockroom/internal/ledger"
)

const pgUniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	t.id, t.item_id, t.type, t.quantity, t.description, t.idempotency_key,
	t.created_at, t.updated_at,
	i.id, i.name, i.unit
`

func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var ref ledger.ItemRef

	var description, idempotencyKey sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.ItemID, &tx.Type, &tx.Quantity, &description, &idempotencyKey,
		&tx.CreatedAt, &tx.UpdatedAt,
		&ref.ID, &ref.Name, &ref.Unit,
	); err != nil {
		return nil, err
	}

	tx.Description = description.String
	tx.IdempotencyKey = idempotencyKey.String
	tx.Item = &ref

	return &tx, nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	query := `
		SELECT ` + selectTransactionColumns + `
		FROM transactions t
		JOIN items i ON i.id = t.item_id
		WHERE t.id = $1
	`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	query := `
		SELECT ` + selectTransactionColumns + `
		FROM transactions t
		JOIN items i ON i.id = t.item_id
	`

	var (
		conditions []string
		args       []any
	)

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		conditions = append(conditions, fmt.Sprintf("t.type = $%d", len(args)))
	}

	if filter.ItemID != nil {
		args = append(args, *filter.ItemID)
		conditions = append(conditions, fmt.Sprintf("t.item_id = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY t.created_at DESC LIMIT $%d", len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// movementTx holds an open database transaction with the item's balance
// row locked FOR UPDATE until Commit or Rollback.
type movementTx struct {
	tx     *sql.Tx
	itemID uuid.UUID
	stock  int64
}

func (s *Store) BeginMovement(ctx context.Context, itemID uuid.UUID) (ledger.MovementTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning movement: %w", err)
	}

	var stock int64

	err = tx.QueryRowContext(ctx,
		`SELECT current_stock FROM items WHERE id = $1 FOR UPDATE`, itemID,
	).Scan(&stock)
	if err != nil {
		tx.Rollback()

		if err == sql.ErrNoRows {
			return nil, ledger.ErrItemNotFound
		}

		return nil, fmt.Errorf("locking item: %w", err)
	}

	return &movementTx{tx: tx, itemID: itemID, stock: stock}, nil
}

func (m *movementTx) Stock() int64 {
	return m.stock
}

func (m *movementTx) InsertTransactions(ctx context.Context, txs []*ledger.Transaction) error {
	query := `
		INSERT INTO transactions (item_id, type, quantity, description, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	for _, t := range txs {
		var key any
		if t.IdempotencyKey != "" {
			key = t.IdempotencyKey
		}

		err := m.tx.QueryRowContext(ctx, query,
			t.ItemID,
			string(t.Type),
			t.Quantity,
			t.Description,
			key,
			t.CreatedAt,
		).Scan(&t.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return ledger.ErrDuplicateRequest
			}

			return fmt.Errorf("inserting transaction: %w", err)
		}
	}

	return nil
}

func (m *movementTx) UpdateItemStock(ctx context.Context, stock int64) error {
	return updateItemStock(ctx, m.tx, m.itemID, stock)
}

func (m *movementTx) Commit() error {
	return m.tx.Commit()
}

func (m *movementTx) Rollback() error {
	return m.tx.Rollback()
}

// revisionTx locks the ledger row before the item row. Both lock
// orderings start from a distinct transactions row, so two concurrent
// revisions cannot deadlock each other.
type revisionTx struct {
	tx      *sql.Tx
	current *ledger.Transaction
	stock   int64
}

func (s *Store) BeginRevision(ctx context.Context, txID uuid.UUID) (ledger.RevisionTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning revision: %w", err)
	}

	var (
		current        ledger.Transaction
		description    sql.NullString
		idempotencyKey sql.NullString
	)

	err = tx.QueryRowContext(ctx, `
		SELECT id, item_id, type, quantity, description, idempotency_key, created_at, updated_at
		FROM transactions
		WHERE id = $1
		FOR UPDATE
	`, txID).Scan(
		&current.ID, &current.ItemID, &current.Type, &current.Quantity,
		&description, &idempotencyKey, &current.CreatedAt, &current.UpdatedAt,
	)
	if err != nil {
		tx.Rollback()

		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("locking transaction: %w", err)
	}

	current.Description = description.String
	current.IdempotencyKey = idempotencyKey.String

	var stock int64

	err = tx.QueryRowContext(ctx,
		`SELECT current_stock FROM items WHERE id = $1 FOR UPDATE`, current.ItemID,
	).Scan(&stock)
	if err != nil {
		tx.Rollback()

		return nil, fmt.Errorf("locking item: %w", err)
	}

	return &revisionTx{tx: tx, current: &current, stock: stock}, nil
}

func (r *revisionTx) Stock() int64 {
	return r.stock
}

func (r *revisionTx) Transaction() *ledger.Transaction {
	return r.current
}

func (r *revisionTx) UpdateTransaction(ctx context.Context, t *ledger.Transaction) error {
	query := `
		UPDATE transactions
		SET quantity = $1, description = $2, created_at = $3, updated_at = $4
		WHERE id = $5
	`

	_, err := r.tx.ExecContext(ctx, query,
		t.Quantity,
		t.Description,
		t.CreatedAt,
		t.UpdatedAt,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (r *revisionTx) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if _, err := r.tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

func (r *revisionTx) UpdateItemStock(ctx context.Context, stock int64) error {
	return updateItemStock(ctx, r.tx, r.current.ItemID, stock)
}

func (r *revisionTx) Commit() error {
	return r.tx.Commit()
}

func (r *revisionTx) Rollback() error {
	return r.tx.Rollback()
}

func updateItemStock(ctx context.Context, tx *sql.Tx, itemID uuid.UUID, stock int64) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE items SET current_stock = $1, updated_at = NOW() WHERE id = $2`,
		stock, itemID,
	)
	if err != nil {
		return fmt.Errorf("updating item stock: %w", err)
	}

	return nil
}
