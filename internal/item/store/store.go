package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hjkwon/stockroom/internal/item"
)

const pgFKViolation = "23503"

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

const selectItemColumns = `
	id, name, category, unit, location, image_url, description,
	current_stock, created_at, updated_at
`

func scanItem(s scanner) (*item.Item, error) {
	var it item.Item

	var imageURL, description sql.NullString

	if err := s.Scan(
		&it.ID, &it.Name, &it.Category, &it.Unit, &it.Location,
		&imageURL, &description, &it.CurrentStock, &it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}

	it.ImageURL = imageURL.String
	it.Description = description.String

	return &it, nil
}

func (s *Store) CreateItem(ctx context.Context, it *item.Item) error {
	query := `
		INSERT INTO items (name, category, unit, location, image_url, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, current_stock, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		it.Name,
		it.Category,
		it.Unit,
		it.Location,
		it.ImageURL,
		it.Description,
	).Scan(&it.ID, &it.CurrentStock, &it.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	return nil
}

func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items WHERE id = $1`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, item.ErrNotFound
		}

		return nil, fmt.Errorf("getting item: %w", err)
	}

	return it, nil
}

func (s *Store) GetItemByName(ctx context.Context, name string) (*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items WHERE name = $1`

	it, err := scanItem(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, item.ErrNotFound
		}

		return nil, fmt.Errorf("getting item by name: %w", err)
	}

	return it, nil
}

func (s *Store) ListItems(ctx context.Context, filter item.ListFilter) ([]*item.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM items`

	var args []any

	if filter.Query != "" {
		query += ` WHERE name ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%'`

		args = append(args, filter.Query)
	}

	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*item.Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, it)
	}

	return items, rows.Err()
}

func (s *Store) UpdateItem(ctx context.Context, it *item.Item) error {
	query := `
		UPDATE items
		SET name = $1, category = $2, unit = $3, location = $4,
			image_url = $5, description = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		it.Name,
		it.Category,
		it.Unit,
		it.Location,
		it.ImageURL,
		it.Description,
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
			return item.ErrInUse
		}

		return fmt.Errorf("deleting item: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	if rows == 0 {
		return item.ErrNotFound
	}

	return nil
}
