package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) TopDescriptions(ctx context.Context, itemID uuid.UUID, limit int) ([]string, error) {
	query := `
		SELECT description
		FROM transactions
		WHERE item_id = $1 AND type = 'OUT' AND description <> ''
		GROUP BY description
		ORDER BY COUNT(*) DESC, MAX(created_at) DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying descriptions: %w", err)
	}
	defer rows.Close()

	var descriptions []string

	for rows.Next() {
		var desc string

		if err := rows.Scan(&desc); err != nil {
			return nil, fmt.Errorf("scanning description: %w", err)
		}

		descriptions = append(descriptions, desc)
	}

	return descriptions, rows.Err()
}
