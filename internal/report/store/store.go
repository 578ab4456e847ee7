package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hjkwon/stockroom/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DailyOutboundTotals(ctx context.Context, rng report.DateRange) ([]report.DailyOutbound, error) {
	query := `
		SELECT date_trunc('day', t.created_at) AS day,
			t.item_id, i.name, i.unit,
			SUM(t.quantity), COUNT(*)
		FROM transactions t
		JOIN items i ON i.id = t.item_id
		WHERE t.type = 'OUT'
	`

	var args []any

	if rng.From != nil {
		args = append(args, *rng.From)
		query += fmt.Sprintf(" AND t.created_at >= $%d", len(args))
	}

	if rng.To != nil {
		args = append(args, *rng.To)
		query += fmt.Sprintf(" AND t.created_at < $%d", len(args))
	}

	query += `
		GROUP BY day, t.item_id, i.name, i.unit
		ORDER BY day DESC, i.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying daily totals: %w", err)
	}
	defer rows.Close()

	var totals []report.DailyOutbound

	for rows.Next() {
		var row report.DailyOutbound

		if err := rows.Scan(
			&row.Day, &row.ItemID, &row.ItemName, &row.Unit, &row.Total, &row.Count,
		); err != nil {
			return nil, fmt.Errorf("scanning daily total: %w", err)
		}

		totals = append(totals, row)
	}

	return totals, rows.Err()
}

func (s *Store) OutboundSince(ctx context.Context, since time.Time) ([]report.OutboundMovement, error) {
	query := `
		SELECT t.item_id, i.name, i.unit, t.quantity, t.created_at
		FROM transactions t
		JOIN items i ON i.id = t.item_id
		WHERE t.type = 'OUT' AND t.created_at >= $1
		ORDER BY t.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("querying outbound movements: %w", err)
	}
	defer rows.Close()

	var movements []report.OutboundMovement

	for rows.Next() {
		var m report.OutboundMovement

		if err := rows.Scan(&m.ItemID, &m.ItemName, &m.Unit, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning outbound movement: %w", err)
		}

		movements = append(movements, m)
	}

	return movements, rows.Err()
}
