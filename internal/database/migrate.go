package database

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema if it does not exist yet.
// The ledger engine depends on two pieces of it: the RESTRICT foreign key
// (items with surviving transactions cannot be deleted) and the partial
// unique index on idempotency_key.
func Migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		image_url TEXT,
		description TEXT,
		current_stock BIGINT NOT NULL DEFAULT 0 CHECK (current_stock >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);

	CREATE INDEX IF NOT EXISTS idx_items_name ON items(name);

	CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		item_id UUID NOT NULL REFERENCES items(id) ON DELETE RESTRICT,
		type TEXT NOT NULL CHECK (type IN ('IN', 'OUT')),
		quantity BIGINT NOT NULL CHECK (quantity > 0),
		description TEXT NOT NULL DEFAULT '',
		idempotency_key TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_item ON transactions(item_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_type_created
		ON transactions(type, created_at DESC);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_idempotency
		ON transactions(idempotency_key) WHERE idempotency_key IS NOT NULL;
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}
