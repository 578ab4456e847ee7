package item

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("item not found")
	// ErrInUse is returned when deleting an item that still has ledger
	// transactions. The ledger is the audit record; removing its owner
	// would orphan it.
	ErrInUse = errors.New("item has ledger transactions")
)

// Item is a stock-keeping unit. CurrentStock is the materialized balance
// of the item's ledger and is only ever written by the ledger engine;
// catalog updates never touch it.
type Item struct {
	ID           uuid.UUID
	Name         string
	Category     string
	Unit         string
	Location     string
	ImageURL     string
	Description  string
	CurrentStock int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
