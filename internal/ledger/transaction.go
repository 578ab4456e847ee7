package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type says which way a movement changes the owning item's balance.
// It is fixed at creation; edits may change quantity, description and
// timestamp, never the direction.
type Type string

const (
	TypeIn  Type = "IN"
	TypeOut Type = "OUT"
)

func (t Type) Valid() bool {
	return t == TypeIn || t == TypeOut
}

var (
	ErrNotFound     = errors.New("transaction not found")
	ErrItemNotFound = errors.New("item not found")

	ErrInvalidType     = errors.New("invalid movement type")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyBatch      = errors.New("batch requires at least one description")

	// ErrInsufficientStock is returned when an operation would drive the
	// item's balance below zero. Nothing is written in that case.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateRequest is returned when a movement carries an
	// idempotency key that has already been recorded.
	ErrDuplicateRequest = errors.New("duplicate request")
)

// Transaction is one ledger entry: a single stock movement of an item.
type Transaction struct {
	ID             uuid.UUID
	ItemID         uuid.UUID
	Type           Type
	Quantity       int64
	Description    string
	IdempotencyKey string
	Item           *ItemRef // Loaded via JOIN
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// ItemRef is the slice of the owning item that list views need.
type ItemRef struct {
	ID   uuid.UUID
	Name string
	Unit string
}

// signedDelta is the amount a movement changes the balance by:
// +quantity for IN, -quantity for OUT.
func signedDelta(t Type, quantity int64) int64 {
	if t == TypeIn {
		return quantity
	}

	return -quantity
}
