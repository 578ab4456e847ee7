package stock

import (
	"time"

	"github.com/google/uuid"

	"github.com/hjkwon/stockroom/internal/ledger"
)

type movementResponse struct {
	ID          uuid.UUID     `json:"id"`
	ItemID      uuid.UUID     `json:"itemId"`
	Type        ledger.Type   `json:"type"`
	Quantity    int64         `json:"quantity"`
	Description string        `json:"description,omitempty"`
	Item        *itemResponse `json:"item,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty"`
}

type itemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Unit string    `json:"unit"`
}

func toResponse(tx *ledger.Transaction) movementResponse {
	resp := movementResponse{
		ID:          tx.ID,
		ItemID:      tx.ItemID,
		Type:        tx.Type,
		Quantity:    tx.Quantity,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}

	if tx.Item != nil {
		resp.Item = &itemResponse{
			ID:   tx.Item.ID,
			Name: tx.Item.Name,
			Unit: tx.Item.Unit,
		}
	}

	return resp
}

func toResponseList(txs []*ledger.Transaction) []movementResponse {
	resp := make([]movementResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
