package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/hjkwon/stockroom/internal/item"
)

type itemResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Unit         string     `json:"unit"`
	Location     string     `json:"location"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	Description  string     `json:"description,omitempty"`
	CurrentStock int64      `json:"currentStock"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

func toResponse(it *item.Item) itemResponse {
	return itemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Unit:         it.Unit,
		Location:     it.Location,
		ImageURL:     it.ImageURL,
		Description:  it.Description,
		CurrentStock: it.CurrentStock,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

func toResponseList(items []*item.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = toResponse(it)
	}

	return resp
}
