package suggest

import (
	"context"

	"github.com/google/uuid"
)

const defaultLimit = 5

type Repository interface {
	TopDescriptions(ctx context.Context, itemID uuid.UUID, limit int) ([]string, error)
}

// Service suggests outbound descriptions (who or what the stock usually
// goes to) based on an item's ledger history.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ForItem returns the item's most frequent outbound descriptions,
// most common first. Returns an empty slice when the item has no
// outbound history.
func (s *Service) ForItem(ctx context.Context, itemID uuid.UUID) ([]string, error) {
	return s.repo.TopDescriptions(ctx, itemID, defaultLimit)
}
