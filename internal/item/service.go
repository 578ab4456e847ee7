package item

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=item
type Repository interface {
	CreateItem(ctx context.Context, it *Item) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	GetItemByName(ctx context.Context, name string) (*Item, error)
	ListItems(ctx context.Context, filter ListFilter) ([]*Item, error)
	UpdateItem(ctx context.Context, it *Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Category    string
	Unit        string
	Location    string
	ImageURL    string
	Description string
}

// ListFilter narrows List to items whose name or category contains the
// query, case-insensitively.
type ListFilter struct {
	Query string
}

// Create registers a new catalog item with zero stock. Opening stock is
// recorded through the ledger engine so the balance stays equal to the
// ledger sum.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	it := &Item{
		Name:        params.Name,
		Category:    params.Category,
		Unit:        params.Unit,
		Location:    params.Location,
		ImageURL:    params.ImageURL,
		Description: params.Description,
	}
	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

// FindByName resolves an item by its exact name. Import files reference
// items this way.
func (s *Service) FindByName(ctx context.Context, name string) (*Item, error) {
	return s.repo.GetItemByName(ctx, name)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	return s.repo.ListItems(ctx, filter)
}

type UpdateParams struct {
	Name        *string
	Category    *string
	Unit        *string
	Location    *string
	ImageURL    *string
	Description *string
}

// Update changes catalog attributes. CurrentStock is deliberately not
// updatable here.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Item, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		it.Name = *params.Name
	}

	if params.Category != nil {
		it.Category = *params.Category
	}

	if params.Unit != nil {
		it.Unit = *params.Unit
	}

	if params.Location != nil {
		it.Location = *params.Location
	}

	if params.ImageURL != nil {
		it.ImageURL = *params.ImageURL
	}

	if params.Description != nil {
		it.Description = *params.Description
	}

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

// Delete removes an item. Items with surviving ledger transactions are
// refused with ErrInUse.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, id)
}
