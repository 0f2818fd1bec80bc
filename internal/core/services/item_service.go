package services

import (
	"context"
	"time"

	"lendshare/internal/adapters/persistence/repositories"
	"lendshare/internal/core/domain"
)

// ItemService handles item catalog business logic
type ItemService struct {
	itemRepo repositories.ItemRepository
	userRepo repositories.UserRepository
}

// NewItemService creates a new item service
func NewItemService(
	itemRepo repositories.ItemRepository,
	userRepo repositories.UserRepository,
) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

// CreateItemInput represents item creation input
type CreateItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
}

// Create persists a new item for an existing owner and credits the
// owner PointsForLending. The credit is unconditional and never
// reversed; items cannot be deleted.
func (s *ItemService) Create(ctx context.Context, input *CreateItemInput) (*domain.Item, error) {
	if input.Name == "" {
		return nil, domain.ErrEmptyName
	}

	owner, err := s.userRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrOwnerNotFound
	}

	item := &domain.Item{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
		Available:   true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.IncrementPoints(ctx, input.OwnerID, domain.PointsForLending); err != nil {
		return nil, err
	}

	return item, nil
}

// List lists all items in backend-dependent order
func (s *ItemService) List(ctx context.Context) ([]*domain.Item, error) {
	return s.itemRepo.List(ctx)
}

// Get looks up an item by id. A missing item is (nil, nil).
func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// SetAvailability toggles the availability flag of an existing item
func (s *ItemService) SetAvailability(ctx context.Context, id string, available bool) error {
	matched, err := s.itemRepo.SetAvailability(ctx, id, available)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrItemNotFound
	}
	return nil
}
