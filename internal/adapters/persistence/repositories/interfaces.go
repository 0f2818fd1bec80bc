package repositories

import (
	"context"

	"lendshare/internal/core/domain"
)

// UserRepository defines user storage access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// IncrementPoints adds delta to the user's points. The returned bool
	// reports whether the id matched an existing record.
	IncrementPoints(ctx context.Context, id string, delta int) (bool, error)
}

// ItemRepository defines item storage access
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	List(ctx context.Context) ([]*domain.Item, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	// SetAvailability updates the availability flag. The returned bool
	// reports whether the id matched an existing record.
	SetAvailability(ctx context.Context, id string, available bool) (bool, error)
}

// LoanRepository defines loan storage access
type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	List(ctx context.Context) ([]*domain.Loan, error)
}

// Store bundles the repositories of one storage backend. A single Store
// is constructed at startup and held for the process lifetime.
type Store struct {
	Users UserRepository
	Items ItemRepository
	Loans LoanRepository

	// Backend is "mongo" or "memory", reported by the health endpoint.
	Backend string
}
