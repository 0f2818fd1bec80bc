package repositories

import (
	"context"
	"sync"

	"lendshare/internal/core/domain"

	"github.com/google/uuid"
)

// NewMemoryStore creates the in-memory backend. State lives for the
// process lifetime; nothing is persisted.
func NewMemoryStore() *Store {
	return &Store{
		Users:   &memoryUserRepository{users: make(map[string]domain.User)},
		Items:   &memoryItemRepository{items: make(map[string]domain.Item)},
		Loans:   &memoryLoanRepository{loans: make(map[string]domain.Loan)},
		Backend: "memory",
	}
}

// memoryUserRepository implements UserRepository over a map
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		u := u
		users = append(users, &u)
	}
	return users, nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryUserRepository) IncrementPoints(_ context.Context, id string, delta int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	u.Points += delta
	r.users[id] = u
	return true, nil
}

// memoryItemRepository implements ItemRepository over a map
type memoryItemRepository struct {
	mu    sync.Mutex
	items map[string]domain.Item
}

func (r *memoryItemRepository) Create(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = uuid.NewString()
	r.items[item.ID] = *item
	return nil
}

func (r *memoryItemRepository) List(_ context.Context) ([]*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]*domain.Item, 0, len(r.items))
	for _, it := range r.items {
		it := it
		items = append(items, &it)
	}
	return items, nil
}

func (r *memoryItemRepository) GetByID(_ context.Context, id string) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *memoryItemRepository) SetAvailability(_ context.Context, id string, available bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return false, nil
	}
	it.Available = available
	r.items[id] = it
	return true, nil
}

// memoryLoanRepository implements LoanRepository over a map
type memoryLoanRepository struct {
	mu    sync.Mutex
	loans map[string]domain.Loan
}

func (r *memoryLoanRepository) Create(_ context.Context, loan *domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	loan.ID = uuid.NewString()
	r.loans[loan.ID] = *loan
	return nil
}

func (r *memoryLoanRepository) List(_ context.Context) ([]*domain.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	loans := make([]*domain.Loan, 0, len(r.loans))
	for _, l := range r.loans {
		l := l
		loans = append(loans, &l)
	}
	return loans, nil
}
