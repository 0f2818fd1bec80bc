package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"lendshare/internal/adapters/persistence/repositories"
	"lendshare/internal/core/domain"
)

// emailPattern accepts the basic local@domain.tld shape, nothing more
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService handles user registry business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterInput represents user registration input
type RegisterInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register validates and persists a new user. Email is stored trimmed
// and lowercased. Points start at zero and are only ever mutated by the
// item and loan flows.
func (s *UserService) Register(ctx context.Context, input *RegisterInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, domain.ErrEmptyName
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}

	user := &domain.User{
		Name:      input.Name,
		Email:     email,
		Points:    0,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List lists all registered users in backend-dependent order
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// Get looks up a user by id. A missing user is (nil, nil); callers
// decide whether absence is an error.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// AdjustPoints adds delta (possibly negative) to the user's points.
// No bounds check happens here; the borrow flow pre-checks sufficiency.
func (s *UserService) AdjustPoints(ctx context.Context, id string, delta int) error {
	matched, err := s.userRepo.IncrementPoints(ctx, id, delta)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrUserNotFound
	}
	return nil
}
