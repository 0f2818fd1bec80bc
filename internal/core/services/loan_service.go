package services

import (
	"context"
	"time"

	"lendshare/internal/adapters/persistence/repositories"
	"lendshare/internal/core/domain"
)

// LoanService handles the borrow/return workflow. An item is either
// available or on loan; borrowing flips it to on loan, returning flips
// it back. Loan records are an append-only audit trail and are never
// closed.
type LoanService struct {
	loanRepo repositories.LoanRepository
	itemRepo repositories.ItemRepository
	userRepo repositories.UserRepository
}

// NewLoanService creates a new loan service
func NewLoanService(
	loanRepo repositories.LoanRepository,
	itemRepo repositories.ItemRepository,
	userRepo repositories.UserRepository,
) *LoanService {
	return &LoanService{
		loanRepo: loanRepo,
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

// BorrowInput represents borrow input
type BorrowInput struct {
	ItemID     string `json:"item_id"`
	BorrowerID string `json:"borrower_id"`
}

// Borrow moves an item from available to on loan. Existence checks come
// before the availability check, which comes before the points check, so
// callers get 404 before 409 before 403. The availability flip happens
// before the points debit: a failure in between leaves the item correctly
// marked unavailable, and the lost debit has no compensating transaction.
func (s *LoanService) Borrow(ctx context.Context, input *BorrowInput) (*domain.Loan, error) {
	item, err := s.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	if !item.Available {
		return nil, domain.ErrItemOnLoan
	}

	borrower, err := s.userRepo.GetByID(ctx, input.BorrowerID)
	if err != nil {
		return nil, err
	}
	if borrower == nil {
		return nil, domain.ErrUserNotFound
	}

	if borrower.Points < domain.PointsForBorrow {
		return nil, domain.ErrInsufficientPoints
	}

	matched, err := s.itemRepo.SetAvailability(ctx, input.ItemID, false)
	if err != nil {
		return nil, err
	}
	if !matched {
		// The item resolved above, so an unmatched update is an
		// unexpected storage state
		return nil, domain.ErrInternalServer
	}

	if _, err := s.userRepo.IncrementPoints(ctx, input.BorrowerID, -domain.PointsForBorrow); err != nil {
		return nil, err
	}

	loan := &domain.Loan{
		ItemID:     input.ItemID,
		BorrowerID: input.BorrowerID,
		BorrowedAt: time.Now().UTC(),
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	return loan, nil
}

// Return marks an item available again. It only requires that the item
// exists: returning an already-available item succeeds, no loan record
// is located or closed, and no points are refunded.
func (s *LoanService) Return(ctx context.Context, itemID string) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}

	matched, err := s.itemRepo.SetAvailability(ctx, itemID, true)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrInternalServer
	}

	return nil
}

// List lists all loan records in backend-dependent order
func (s *LoanService) List(ctx context.Context) ([]*domain.Loan, error) {
	return s.loanRepo.List(ctx)
}
