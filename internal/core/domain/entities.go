package domain

import "time"

// Points economy constants
const (
	PointsForLending = 10 // credited to the owner on every item created
	PointsForBorrow  = 5  // minimum balance to borrow, debited on success
)

// User represents a registered user in the domain layer
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"-"`
}

// Item represents a lendable item
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"-"`
}

// Loan represents one borrow transaction. Loans are an append-only
// audit trail: returning an item flips its availability but never
// touches the loan record.
type Loan struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	BorrowerID string    `json:"borrower_id"`
	BorrowedAt time.Time `json:"borrowed_at"`
}
