package domain

import "errors"

// Common domain errors
var (
	ErrValidation     = errors.New("invalid input")
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("conflict")
	ErrInternalServer = errors.New("internal server error")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyName    = errors.New("name must not be empty")
	ErrInvalidEmail = errors.New("invalid email")
)

// Item errors
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

// Loan errors
var (
	ErrItemOnLoan         = errors.New("item already on loan")
	ErrInsufficientPoints = errors.New("insufficient points")
)
