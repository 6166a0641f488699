package escrow

import "errors"

var (
	// ErrAlreadyInitialized indicates a record already exists at the derived
	// address. Existence is the uniqueness gate: a second init for the same
	// identity is rejected, never merged.
	ErrAlreadyInitialized = errors.New("record already initialized")
	// ErrNotFound indicates no record exists at the target address.
	ErrNotFound = errors.New("record not found")
	// ErrUnauthorized indicates the authenticated caller is not the identity
	// the operation requires.
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrInvalidState indicates the record is not in the lifecycle stage the
	// attempted transition requires.
	ErrInvalidState = errors.New("invalid chore state for the transition")
	// ErrInvalidRating indicates a rating outside [RatingMin, RatingMax].
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
	// ErrInsufficientBalance indicates a withdrawal exceeding the current
	// withdrawable balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrAmountOverflow     = errors.New("amount overflows the accounting counter")
	ErrMaxPaymentZero     = errors.New("max payment must be greater than zero")
	ErrAmountZero         = errors.New("amount must be greater than zero")
	ErrTitleTooLong       = errors.New("title exceeds maximum length")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
)
