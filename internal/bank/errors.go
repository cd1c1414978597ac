package bank

import "errors"

var (
	// ErrInvalidAmount is returned when an amount, limit or rate is outside its
	// allowed range (amounts must be strictly positive).
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when a debit would take the balance below
	// the account's floor.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDuplicateAccount is returned when an account with the same key is
	// already registered.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account is registered under a key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrYieldNotSupported is returned when yield is applied to a non-savings account.
	ErrYieldNotSupported = errors.New("yield is only available on savings accounts")

	// ErrDeletionNotRequested is returned when an administrator reviews an
	// account whose owner has not asked for deletion.
	ErrDeletionNotRequested = errors.New("account deletion was not requested")
)
