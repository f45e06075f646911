package domain

import "errors"

// Sentinel errors returned by market operations.
// Adapters wrap them with fmt.Errorf("...: %w") and match with errors.Is.
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrInvestmentNotFound = errors.New("investment not found")
	ErrEntryNotFound      = errors.New("investment entry not found")
	ErrDuplicateEntry     = errors.New("investment entry already exists")
	ErrModalClosed        = errors.New("investment modal is not open")
	ErrInvalidEntry       = errors.New("invalid investment entry")
	ErrInvalidAccount     = errors.New("invalid account")
)
