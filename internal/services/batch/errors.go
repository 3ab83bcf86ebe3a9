package batch

import "errors"

// Record validation errors
var (
	ErrFieldCount           = errors.New("record must have exactly six fields")
	ErrInvalidDate          = errors.New("invalid operation date")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidUserType      = errors.New("invalid user type")
	ErrInvalidOperationType = errors.New("invalid operation type")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrMissingCurrency      = errors.New("missing currency code")
)
