package exchange

import "errors"

// Service errors
var (
	ErrUnknownCurrency = errors.New("unknown currency")
)
