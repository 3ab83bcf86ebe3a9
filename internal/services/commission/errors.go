package commission

import "errors"

// Service errors
var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
