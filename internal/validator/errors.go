package validator

import "errors"

// ErrInvalidSelector is returned when a selector string cannot be used.
var ErrInvalidSelector = errors.New("invalid selector")
