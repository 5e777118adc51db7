package domain

import "errors"

var (
	// ErrInvalidParameter marks client input that cannot be turned into a filter.
	ErrInvalidParameter = errors.New("invalid parameter")
)
