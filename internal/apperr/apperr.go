// Package apperr defines the error kinds shared across typit packages.
package apperr

import "errors"

var (
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrNoContent           = errors.New("no content available")
	ErrInvalidDifficulty   = errors.New("invalid difficulty level")
	ErrInvalidMenuChoice   = errors.New("invalid menu choice")
	ErrInvalidInput        = errors.New("invalid input")
)
