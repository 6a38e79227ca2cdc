package mongodb

import "errors"

var (
	ErrNotFound          = errors.New("document not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInsufficientSeats = errors.New("insufficient seats available")
)
