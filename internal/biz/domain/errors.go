package domain

import "errors"

var (
	// ErrUnknownUser means the acting user has never been registered.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidRating means a rating outside the 1..10 range was supplied.
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
)
