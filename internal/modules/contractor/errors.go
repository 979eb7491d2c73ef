package contractor

import "errors"

var (
	ErrNotFound      = errors.New("contractor not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
