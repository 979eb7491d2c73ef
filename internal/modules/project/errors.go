package project

import "errors"

var (
	ErrNotFound          = errors.New("project not found")
	ErrInvalidContractor = errors.New("invalid contractor")
	ErrInvalidStatus     = errors.New("invalid project status")
)
