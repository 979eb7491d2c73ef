package complaint

import "errors"

var (
	ErrNotFound          = errors.New("complaint not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrInvalidStatus     = errors.New("invalid complaint status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
