package report

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotFound        = errors.New("report not found")
	ErrDuplicateWeek   = errors.New("report already submitted for this week")
	ErrValidation      = errors.New("validation error")
)
