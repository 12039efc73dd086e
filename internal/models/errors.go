package models

import "errors"

// Error classes shared by every service. Services wrap these with a
// specific message; callers classify with errors.Is.
var (
	// ErrValidation marks bad input such as an empty title or malformed date
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a reference to a task that does not exist
	ErrNotFound = errors.New("not found")

	// ErrNotEditable marks a task that is archived or not dated today
	ErrNotEditable = errors.New("not editable")
)
