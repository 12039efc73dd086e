package cli

import (
	"errors"

	"github.com/thenoetrevino/daykan/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments or unparseable IDs.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, bad column names, malformed archive dates.
	ExitValidation = 5

	// ExitNotEditable indicates a task exists but is read-only:
	// it is archived or belongs to a previous day.
	ExitNotEditable = 6
)

// UsageError marks errors caused by how the command was invoked
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrNotEditable):
		return ExitNotEditable
	default:
		return ExitError
	}
}

// ErrorCode is the machine readable code reported in JSON error output
func ErrorCode(err error) string {
	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		return "USAGE_ERROR"
	case errors.Is(err, models.ErrNotFound):
		return "TASK_NOT_FOUND"
	case errors.Is(err, models.ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, models.ErrNotEditable):
		return "NOT_EDITABLE"
	default:
		return "INTERNAL_ERROR"
	}
}
