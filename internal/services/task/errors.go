package task

import (
	"fmt"

	"github.com/thenoetrevino/daykan/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle   = fmt.Errorf("%w: task title cannot be empty", models.ErrValidation)
	ErrTitleTooLong = fmt.Errorf("%w: task title cannot exceed 255 characters", models.ErrValidation)

	// Business logic errors
	ErrTaskNotFound    = fmt.Errorf("task %w", models.ErrNotFound)
	ErrTaskNotEditable = fmt.Errorf("task is archived or not dated today: %w", models.ErrNotEditable)
)
