package column

import (
	"fmt"

	"github.com/thenoetrevino/daykan/internal/models"
)

// Column-related errors
var (
	ErrNameTooLong = fmt.Errorf("%w: column name cannot exceed 50 characters", models.ErrValidation)
	ErrNameComma   = fmt.Errorf("%w: column name cannot contain a comma", models.ErrValidation)
)
