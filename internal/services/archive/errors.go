package archive

import (
	"fmt"

	"github.com/thenoetrevino/daykan/internal/models"
)

// Archive query errors
var (
	ErrInvalidDate  = fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrValidation)
	ErrInvalidYear  = fmt.Errorf("%w: year must be an integer between 1 and 9999", models.ErrValidation)
	ErrInvalidMonth = fmt.Errorf("%w: month must be an integer between 1 and 12", models.ErrValidation)
	ErrInvalidWeek  = fmt.Errorf("%w: week must be an ISO week number of the given year", models.ErrValidation)
)
