package column

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Column-related errors
var (
	// Validation errors
	ErrEmptyName        = fmt.Errorf("%w: name cannot be empty", models.ErrInvalidInput)
	ErrNameTooLong      = fmt.Errorf("%w: name cannot exceed %d characters", models.ErrInvalidInput, models.MaxColumnNameLength)
	ErrInvalidColumnID  = fmt.Errorf("%w: invalid column ID", models.ErrInvalidInput)
	ErrInvalidProjectID = fmt.Errorf("%w: invalid project ID", models.ErrInvalidInput)
	ErrInvalidPosition  = fmt.Errorf("%w: position must be >= 0", models.ErrInvalidInput)

	// Business logic errors
	ErrColumnNotFound  = fmt.Errorf("column %w", models.ErrNotFound)
	ErrProjectNotFound = fmt.Errorf("project %w", models.ErrNotFound)
	ErrColumnHasTasks  = fmt.Errorf("%w: cannot delete column with tasks", models.ErrConflict)
)
