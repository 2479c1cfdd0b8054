package label

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Label-related errors
var (
	// Validation errors
	ErrEmptyName        = fmt.Errorf("%w: name cannot be empty", models.ErrInvalidInput)
	ErrNameTooLong      = fmt.Errorf("%w: name cannot exceed %d characters", models.ErrInvalidInput, models.MaxLabelNameLength)
	ErrInvalidColor     = fmt.Errorf("%w: invalid color format (must be hex color like #FFFFFF)", models.ErrInvalidInput)
	ErrInvalidLabelID   = fmt.Errorf("%w: invalid label ID", models.ErrInvalidInput)
	ErrInvalidProjectID = fmt.Errorf("%w: invalid project ID", models.ErrInvalidInput)

	// Business logic errors
	ErrLabelNotFound   = fmt.Errorf("label %w", models.ErrNotFound)
	ErrProjectNotFound = fmt.Errorf("project %w", models.ErrNotFound)
	ErrLabelExists     = fmt.Errorf("%w: a label with this name already exists in the project", models.ErrConflict)
)
