package project

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName        = fmt.Errorf("%w: project name cannot be empty", models.ErrInvalidInput)
	ErrNameTooLong      = fmt.Errorf("%w: project name cannot exceed %d characters", models.ErrInvalidInput, models.MaxProjectNameLength)
	ErrInvalidProjectID = fmt.Errorf("%w: invalid project ID", models.ErrInvalidInput)

	// Business logic errors
	ErrProjectNotFound = fmt.Errorf("project %w", models.ErrNotFound)
)
