package task

import (
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle       = fmt.Errorf("%w: task title cannot be empty", models.ErrInvalidInput)
	ErrTitleTooLong     = fmt.Errorf("%w: task title cannot exceed %d characters", models.ErrInvalidInput, models.MaxTaskTitleLength)
	ErrInvalidTaskID    = fmt.Errorf("%w: invalid task ID", models.ErrInvalidInput)
	ErrInvalidColumnID  = fmt.Errorf("%w: invalid column ID", models.ErrInvalidInput)
	ErrInvalidLabelID   = fmt.Errorf("%w: invalid label ID", models.ErrInvalidInput)
	ErrInvalidPosition  = fmt.Errorf("%w: invalid position: must be >= 0", models.ErrInvalidInput)
	ErrInvalidStatus    = fmt.Errorf("%w: unknown status", models.ErrInvalidInput)
	ErrEmptyChecklist   = fmt.Errorf("%w: checklist item text cannot be empty", models.ErrInvalidInput)
	ErrChecklistTooLong = fmt.Errorf("%w: checklist item text cannot exceed %d characters", models.ErrInvalidInput, models.MaxChecklistLength)

	// Business logic errors
	ErrTaskNotFound         = fmt.Errorf("task %w", models.ErrNotFound)
	ErrColumnNotFound       = fmt.Errorf("column %w", models.ErrNotFound)
	ErrLabelNotFound        = fmt.Errorf("label %w", models.ErrNotFound)
	ErrChecklistNotFound    = fmt.Errorf("checklist item %w", models.ErrNotFound)
	ErrNoColumnForStatus    = fmt.Errorf("no column for status: %w", models.ErrNotFound)
	ErrCrossProjectMove     = fmt.Errorf("%w: tasks cannot move between projects", models.ErrConflict)
	ErrLabelProjectMismatch = fmt.Errorf("%w: label belongs to a different project", models.ErrConflict)
)
