package cli

import (
	"errors"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/status"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required arguments or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task, project, column, label or checklist item not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparseable dates or ids.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, invalid colors, unknown statuses.
	ExitValidation = 5

	// ExitConflict indicates the request clashes with existing state.
	// Use for: Deleting a non-empty column, stale reorders, duplicate labels.
	ExitConflict = 6
)

// ExitError carries the exit code a failed command should terminate with.
// The error has already been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrInvalidData is wrapped by errors for input that could not be parsed
var ErrInvalidData = errors.New("invalid data")

// UsageError is returned by commands invoked with missing or conflicting arguments
type UsageError struct {
	Message    string
	Suggestion string
}

func (e *UsageError) Error() string {
	return e.Message
}

// ExitCodeFor maps an error onto an exit code
func ExitCodeFor(err error) int {
	var exitErr *ExitError
	var usageErr *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.Is(err, ErrInvalidData):
		return ExitDataErr
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, status.ErrInvalidStatus):
		return ExitValidation
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ErrOrderMismatch):
		return ExitConflict
	default:
		return ExitError
	}
}

// errorCode is the machine-readable code used in JSON error output
func errorCode(exit int) string {
	switch exit {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitConflict:
		return "CONFLICT"
	default:
		return "ERROR"
	}
}
