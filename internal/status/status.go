// Package status maps free-form column names onto the fixed task status enum
// used for filtering tasks across boards.
package status

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the board-independent state of a task
type Status string

const (
	ToDo       Status = "to_do"
	InProgress Status = "in_progress"
	InReview   Status = "in_review"
	Blocked    Status = "blocked"
	Done       Status = "done"
)

// ErrInvalidStatus is returned by Parse for values outside the enum
var ErrInvalidStatus = errors.New("invalid status")

var validStatuses = []Status{ToDo, InProgress, InReview, Blocked, Done}

var columnNames = map[Status]string{
	ToDo:       "To Do",
	InProgress: "In Progress",
	InReview:   "In Review",
	Blocked:    "Blocked",
	Done:       "Done",
}

// Valid returns the five statuses in board order.
// The returned slice is a copy and may be modified by the caller.
func Valid() []Status {
	out := make([]Status, len(validStatuses))
	copy(out, validStatuses)
	return out
}

// IsValid reports whether s is exactly one of the enum values
func IsValid(s string) bool {
	for _, v := range validStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// Parse validates s and returns it as a Status
func Parse(s string) (Status, error) {
	if !IsValid(s) {
		return "", fmt.Errorf("%w %q: must be one of to_do, in_progress, in_review, blocked, done", ErrInvalidStatus, s)
	}
	return Status(s), nil
}

// ColumnName returns the canonical column label for a status.
// Unknown statuses get "To Do".
func ColumnName(s Status) string {
	if name, ok := columnNames[s]; ok {
		return name
	}
	return columnNames[ToDo]
}

// Label is the human-readable form of the status
func (s Status) Label() string {
	return ColumnName(s)
}

// String implements fmt.Stringer
func (s Status) String() string {
	return string(s)
}

// normalize lowercases and trims a column name before matching
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
