package models

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/status"
)

// Task represents a single card on the board
type Task struct {
	ID          int        `json:"id"`
	ColumnID    int        `json:"column_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Position    int        `json:"position"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GetID returns the task ID (used by quiet CLI output)
func (t *Task) GetID() int {
	return t.ID
}

// TaskSummary is the lightweight card shown on the board
type TaskSummary struct {
	ID             int      `json:"id"`
	ColumnID       int      `json:"column_id"`
	Title          string   `json:"title"`
	Position       int      `json:"position"`
	Labels         []*Label `json:"labels"`
	ChecklistDone  int      `json:"checklist_done"`
	ChecklistTotal int      `json:"checklist_total"`
}

// TaskDetail is a task with everything needed to display it on its own
type TaskDetail struct {
	Task
	ProjectID  int              `json:"project_id"`
	ColumnName string           `json:"column_name"`
	Status     status.Status    `json:"status"`
	Labels     []*Label         `json:"labels"`
	Checklist  []*ChecklistItem `json:"checklist"`
}
