package api

import "time"

// Request bodies shared with the HTTP client

type ProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ColumnRequest struct {
	Name     string `json:"name"`
	Position *int   `json:"position,omitempty"`
}

type OrderRequest struct {
	IDs []int `json:"ids" binding:"required"`
}

type TaskRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ClearDueDate bool       `json:"clear_due_date,omitempty"`
	Position     *int       `json:"position,omitempty"`
	LabelIDs     []int      `json:"label_ids,omitempty"`
}

// MoveRequest moves a task to a column position, or to the first column of a status
type MoveRequest struct {
	ColumnID int    `json:"column_id,omitempty"`
	Position int    `json:"position"`
	Status   string `json:"status,omitempty"`
}

type LabelRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

type ChecklistRequest struct {
	Text *string `json:"text,omitempty"`
	Done *bool   `json:"done,omitempty"`
}

// StatusMapping is the answer of GET /api/statuses/map
type StatusMapping struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	ColumnName string `json:"column_name"`
}
