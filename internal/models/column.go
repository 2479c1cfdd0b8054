package models

import "github.com/thenoetrevino/tablero/internal/status"

// Column represents a board list (e.g., "Backlog", "Doing", "Shipped")
// Columns are ordered within a project by a dense, zero-based Position
type Column struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
}

// Status maps the column's free-text name onto the fixed status enum
func (c *Column) Status() status.Status {
	return status.FromColumnName(c.Name)
}

// GetID returns the column ID (used by quiet CLI output)
func (c *Column) GetID() int {
	return c.ID
}
