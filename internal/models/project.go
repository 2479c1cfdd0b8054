package models

import "time"

// Project represents a container for board columns and tasks
// Projects are the top-level organizational unit in Tablero
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetID returns the project ID (used by quiet CLI output)
func (p *Project) GetID() int {
	return p.ID
}
