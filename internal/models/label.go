package models

// Label represents a tag that can be applied to tasks
// Labels are project-specific, similar to GitHub labels
type Label struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id"`
	Name      string `json:"name"`
	Color     string `json:"color"` // Hex color code (e.g., "#7D56F4")
}

// GetID returns the label ID (used by quiet CLI output)
func (l *Label) GetID() int {
	return l.ID
}
