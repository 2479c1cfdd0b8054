package models

// ChecklistItem is one checkable line inside a task
type ChecklistItem struct {
	ID       int    `json:"id"`
	TaskID   int    `json:"task_id"`
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	Position int    `json:"position"`
}

// GetID returns the checklist item ID (used by quiet CLI output)
func (c *ChecklistItem) GetID() int {
	return c.ID
}
