package models

// Board is everything needed to render one project: its columns in order
// and the cards of each column keyed by column ID
type Board struct {
	Project *Project               `json:"project"`
	Columns []*Column              `json:"columns"`
	Tasks   map[int][]*TaskSummary `json:"tasks"`
}

// TasksIn returns the cards of a column in order. Never nil.
func (b *Board) TasksIn(columnID int) []*TaskSummary {
	if tasks := b.Tasks[columnID]; tasks != nil {
		return tasks
	}
	return []*TaskSummary{}
}
