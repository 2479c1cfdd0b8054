package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// TaskProps controls how a card is drawn
type TaskProps struct {
	Selected bool
	Grabbed  bool
	Detailed bool // show the checklist progress line
}

// RenderTask renders a single task as a card
//
//	┌────────────────────────────┐
//	│ {Task Title}               │
//	│ [label1] [label2]          │
//	│ ☑ 2/5                      │  (detailed only)
//	└────────────────────────────┘
func RenderTask(task *models.TaskSummary, props TaskProps) string {
	title := task.Title
	if len([]rune(title)) > taskTitleMaxLength {
		title = string([]rune(title)[:taskTitleMaxLength-1]) + "…"
	}
	if props.Grabbed {
		title = "✥ " + title
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(title),
		renderLabels(task.Labels),
	}
	if props.Detailed {
		lines = append(lines, renderChecklistProgress(task))
	}

	style := TaskStyle
	switch {
	case props.Grabbed:
		style = style.BorderForeground(lipgloss.Color(theme.GrabbedBorder)).BorderStyle(lipgloss.ThickBorder())
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderLabelChip renders a single label as a small colored chip
func RenderLabelChip(label *models.Label) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(label.Color)).
		Render("[" + label.Name + "]")
}

func renderLabels(labels []*models.Label) string {
	if len(labels) == 0 {
		return SubtleStyle.Render("no labels")
	}
	chips := make([]string, 0, len(labels))
	for _, l := range labels {
		chips = append(chips, RenderLabelChip(l))
	}
	return strings.Join(chips, " ")
}

func renderChecklistProgress(task *models.TaskSummary) string {
	if task.ChecklistTotal == 0 {
		return SubtleStyle.Render("no checklist")
	}
	mark := "☐"
	if task.ChecklistDone == task.ChecklistTotal {
		mark = "☑"
	}
	return fmt.Sprintf("%s %d/%d", mark, task.ChecklistDone, task.ChecklistTotal)
}
