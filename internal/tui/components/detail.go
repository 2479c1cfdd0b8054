package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/markdown"
	"github.com/thenoetrevino/tablero/internal/models"
)

// RenderDetail renders the task detail pane: title, status, labels, the
// markdown description and the checklist
func RenderDetail(t *models.TaskDetail, width int, style markdown.Style) string {
	inner := max(width-4, 10)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(t.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s · %s\n", t.ColumnName, t.Status.Label())
	if t.DueDate != nil {
		fmt.Fprintf(&b, "due %s\n", t.DueDate.Format("2006-01-02"))
	}
	if len(t.Labels) > 0 {
		b.WriteString(renderLabels(t.Labels))
		b.WriteString("\n")
	}

	if strings.TrimSpace(t.Description) != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(markdown.RenderOrRaw(t.Description, inner, style), "\n"))
		b.WriteString("\n")
	}

	if len(t.Checklist) > 0 {
		b.WriteString("\n")
		for _, item := range t.Checklist {
			mark := "[ ]"
			if item.Done {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "%s %s\n", mark, item.Text)
		}
	}

	return DetailStyle.Width(inner).Render(strings.TrimRight(b.String(), "\n"))
}
