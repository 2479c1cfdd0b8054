package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/status"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// ColumnProps describes one column of the board
type ColumnProps struct {
	Column          *models.Column
	Tasks           []*models.TaskSummary
	Selected        bool
	Grabbed         bool // the column itself is being moved
	SelectedTaskIdx int  // -1 when no card of this column is selected
	GrabbedTaskID   int  // 0 when no card is picked up
	Height          int
	ScrollOffset    int
	Detailed        bool
}

// VisibleTasks returns how many cards fit in a column of the given height
func VisibleTasks(height int, detailed bool) int {
	// border(2) + header(1) + status(1) + indicators(2)
	const columnOverhead = 6
	cardHeight := TaskCardHeight
	if detailed {
		cardHeight = DetailedCardHeight
	}
	return max((height-columnOverhead)/cardHeight, 1)
}

// RenderColumn renders a column with its header and the visible cards
//
// Layout:
//
//	{Column Name} ({count})
//	{status}
//	▲ (if scrolled down)
//	{Task 1}
//	...
//	▼ (if more tasks below)
func RenderColumn(p ColumnProps) string {
	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", p.Column.Name, len(p.Tasks)))
	if p.Grabbed {
		header = "✥ " + header
	}
	lines := []string{header, IndicatorStyle.Render(status.FromColumnName(p.Column.Name).Label())}

	if len(p.Tasks) == 0 {
		lines = append(lines, SubtleStyle.Render("No tasks"))
	} else {
		visible := VisibleTasks(p.Height, p.Detailed)
		offset := min(p.ScrollOffset, max(0, len(p.Tasks)-1))
		end := min(offset+visible, len(p.Tasks))

		if offset > 0 {
			lines = append(lines, IndicatorStyle.Render("▲ more above"))
		} else {
			lines = append(lines, "")
		}
		for i, task := range p.Tasks[offset:end] {
			lines = append(lines, RenderTask(task, TaskProps{
				Selected: p.Selected && offset+i == p.SelectedTaskIdx,
				Grabbed:  task.ID == p.GrabbedTaskID,
				Detailed: p.Detailed,
			}))
		}
		if end < len(p.Tasks) {
			lines = append(lines, IndicatorStyle.Render("▼ more below"))
		}
	}

	style := ColumnStyle
	switch {
	case p.Grabbed:
		style = style.BorderForeground(lipgloss.Color(theme.GrabbedBorder)).Border(lipgloss.ThickBorder())
	case p.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if p.Height > 0 {
		// Height sets the content area; the border takes two lines
		style = style.Height(p.Height - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}
