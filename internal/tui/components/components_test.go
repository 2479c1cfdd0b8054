package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/tablero/internal/models"
)

func TestVisibleTasks(t *testing.T) {
	assert.Equal(t, 1, VisibleTasks(0, false))
	assert.Equal(t, 5, VisibleTasks(26, false))
	assert.Equal(t, 4, VisibleTasks(26, true))
}

func TestRenderTask(t *testing.T) {
	task := &models.TaskSummary{
		ID:    1,
		Title: strings.Repeat("x", 80),
		Labels: []*models.Label{
			{ID: 1, Name: "bug", Color: "#FF0000"},
		},
		ChecklistDone:  1,
		ChecklistTotal: 3,
	}

	out := RenderTask(task, TaskProps{Detailed: true})
	assert.Contains(t, out, "…")
	assert.Contains(t, out, "[bug]")
	assert.Contains(t, out, "1/3")

	grabbed := RenderTask(task, TaskProps{Grabbed: true})
	assert.Contains(t, grabbed, "✥")
	assert.NotContains(t, grabbed, "1/3")
}

func TestRenderColumn(t *testing.T) {
	tasks := make([]*models.TaskSummary, 10)
	for i := range tasks {
		tasks[i] = &models.TaskSummary{ID: i + 1, Title: "card"}
	}
	col := &models.Column{ID: 7, Name: "In Progress"}

	out := RenderColumn(ColumnProps{Column: col, Tasks: tasks, Height: 20, SelectedTaskIdx: -1})
	assert.Contains(t, out, "In Progress (10)")
	assert.Contains(t, out, "more below")
	assert.NotContains(t, out, "more above")

	scrolled := RenderColumn(ColumnProps{Column: col, Tasks: tasks, Height: 20, ScrollOffset: 9, SelectedTaskIdx: -1})
	assert.Contains(t, scrolled, "more above")
	assert.NotContains(t, scrolled, "more below")

	empty := RenderColumn(ColumnProps{Column: &models.Column{ID: 8, Name: "Done"}, Height: 20})
	assert.Contains(t, empty, "No tasks")
}

func TestRenderTabs(t *testing.T) {
	out := RenderTabs([]string{"One", "Two"}, 1, 80, "saved")
	assert.Contains(t, out, "One")
	assert.Contains(t, out, "Two")
	assert.Contains(t, out, "saved")
}

func TestRenderStatusBar(t *testing.T) {
	local := RenderStatusBar(StatusBarProps{Width: 80, Mode: "NORMAL"})
	assert.Contains(t, local, "NORMAL")
	assert.Contains(t, local, "local")
	assert.NotContains(t, local, "saving")

	remote := RenderStatusBar(StatusBarProps{Width: 80, Mode: "MOVE TASK", Saving: true, Remote: "127.0.0.1:7420"})
	assert.Contains(t, remote, "saving")
	assert.Contains(t, remote, "remote 127.0.0.1:7420")
}

func TestRenderSidebar(t *testing.T) {
	projects := []*models.Project{{ID: 1, Name: "Alpha"}, {ID: 2, Name: strings.Repeat("b", 40)}}
	out := RenderSidebar(projects, 0, 10)
	assert.Contains(t, out, "› Alpha")
	assert.Contains(t, out, "…")

	assert.Contains(t, RenderSidebar(nil, 0, 10), "none yet")
}
