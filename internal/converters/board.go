// Package converters translates between stored boards and the reorder
// package's id-only boards.
//
// A stored board (models.Board) knows every card's title and labels; a
// reorder board only knows ids and their order. The TUI drives drags on the
// reorder board and renders by projecting its order back onto the stored one.
package converters

import (
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/reorder"
)

// TaskBoard returns a reorder board with one container per column, in column order
func TaskBoard(b *models.Board) *reorder.Board {
	containers := make([]reorder.Container, 0, len(b.Columns))
	for _, col := range b.Columns {
		tasks := b.TasksIn(col.ID)
		items := make([]int, 0, len(tasks))
		for _, t := range tasks {
			items = append(items, t.ID)
		}
		containers = append(containers, reorder.Container{ID: col.ID, Items: items})
	}
	return reorder.NewBoard(reorder.ItemTask, containers...)
}

// ColumnBoard returns a reorder board holding the project's columns in a
// single container keyed by the project id
func ColumnBoard(b *models.Board) *reorder.Board {
	items := make([]int, 0, len(b.Columns))
	for _, col := range b.Columns {
		items = append(items, col.ID)
	}
	return reorder.NewBoard(reorder.ItemColumn, reorder.Container{ID: b.Project.ID, Items: items})
}

// Project returns a copy of b whose columns and cards follow the order of rb.
// Positions are rewritten to match. Ids missing from b are skipped.
func Project(b *models.Board, rb *reorder.Board) *models.Board {
	out := &models.Board{
		Project: b.Project,
		Columns: b.Columns,
		Tasks:   b.Tasks,
	}

	switch rb.ItemType() {
	case reorder.ItemColumn:
		out.Columns = projectColumns(b, rb)
	case reorder.ItemTask:
		out.Tasks = projectTasks(b, rb)
	}
	return out
}

func projectColumns(b *models.Board, rb *reorder.Board) []*models.Column {
	byID := make(map[int]*models.Column, len(b.Columns))
	for _, col := range b.Columns {
		byID[col.ID] = col
	}

	columns := make([]*models.Column, 0, len(b.Columns))
	for _, id := range rb.Items(b.Project.ID) {
		col, found := byID[id]
		if !found {
			continue
		}
		moved := *col
		moved.Position = len(columns)
		columns = append(columns, &moved)
	}
	return columns
}

func projectTasks(b *models.Board, rb *reorder.Board) map[int][]*models.TaskSummary {
	byID := make(map[int]*models.TaskSummary)
	for _, tasks := range b.Tasks {
		for _, t := range tasks {
			byID[t.ID] = t
		}
	}

	tasks := make(map[int][]*models.TaskSummary, len(b.Columns))
	for _, c := range rb.Containers() {
		list := make([]*models.TaskSummary, 0, len(c.Items))
		for _, id := range c.Items {
			t, found := byID[id]
			if !found {
				continue
			}
			moved := *t
			moved.ColumnID = c.ID
			moved.Position = len(list)
			list = append(list, &moved)
		}
		tasks[c.ID] = list
	}
	return tasks
}
