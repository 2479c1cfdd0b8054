package converters

import (
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/reorder"
)

func sampleBoard() *models.Board {
	return &models.Board{
		Project: &models.Project{ID: 9, Name: "Board"},
		Columns: []*models.Column{
			{ID: 1, ProjectID: 9, Name: "To Do", Position: 0},
			{ID: 2, ProjectID: 9, Name: "Doing", Position: 1},
			{ID: 3, ProjectID: 9, Name: "Done", Position: 2},
		},
		Tasks: map[int][]*models.TaskSummary{
			1: {{ID: 10, ColumnID: 1, Title: "a"}, {ID: 11, ColumnID: 1, Title: "b", Position: 1}},
			2: {{ID: 20, ColumnID: 2, Title: "c"}},
		},
	}
}

func ids(tasks []*models.TaskSummary) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTaskBoard(t *testing.T) {
	rb := TaskBoard(sampleBoard())

	if rb.ItemType() != reorder.ItemTask {
		t.Fatalf("item type = %s, want task", rb.ItemType())
	}
	containers := rb.Containers()
	if len(containers) != 3 {
		t.Fatalf("expected 3 containers, got %d", len(containers))
	}
	if !equalInts(containers[0].Items, []int{10, 11}) {
		t.Errorf("column 1 items = %v", containers[0].Items)
	}
	if len(containers[2].Items) != 0 {
		t.Errorf("empty column should have no items, got %v", containers[2].Items)
	}
}

func TestColumnBoard(t *testing.T) {
	rb := ColumnBoard(sampleBoard())

	if rb.ItemType() != reorder.ItemColumn {
		t.Fatalf("item type = %s, want column", rb.ItemType())
	}
	if got := rb.Items(9); !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("column order = %v, want [1 2 3]", got)
	}
}

func TestProject_Tasks(t *testing.T) {
	b := sampleBoard()
	rb := TaskBoard(b)
	if err := rb.Move(11, 2, 0); err != nil {
		t.Fatalf("Move: %v", err)
	}

	got := Project(b, rb)

	if !equalInts(ids(got.TasksIn(1)), []int{10}) {
		t.Errorf("column 1 = %v, want [10]", ids(got.TasksIn(1)))
	}
	moved := got.TasksIn(2)
	if !equalInts(ids(moved), []int{11, 20}) {
		t.Fatalf("column 2 = %v, want [11 20]", ids(moved))
	}
	if moved[0].ColumnID != 2 || moved[0].Position != 0 || moved[1].Position != 1 {
		t.Errorf("positions not rewritten: %+v %+v", moved[0], moved[1])
	}

	// The source board is untouched
	if b.Tasks[1][1].ColumnID != 1 || len(b.Tasks[2]) != 1 {
		t.Error("Project must not modify its input")
	}
}

func TestProject_Columns(t *testing.T) {
	b := sampleBoard()
	rb := ColumnBoard(b)
	if err := rb.Move(3, 9, 0); err != nil {
		t.Fatalf("Move: %v", err)
	}

	got := Project(b, rb)

	order := make([]int, len(got.Columns))
	for i, col := range got.Columns {
		order[i] = col.ID
		if col.Position != i {
			t.Errorf("column %d position = %d, want %d", col.ID, col.Position, i)
		}
	}
	if !equalInts(order, []int{3, 1, 2}) {
		t.Errorf("column order = %v, want [3 1 2]", order)
	}
	if b.Columns[0].ID != 1 || b.Columns[2].Position != 2 {
		t.Error("Project must not modify its input")
	}
}

func TestProject_SkipsUnknownIDs(t *testing.T) {
	b := sampleBoard()
	rb := reorder.NewBoard(reorder.ItemTask,
		reorder.Container{ID: 1, Items: []int{99, 10}},
	)

	got := Project(b, rb)
	if !equalInts(ids(got.TasksIn(1)), []int{10}) {
		t.Errorf("column 1 = %v, want [10]", ids(got.TasksIn(1)))
	}
}
