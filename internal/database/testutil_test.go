package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
)

// setupTestDB creates a migrated in-memory database, closed when the test ends
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})
	return db
}

// setupRepo returns a repository and a fresh project with the default columns
func setupRepo(t *testing.T) (*Repository, *models.Project, []*models.Column) {
	t.Helper()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	project, err := repo.CreateProject(ctx, "Test Project", "")
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	columns, err := repo.GetColumnsByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to get columns: %v", err)
	}
	return repo, project, columns
}

// createTasks creates tasks titled after titles in columnID and returns their IDs in order
func createTasks(t *testing.T, repo *Repository, columnID int, titles ...string) []int {
	t.Helper()
	ids := make([]int, 0, len(titles))
	for _, title := range titles {
		task, err := repo.CreateTask(context.Background(), columnID, title, "", nil, nil)
		if err != nil {
			t.Fatalf("Failed to create task %q: %v", title, err)
		}
		ids = append(ids, task.ID)
	}
	return ids
}

// taskOrder returns the task IDs of a column in position order, asserting positions are dense
func taskOrder(t *testing.T, repo *Repository, columnID int) []int {
	t.Helper()
	tasks, err := repo.GetTasksByColumn(context.Background(), columnID)
	if err != nil {
		t.Fatalf("Failed to get tasks: %v", err)
	}
	ids := make([]int, 0, len(tasks))
	for i, task := range tasks {
		if task.Position != i {
			t.Errorf("task %d in column %d has position %d, want %d", task.ID, columnID, task.Position, i)
		}
		ids = append(ids, task.ID)
	}
	return ids
}

// columnOrder returns the column IDs of a project in position order, asserting positions are dense
func columnOrder(t *testing.T, repo *Repository, projectID int) []int {
	t.Helper()
	columns, err := repo.GetColumnsByProject(context.Background(), projectID)
	if err != nil {
		t.Fatalf("Failed to get columns: %v", err)
	}
	ids := make([]int, 0, len(columns))
	for i, col := range columns {
		if col.Position != i {
			t.Errorf("column %d has position %d, want %d", col.ID, col.Position, i)
		}
		ids = append(ids, col.ID)
	}
	return ids
}

func ptr[T any](v T) *T {
	return &v
}
