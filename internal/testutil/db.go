package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tablero/internal/database"
)

// SetupTestDB creates a migrated in-memory database, closed when the test ends
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})
	return db
}

// CreateTestProject creates a project with the default columns (To Do, In Progress, Done)
// and returns its ID together with the column IDs in board order
func CreateTestProject(t *testing.T, db *sql.DB, name string) (int, []int) {
	t.Helper()
	repo := database.NewRepository(db)
	ctx := context.Background()

	project, err := repo.CreateProject(ctx, name, "Test description")
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	columns, err := repo.GetColumnsByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to get test project columns: %v", err)
	}

	columnIDs := make([]int, 0, len(columns))
	for _, col := range columns {
		columnIDs = append(columnIDs, col.ID)
	}
	return project.ID, columnIDs
}

// CreateTestColumn appends a column to a project and returns its ID
func CreateTestColumn(t *testing.T, db *sql.DB, projectID int, name string) int {
	t.Helper()
	col, err := database.NewRepository(db).CreateColumn(context.Background(), projectID, name, nil)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return col.ID
}

// CreateTestTask appends a task to a column and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, columnID int, title string) int {
	t.Helper()
	task, err := database.NewRepository(db).CreateTask(context.Background(), columnID, title, "", nil, nil)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}

// CreateTestLabel creates a label and returns its ID
func CreateTestLabel(t *testing.T, db *sql.DB, projectID int, name, color string) int {
	t.Helper()
	label, err := database.NewRepository(db).CreateLabel(context.Background(), projectID, name, color)
	if err != nil {
		t.Fatalf("Failed to create test label: %v", err)
	}
	return label.ID
}

// TaskIDs returns the task IDs of a column in board order
func TaskIDs(t *testing.T, db *sql.DB, columnID int) []int {
	t.Helper()
	tasks, err := database.NewRepository(db).GetTasksByColumn(context.Background(), columnID)
	if err != nil {
		t.Fatalf("Failed to get tasks: %v", err)
	}
	ids := make([]int, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
