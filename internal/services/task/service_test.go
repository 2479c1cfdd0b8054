package task

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/status"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

type fixture struct {
	svc       Service
	db        *sql.DB
	pub       *testutil.RecordingPublisher
	projectID int
	todo      int
	doing     int
	done      int
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	projectID, columnIDs := testutil.CreateTestProject(t, db, "Tasks")
	pub := &testutil.RecordingPublisher{}
	return &fixture{
		svc:       NewService(database.NewRepository(db), pub),
		db:        db,
		pub:       pub,
		projectID: projectID,
		todo:      columnIDs[0],
		doing:     columnIDs[1],
		done:      columnIDs[2],
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateTask(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	labelID := testutil.CreateTestLabel(t, f.db, f.projectID, "bug", "#EF4444")
	due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	task, err := f.svc.CreateTask(ctx, CreateTaskRequest{
		ColumnID:    f.todo,
		Title:       "  Write docs ",
		Description: "# Heading",
		DueDate:     &due,
		LabelIDs:    []int{labelID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, 0, task.Position)

	detail, err := f.svc.GetTaskDetail(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, status.ToDo, detail.Status)
	require.Len(t, detail.Labels, 1)
	require.NotNil(t, detail.DueDate)
	assert.True(t, due.Equal(*detail.DueDate))

	event := f.pub.Last(t)
	assert.Equal(t, events.EventTaskChanged, event.Type)
	assert.Equal(t, f.projectID, event.ProjectID)
	assert.Equal(t, task.ID, event.EntityID)
}

func TestCreateTask_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	otherProject, _ := testutil.CreateTestProject(t, f.db, "Other")
	foreignLabel := testutil.CreateTestLabel(t, f.db, otherProject, "foreign", "#000000")

	tests := []struct {
		name    string
		req     CreateTaskRequest
		wantErr error
	}{
		{"empty title", CreateTaskRequest{ColumnID: f.todo, Title: "  "}, ErrEmptyTitle},
		{"long title", CreateTaskRequest{ColumnID: f.todo, Title: strings.Repeat("t", models.MaxTaskTitleLength+1)}, ErrTitleTooLong},
		{"negative position", CreateTaskRequest{ColumnID: f.todo, Title: "x", Position: ptr(-1)}, ErrInvalidPosition},
		{"invalid column", CreateTaskRequest{Title: "x"}, ErrInvalidColumnID},
		{"missing column", CreateTaskRequest{ColumnID: 9999, Title: "x"}, ErrColumnNotFound},
		{"foreign label", CreateTaskRequest{ColumnID: f.todo, Title: "x", LabelIDs: []int{foreignLabel}}, ErrLabelProjectMismatch},
		{"missing label", CreateTaskRequest{ColumnID: f.todo, Title: "x", LabelIDs: []int{9999}}, ErrLabelNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateTask(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, testutil.TaskIDs(t, f.db, f.todo))
}

func TestUpdateTask(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	due := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)

	task, err := f.svc.CreateTask(ctx, CreateTaskRequest{ColumnID: f.todo, Title: "Old", Description: "keep", DueDate: &due})
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateTask(ctx, UpdateTaskRequest{ID: task.ID, Title: ptr("New")}))
	got, err := f.svc.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "keep", got.Description)
	assert.NotNil(t, got.DueDate)

	require.NoError(t, f.svc.UpdateTask(ctx, UpdateTaskRequest{ID: task.ID, ClearDueDate: true}))
	got, err = f.svc.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)

	assert.ErrorIs(t, f.svc.UpdateTask(ctx, UpdateTaskRequest{ID: task.ID, Title: ptr("")}), ErrEmptyTitle)
	assert.ErrorIs(t, f.svc.UpdateTask(ctx, UpdateTaskRequest{ID: 9999}), ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := testutil.CreateTestTask(t, f.db, f.todo, "a")
	b := testutil.CreateTestTask(t, f.db, f.todo, "b")

	require.NoError(t, f.svc.DeleteTask(ctx, a))
	assert.Equal(t, []int{b}, testutil.TaskIDs(t, f.db, f.todo))

	task, err := f.svc.GetTaskByID(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 0, task.Position)

	assert.ErrorIs(t, f.svc.DeleteTask(ctx, a), ErrTaskNotFound)
}

func TestMoveTask(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := testutil.CreateTestTask(t, f.db, f.todo, "a")
	b := testutil.CreateTestTask(t, f.db, f.todo, "b")
	x := testutil.CreateTestTask(t, f.db, f.doing, "x")

	require.NoError(t, f.svc.MoveTask(ctx, a, f.doing, 0))
	assert.Equal(t, []int{b}, testutil.TaskIDs(t, f.db, f.todo))
	assert.Equal(t, []int{a, x}, testutil.TaskIDs(t, f.db, f.doing))

	event := f.pub.Last(t)
	assert.Equal(t, events.EventReordered, event.Type)
	assert.Equal(t, a, event.EntityID)

	detail, err := f.svc.GetTaskDetail(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, status.InProgress, detail.Status)
}

func TestMoveTask_Errors(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := testutil.CreateTestTask(t, f.db, f.todo, "a")
	_, otherColumns := testutil.CreateTestProject(t, f.db, "Other")

	assert.ErrorIs(t, f.svc.MoveTask(ctx, a, f.doing, -1), ErrInvalidPosition)
	assert.ErrorIs(t, f.svc.MoveTask(ctx, 9999, f.doing, 0), ErrTaskNotFound)
	assert.ErrorIs(t, f.svc.MoveTask(ctx, a, 9999, 0), ErrColumnNotFound)

	err := f.svc.MoveTask(ctx, a, otherColumns[0], 0)
	assert.ErrorIs(t, err, ErrCrossProjectMove)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, []int{a}, testutil.TaskIDs(t, f.db, f.todo))
}

func TestMoveTaskToStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	existing := testutil.CreateTestTask(t, f.db, f.done, "shipped")
	a := testutil.CreateTestTask(t, f.db, f.todo, "a")

	require.NoError(t, f.svc.MoveTaskToStatus(ctx, a, status.Done))
	assert.Equal(t, []int{existing, a}, testutil.TaskIDs(t, f.db, f.done))

	err := f.svc.MoveTaskToStatus(ctx, a, status.Blocked)
	assert.ErrorIs(t, err, ErrNoColumnForStatus)

	assert.ErrorIs(t, f.svc.MoveTaskToStatus(ctx, a, status.Status("nope")), ErrInvalidStatus)
}

func TestReorderTasks(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := testutil.CreateTestTask(t, f.db, f.todo, "a")
	b := testutil.CreateTestTask(t, f.db, f.todo, "b")
	c := testutil.CreateTestTask(t, f.db, f.todo, "c")

	require.NoError(t, f.svc.ReorderTasks(ctx, f.todo, []int{c, a, b}))
	assert.Equal(t, []int{c, a, b}, testutil.TaskIDs(t, f.db, f.todo))

	err := f.svc.ReorderTasks(ctx, f.todo, []int{c, a})
	assert.ErrorIs(t, err, models.ErrOrderMismatch)
	assert.Equal(t, []int{c, a, b}, testutil.TaskIDs(t, f.db, f.todo))
}

func TestListTasksByStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := testutil.CreateTestTask(t, f.db, f.doing, "a")
	testutil.CreateTestTask(t, f.db, f.todo, "b")

	otherProject, otherColumns := testutil.CreateTestProject(t, f.db, "Other")
	wip := testutil.CreateTestColumn(t, f.db, otherProject, "WIP")
	x := testutil.CreateTestTask(t, f.db, wip, "x")
	testutil.CreateTestTask(t, f.db, otherColumns[2], "y")

	inProject, err := f.svc.ListTasksByStatus(ctx, f.projectID, status.InProgress)
	require.NoError(t, err)
	require.Len(t, inProject, 1)
	assert.Equal(t, a, inProject[0].ID)
	assert.Equal(t, "In Progress", inProject[0].ColumnName)

	everywhere, err := f.svc.ListTasksByStatus(ctx, 0, status.InProgress)
	require.NoError(t, err)
	ids := []int{}
	for _, d := range everywhere {
		ids = append(ids, d.ID)
		assert.Equal(t, status.InProgress, d.Status)
	}
	assert.ElementsMatch(t, []int{a, x}, ids)

	blocked, err := f.svc.ListTasksByStatus(ctx, 0, status.Blocked)
	require.NoError(t, err)
	assert.NotNil(t, blocked)
	assert.Empty(t, blocked)

	_, err = f.svc.ListTasksByStatus(ctx, 0, status.Status("later"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestLabels(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := testutil.CreateTestTask(t, f.db, f.todo, "a")
	labelID := testutil.CreateTestLabel(t, f.db, f.projectID, "ui", "#3B82F6")

	require.NoError(t, f.svc.AttachLabel(ctx, a, labelID))
	detail, err := f.svc.GetTaskDetail(ctx, a)
	require.NoError(t, err)
	assert.Len(t, detail.Labels, 1)

	require.NoError(t, f.svc.DetachLabel(ctx, a, labelID))
	detail, err = f.svc.GetTaskDetail(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, detail.Labels)

	assert.ErrorIs(t, f.svc.AttachLabel(ctx, 9999, labelID), ErrTaskNotFound)
	assert.ErrorIs(t, f.svc.AttachLabel(ctx, a, 9999), ErrLabelNotFound)
}

func TestChecklist(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := testutil.CreateTestTask(t, f.db, f.todo, "a")

	one, err := f.svc.AddChecklistItem(ctx, a, "one")
	require.NoError(t, err)
	two, err := f.svc.AddChecklistItem(ctx, a, "two")
	require.NoError(t, err)
	assert.Equal(t, 1, two.Position)

	toggled, err := f.svc.ToggleChecklistItem(ctx, one.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	require.NoError(t, f.svc.UpdateChecklistItem(ctx, two.ID, "TWO"))
	require.NoError(t, f.svc.DeleteChecklistItem(ctx, one.ID))

	detail, err := f.svc.GetTaskDetail(ctx, a)
	require.NoError(t, err)
	require.Len(t, detail.Checklist, 1)
	assert.Equal(t, "TWO", detail.Checklist[0].Text)
	assert.Equal(t, 0, detail.Checklist[0].Position)

	_, err = f.svc.AddChecklistItem(ctx, a, " ")
	assert.ErrorIs(t, err, ErrEmptyChecklist)
	assert.ErrorIs(t, f.svc.SetChecklistItemDone(ctx, one.ID, true), ErrChecklistNotFound)
}
