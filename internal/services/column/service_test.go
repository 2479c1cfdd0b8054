package column

import (
	"context"
	"database/sql"
	"strings"
	"testing"

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
	pub       *testutil.RecordingPublisher
	projectID int
	columnIDs []int
	db        *sql.DB
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	projectID, columnIDs := testutil.CreateTestProject(t, db, "Test Project")
	pub := &testutil.RecordingPublisher{}
	return &fixture{
		svc:       NewService(database.NewRepository(db), pub),
		pub:       pub,
		projectID: projectID,
		columnIDs: columnIDs,
		db:        db,
	}
}

func TestCreateColumn(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	col, err := f.svc.CreateColumn(ctx, CreateColumnRequest{Name: "Review", ProjectID: f.projectID, Position: ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, col.Position)

	columns, err := f.svc.GetColumnsByProject(ctx, f.projectID)
	require.NoError(t, err)
	require.Len(t, columns, 4)
	assert.Equal(t, col.ID, columns[1].ID)

	event := f.pub.Last(t)
	assert.Equal(t, events.EventColumnChanged, event.Type)
	assert.Equal(t, f.projectID, event.ProjectID)
	assert.Equal(t, col.ID, event.EntityID)
}

func TestCreateColumn_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateColumnRequest
		wantErr error
	}{
		{"empty name", CreateColumnRequest{Name: " ", ProjectID: f.projectID}, ErrEmptyName},
		{"long name", CreateColumnRequest{Name: strings.Repeat("n", models.MaxColumnNameLength+1), ProjectID: f.projectID}, ErrNameTooLong},
		{"negative position", CreateColumnRequest{Name: "x", ProjectID: f.projectID, Position: ptr(-1)}, ErrInvalidPosition},
		{"invalid project", CreateColumnRequest{Name: "x"}, ErrInvalidProjectID},
		{"missing project", CreateColumnRequest{Name: "x", ProjectID: 9999}, ErrProjectNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateColumn(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetColumnStatuses(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.CreateColumn(ctx, CreateColumnRequest{Name: "Waiting on vendor", ProjectID: f.projectID})
	require.NoError(t, err)

	statuses, err := f.svc.GetColumnStatuses(ctx, f.projectID)
	require.NoError(t, err)

	got := make([]status.Status, 0, len(statuses))
	for _, cs := range statuses {
		got = append(got, cs.Status)
	}
	assert.Equal(t, []status.Status{status.ToDo, status.InProgress, status.Done, status.Blocked}, got)
}

func TestUpdateColumnName_ChangesStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.svc.UpdateColumnName(ctx, f.columnIDs[1], "QA"))

	col, err := f.svc.GetColumnByID(ctx, f.columnIDs[1])
	require.NoError(t, err)
	assert.Equal(t, "QA", col.Name)
	assert.Equal(t, status.InReview, col.Status())

	assert.ErrorIs(t, f.svc.UpdateColumnName(ctx, 9999, "x"), ErrColumnNotFound)
	assert.ErrorIs(t, f.svc.UpdateColumnName(ctx, f.columnIDs[1], ""), ErrEmptyName)
}

func TestDeleteColumn(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	testutil.CreateTestTask(t, f.db, f.columnIDs[0], "keeps column alive")

	err := f.svc.DeleteColumn(ctx, f.columnIDs[0], false)
	assert.ErrorIs(t, err, ErrColumnHasTasks)
	assert.ErrorIs(t, err, models.ErrConflict)

	require.NoError(t, f.svc.DeleteColumn(ctx, f.columnIDs[2], false), "empty column deletes without force")
	require.NoError(t, f.svc.DeleteColumn(ctx, f.columnIDs[0], true))

	columns, err := f.svc.GetColumnsByProject(ctx, f.projectID)
	require.NoError(t, err)
	require.Len(t, columns, 1)
	assert.Equal(t, f.columnIDs[1], columns[0].ID)
	assert.Equal(t, 0, columns[0].Position)

	assert.ErrorIs(t, f.svc.DeleteColumn(ctx, f.columnIDs[0], true), ErrColumnNotFound)
}

func TestReorderColumns(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	want := []int{f.columnIDs[2], f.columnIDs[1], f.columnIDs[0]}
	require.NoError(t, f.svc.ReorderColumns(ctx, f.projectID, want))

	columns, err := f.svc.GetColumnsByProject(ctx, f.projectID)
	require.NoError(t, err)
	for i, col := range columns {
		assert.Equal(t, want[i], col.ID)
		assert.Equal(t, i, col.Position)
	}
	assert.Equal(t, events.EventReordered, f.pub.Last(t).Type)

	err = f.svc.ReorderColumns(ctx, f.projectID, want[:2])
	assert.ErrorIs(t, err, models.ErrOrderMismatch)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func ptr[T any](v T) *T {
	return &v
}
