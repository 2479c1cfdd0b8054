package project

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

func setupService(t *testing.T) (Service, *testutil.RecordingPublisher) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	pub := &testutil.RecordingPublisher{}
	return NewService(database.NewRepository(db), pub), pub
}

func TestCreateProject(t *testing.T) {
	svc, pub := setupService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "  Roadmap  ", Description: "Q3"})
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", project.Name)
	assert.Equal(t, "Q3", project.Description)

	event := pub.Last(t)
	assert.Equal(t, events.EventProjectChanged, event.Type)
	assert.Equal(t, project.ID, event.ProjectID)
}

func TestCreateProject_Validation(t *testing.T) {
	svc, pub := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyName},
		{"whitespace", "   ", ErrEmptyName},
		{"too long", strings.Repeat("x", models.MaxProjectNameLength+1), ErrNameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProject(ctx, CreateProjectRequest{Name: tt.input})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
	assert.Empty(t, pub.Events())
}

func TestGetBoard(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "Board"})
	require.NoError(t, err)

	board, err := svc.GetBoard(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, board.Project.ID)
	require.Len(t, board.Columns, len(models.DefaultColumns))
	for _, col := range board.Columns {
		assert.Empty(t, board.TasksIn(col.ID))
	}

	_, err = svc.GetBoard(ctx, 9999)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateProject_Partial(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "Old", Description: "keep me"})
	require.NoError(t, err)

	newName := "New"
	require.NoError(t, svc.UpdateProject(ctx, UpdateProjectRequest{ID: project.ID, Name: &newName}))

	got, err := svc.GetProjectByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "keep me", got.Description)

	empty := ""
	err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: project.ID, Name: &empty})
	assert.ErrorIs(t, err, ErrEmptyName)

	err = svc.UpdateProject(ctx, UpdateProjectRequest{ID: 9999, Name: &newName})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProject(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(ctx, project.ID))
	assert.ErrorIs(t, svc.DeleteProject(ctx, project.ID), ErrProjectNotFound)
	assert.ErrorIs(t, svc.DeleteProject(ctx, 0), ErrInvalidProjectID)

	projects, err := svc.GetAllProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
