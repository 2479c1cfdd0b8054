package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

func TestCreateProject_SeedsDefaultColumns(t *testing.T) {
	repo, project, columns := setupRepo(t)

	assert.Equal(t, "Test Project", project.Name)
	assert.False(t, project.CreatedAt.IsZero())

	require.Len(t, columns, len(models.DefaultColumns))
	for i, col := range columns {
		assert.Equal(t, models.DefaultColumns[i], col.Name)
		assert.Equal(t, i, col.Position)
		assert.Equal(t, project.ID, col.ProjectID)
	}
	columnOrder(t, repo, project.ID)
}

func TestGetAllProjects_OrderedByName(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	projects, err := repo.GetAllProjects(ctx)
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)

	_, err = repo.CreateProject(ctx, "Zeta", "")
	require.NoError(t, err)
	_, err = repo.CreateProject(ctx, "Alpha", "first")
	require.NoError(t, err)

	projects, err = repo.GetAllProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Alpha", projects[0].Name)
	assert.Equal(t, "first", projects[0].Description)
	assert.Equal(t, "Zeta", projects[1].Name)
}

func TestUpdateProject(t *testing.T) {
	repo, project, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpdateProject(ctx, project.ID, "Renamed", "desc"))

	got, err := repo.GetProjectByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "desc", got.Description)

	err = repo.UpdateProject(ctx, 9999, "x", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteProject_Cascades(t *testing.T) {
	repo, project, columns := setupRepo(t)
	ctx := context.Background()

	ids := createTasks(t, repo, columns[0].ID, "a", "b")
	_, err := repo.CreateLabel(ctx, project.ID, "bug", "#ff0000")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteProject(ctx, project.ID))

	_, err = repo.GetProjectByID(ctx, project.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = repo.GetColumnByID(ctx, columns[0].ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = repo.GetTaskByID(ctx, ids[0])
	assert.ErrorIs(t, err, models.ErrNotFound)

	labels, err := repo.GetLabelsByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, labels)

	assert.ErrorIs(t, repo.DeleteProject(ctx, project.ID), models.ErrNotFound)
}
