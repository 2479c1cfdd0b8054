package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/models"
)

func TestCreateColumn_Appends(t *testing.T) {
	repo, project, columns := setupRepo(t)

	col, err := repo.CreateColumn(context.Background(), project.ID, "Blocked", nil)
	require.NoError(t, err)
	assert.Equal(t, len(columns), col.Position)

	order := columnOrder(t, repo, project.ID)
	assert.Equal(t, col.ID, order[len(order)-1])
}

func TestCreateColumn_InsertsAtPosition(t *testing.T) {
	repo, project, columns := setupRepo(t)

	col, err := repo.CreateColumn(context.Background(), project.ID, "Review", ptr(1))
	require.NoError(t, err)

	order := columnOrder(t, repo, project.ID)
	assert.Equal(t, []int{columns[0].ID, col.ID, columns[1].ID, columns[2].ID}, order)
}

func TestCreateColumn_ClampsPosition(t *testing.T) {
	repo, project, columns := setupRepo(t)
	ctx := context.Background()

	first, err := repo.CreateColumn(ctx, project.ID, "Inbox", ptr(-5))
	require.NoError(t, err)
	last, err := repo.CreateColumn(ctx, project.ID, "Archive", ptr(100))
	require.NoError(t, err)

	order := columnOrder(t, repo, project.ID)
	assert.Equal(t, []int{first.ID, columns[0].ID, columns[1].ID, columns[2].ID, last.ID}, order)
}

func TestDeleteColumn_Resequences(t *testing.T) {
	repo, project, columns := setupRepo(t)
	ctx := context.Background()

	taskIDs := createTasks(t, repo, columns[1].ID, "doomed")
	require.NoError(t, repo.DeleteColumn(ctx, columns[1].ID))

	assert.Equal(t, []int{columns[0].ID, columns[2].ID}, columnOrder(t, repo, project.ID))

	_, err := repo.GetTaskByID(ctx, taskIDs[0])
	assert.ErrorIs(t, err, models.ErrNotFound, "tasks should cascade with their column")

	assert.ErrorIs(t, repo.DeleteColumn(ctx, columns[1].ID), models.ErrNotFound)
}

func TestUpdateColumnName(t *testing.T) {
	repo, _, columns := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpdateColumnName(ctx, columns[0].ID, "Backlog"))
	col, err := repo.GetColumnByID(ctx, columns[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Backlog", col.Name)

	assert.ErrorIs(t, repo.UpdateColumnName(ctx, 9999, "x"), models.ErrNotFound)
}

func TestReorderColumns(t *testing.T) {
	repo, project, columns := setupRepo(t)
	ctx := context.Background()

	want := []int{columns[2].ID, columns[0].ID, columns[1].ID}
	require.NoError(t, repo.ReorderColumns(ctx, project.ID, want))
	assert.Equal(t, want, columnOrder(t, repo, project.ID))
}

func TestReorderColumns_RejectsMismatch(t *testing.T) {
	repo, project, columns := setupRepo(t)
	ctx := context.Background()
	before := columnOrder(t, repo, project.ID)

	tests := []struct {
		name string
		ids  []int
	}{
		{"missing column", []int{columns[0].ID, columns[1].ID}},
		{"duplicate column", []int{columns[0].ID, columns[0].ID, columns[1].ID}},
		{"foreign column", []int{columns[0].ID, columns[1].ID, 9999}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.ReorderColumns(ctx, project.ID, tt.ids)
			assert.ErrorIs(t, err, models.ErrOrderMismatch)
			assert.Equal(t, before, columnOrder(t, repo, project.ID))
		})
	}
}

func TestGetTaskCountByColumn(t *testing.T) {
	repo, _, columns := setupRepo(t)
	createTasks(t, repo, columns[0].ID, "a", "b", "c")

	count, err := repo.GetTaskCountByColumn(context.Background(), columns[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
