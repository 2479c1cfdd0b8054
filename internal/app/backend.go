package app

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/reorder"
)

// Backend serves a board straight from the local services.
// It is the in-process counterpart of the HTTP client.
type Backend struct {
	app *App
}

// Backend returns a service-backed board backend
func (a *App) Backend() *Backend {
	return &Backend{app: a}
}

// Persister returns a reorder.Persister that saves moves through the services
func (a *App) Persister() reorder.Persister {
	return a.Backend()
}

// ListProjects returns every project
func (b *Backend) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return b.app.ProjectService.GetAllProjects(ctx)
}

// LoadBoard returns a project's columns and cards
func (b *Backend) LoadBoard(ctx context.Context, projectID int) (*models.Board, error) {
	return b.app.ProjectService.GetBoard(ctx, projectID)
}

// TaskDetail returns one card with its labels and checklist
func (b *Backend) TaskDetail(ctx context.Context, taskID int) (*models.TaskDetail, error) {
	return b.app.TaskService.GetTaskDetail(ctx, taskID)
}

// PersistMove saves one drag/drop move.
// Task moves become a MoveTask; column moves rewrite the project's column order.
func (b *Backend) PersistMove(ctx context.Context, move reorder.Move) error {
	b.app.logger.Debug("persisting move",
		"move_id", move.ID,
		"item_type", move.ItemType,
		"item_id", move.ItemID,
		"to_container", move.ToContainerID,
		"position", move.Position)

	switch move.ItemType {
	case reorder.ItemTask:
		return b.app.TaskService.MoveTask(ctx, move.ItemID, move.ToContainerID, move.Position)
	case reorder.ItemColumn:
		return b.app.ColumnService.ReorderColumns(ctx, move.ToContainerID, ColumnOrder(move))
	default:
		return fmt.Errorf("unknown item type %q", move.ItemType)
	}
}

// ColumnOrder extracts the full column order of a column move's project
func ColumnOrder(move reorder.Move) []int {
	ids := make([]int, 0, len(move.Placements))
	for _, p := range move.Placements {
		if p.ContainerID == move.ToContainerID {
			ids = append(ids, p.ItemID)
		}
	}
	return ids
}
