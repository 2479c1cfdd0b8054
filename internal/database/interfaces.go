package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ProjectStore defines project persistence
type ProjectStore interface {
	CreateProject(ctx context.Context, name, description string) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, name, description string) error
	DeleteProject(ctx context.Context, id int) error
}

// ColumnStore defines column persistence
type ColumnStore interface {
	CreateColumn(ctx context.Context, projectID int, name string, position *int) (*models.Column, error)
	GetColumnsByProject(ctx context.Context, projectID int) ([]*models.Column, error)
	GetAllColumns(ctx context.Context) ([]*models.Column, error)
	GetColumnByID(ctx context.Context, id int) (*models.Column, error)
	UpdateColumnName(ctx context.Context, id int, name string) error
	DeleteColumn(ctx context.Context, id int) error
	ReorderColumns(ctx context.Context, projectID int, columnIDs []int) error
	GetTaskCountByColumn(ctx context.Context, columnID int) (int, error)
}

// TaskStore defines task persistence
type TaskStore interface {
	CreateTask(ctx context.Context, columnID int, title, description string, dueDate *time.Time, position *int) (*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	GetTasksByColumn(ctx context.Context, columnID int) ([]*models.Task, error)
	GetTaskSummariesByProject(ctx context.Context, projectID int) (map[int][]*models.TaskSummary, error)
	GetTaskDetail(ctx context.Context, id int) (*models.TaskDetail, error)
	GetTaskProjectID(ctx context.Context, taskID int) (int, error)
	UpdateTask(ctx context.Context, id int, title, description string, dueDate *time.Time) error
	DeleteTask(ctx context.Context, id int) error
	MoveTask(ctx context.Context, taskID, toColumnID, position int) error
	ReorderTasks(ctx context.Context, columnID int, taskIDs []int) error
}

// LabelStore defines label persistence
type LabelStore interface {
	CreateLabel(ctx context.Context, projectID int, name, color string) (*models.Label, error)
	GetLabelByID(ctx context.Context, id int) (*models.Label, error)
	GetLabelsByProject(ctx context.Context, projectID int) ([]*models.Label, error)
	GetLabelsForTask(ctx context.Context, taskID int) ([]*models.Label, error)
	UpdateLabel(ctx context.Context, id int, name, color string) error
	DeleteLabel(ctx context.Context, id int) error
	AddLabelToTask(ctx context.Context, taskID, labelID int) error
	RemoveLabelFromTask(ctx context.Context, taskID, labelID int) error
}

// ChecklistStore defines checklist persistence
type ChecklistStore interface {
	CreateChecklistItem(ctx context.Context, taskID int, text string) (*models.ChecklistItem, error)
	GetChecklistItem(ctx context.Context, id int) (*models.ChecklistItem, error)
	GetChecklistForTask(ctx context.Context, taskID int) ([]*models.ChecklistItem, error)
	SetChecklistItemDone(ctx context.Context, id int, done bool) error
	UpdateChecklistItemText(ctx context.Context, id int, text string) error
	DeleteChecklistItem(ctx context.Context, id int) error
}

// DataStore is the full storage surface used by the services
type DataStore interface {
	ProjectStore
	ColumnStore
	TaskStore
	LabelStore
	ChecklistStore
}

var _ DataStore = (*Repository)(nil)
