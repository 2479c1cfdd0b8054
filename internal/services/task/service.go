package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/status"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	GetTaskDetail(ctx context.Context, id int) (*models.TaskDetail, error)
	GetTasksByColumn(ctx context.Context, columnID int) ([]*models.Task, error)
	ListTasksByStatus(ctx context.Context, projectID int, st status.Status) ([]*models.TaskDetail, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, id int) error

	// Ordering
	MoveTask(ctx context.Context, taskID, columnID, position int) error
	MoveTaskToStatus(ctx context.Context, taskID int, st status.Status) error
	ReorderTasks(ctx context.Context, columnID int, taskIDs []int) error

	// Labels
	AttachLabel(ctx context.Context, taskID, labelID int) error
	DetachLabel(ctx context.Context, taskID, labelID int) error

	// Checklist
	AddChecklistItem(ctx context.Context, taskID int, text string) (*models.ChecklistItem, error)
	SetChecklistItemDone(ctx context.Context, itemID int, done bool) error
	ToggleChecklistItem(ctx context.Context, itemID int) (*models.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, itemID int, text string) error
	DeleteChecklistItem(ctx context.Context, itemID int) error
}

// CreateTaskRequest encapsulates data for creating a task
type CreateTaskRequest struct {
	ColumnID    int
	Title       string
	Description string
	DueDate     *time.Time
	Position    *int  // Optional: index to insert at (nil = append to end)
	LabelIDs    []int // Optional: labels to attach
}

// UpdateTaskRequest encapsulates data for updating a task.
// Nil fields are left unchanged; ClearDueDate removes the due date.
type UpdateTaskRequest struct {
	ID           int
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
}

// repository defines the data access methods needed by the task service
type repository interface {
	GetColumnByID(ctx context.Context, id int) (*models.Column, error)
	GetColumnsByProject(ctx context.Context, projectID int) ([]*models.Column, error)
	GetAllColumns(ctx context.Context) ([]*models.Column, error)

	CreateTask(ctx context.Context, columnID int, title, description string, dueDate *time.Time, position *int) (*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	GetTasksByColumn(ctx context.Context, columnID int) ([]*models.Task, error)
	GetTaskDetail(ctx context.Context, id int) (*models.TaskDetail, error)
	GetTaskProjectID(ctx context.Context, taskID int) (int, error)
	UpdateTask(ctx context.Context, id int, title, description string, dueDate *time.Time) error
	DeleteTask(ctx context.Context, id int) error
	MoveTask(ctx context.Context, taskID, toColumnID, position int) error
	ReorderTasks(ctx context.Context, columnID int, taskIDs []int) error

	GetLabelByID(ctx context.Context, id int) (*models.Label, error)
	GetLabelsForTask(ctx context.Context, taskID int) ([]*models.Label, error)
	AddLabelToTask(ctx context.Context, taskID, labelID int) error
	RemoveLabelFromTask(ctx context.Context, taskID, labelID int) error

	CreateChecklistItem(ctx context.Context, taskID int, text string) (*models.ChecklistItem, error)
	GetChecklistItem(ctx context.Context, id int) (*models.ChecklistItem, error)
	SetChecklistItemDone(ctx context.Context, id int, done bool) error
	UpdateChecklistItemText(ctx context.Context, id int, text string) error
	DeleteChecklistItem(ctx context.Context, id int) error
}

type service struct {
	repo      repository
	publisher events.Publisher
}

// NewService creates a new task service. publisher may be nil.
func NewService(repo repository, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// GetTaskByID retrieves a task
func (s *service) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}
	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, ErrTaskNotFound)
	}
	return task, nil
}

// GetTaskDetail retrieves a task with its labels, checklist and derived status
func (s *service) GetTaskDetail(ctx context.Context, id int) (*models.TaskDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}
	detail, err := s.repo.GetTaskDetail(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, ErrTaskNotFound)
	}
	return detail, nil
}

// GetTasksByColumn retrieves a column's tasks in order
func (s *service) GetTasksByColumn(ctx context.Context, columnID int) ([]*models.Task, error) {
	if _, err := s.getColumn(ctx, columnID); err != nil {
		return nil, err
	}
	return s.repo.GetTasksByColumn(ctx, columnID)
}

// ListTasksByStatus returns every task whose column maps to st.
// projectID 0 searches all projects. Results follow board order.
func (s *service) ListTasksByStatus(ctx context.Context, projectID int, st status.Status) ([]*models.TaskDetail, error) {
	if !status.IsValid(string(st)) {
		return nil, ErrInvalidStatus
	}

	var columns []*models.Column
	var err error
	if projectID > 0 {
		columns, err = s.repo.GetColumnsByProject(ctx, projectID)
	} else {
		columns, err = s.repo.GetAllColumns(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load columns: %w", err)
	}

	result := []*models.TaskDetail{}
	for _, col := range columns {
		if col.Status() != st {
			continue
		}
		tasks, err := s.repo.GetTasksByColumn(ctx, col.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load tasks for column %d: %w", col.ID, err)
		}
		for _, task := range tasks {
			labels, err := s.repo.GetLabelsForTask(ctx, task.ID)
			if err != nil {
				return nil, err
			}
			result = append(result, &models.TaskDetail{
				Task:       *task,
				ProjectID:  col.ProjectID,
				ColumnName: col.Name,
				Status:     st,
				Labels:     labels,
				Checklist:  []*models.ChecklistItem{},
			})
		}
	}
	return result, nil
}

// CreateTask creates a task in a column and attaches any requested labels
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if req.Position != nil && *req.Position < 0 {
		return nil, ErrInvalidPosition
	}

	col, err := s.getColumn(ctx, req.ColumnID)
	if err != nil {
		return nil, err
	}
	for _, labelID := range req.LabelIDs {
		if err := s.checkLabel(ctx, labelID, col.ProjectID); err != nil {
			return nil, err
		}
	}

	task, err := s.repo.CreateTask(ctx, req.ColumnID, req.Title, req.Description, req.DueDate, req.Position)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	for _, labelID := range req.LabelIDs {
		if err := s.repo.AddLabelToTask(ctx, task.ID, labelID); err != nil {
			return nil, err
		}
	}

	s.publishTaskEvent(col.ProjectID, task.ID)
	return task, nil
}

// UpdateTask changes a task's title, description or due date
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) error {
	current, err := s.GetTaskByID(ctx, req.ID)
	if err != nil {
		return err
	}

	title, description, due := current.Title, current.Description, current.DueDate
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if err := validateTitle(title); err != nil {
			return err
		}
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.DueDate != nil {
		due = req.DueDate
	}
	if req.ClearDueDate {
		due = nil
	}

	if err := s.repo.UpdateTask(ctx, req.ID, title, description, due); err != nil {
		return wrapNotFound(err, ErrTaskNotFound)
	}

	s.publishForTask(ctx, req.ID)
	return nil
}

// DeleteTask deletes a task and closes the gap in its column
func (s *service) DeleteTask(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	projectID, err := s.repo.GetTaskProjectID(ctx, id)
	if err != nil {
		return wrapNotFound(err, ErrTaskNotFound)
	}

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return wrapNotFound(err, ErrTaskNotFound)
	}

	s.publishTaskEvent(projectID, id)
	return nil
}

// MoveTask places a task at position within columnID. Positions past the
// end are clamped. Tasks cannot leave their project.
func (s *service) MoveTask(ctx context.Context, taskID, columnID, position int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if position < 0 {
		return ErrInvalidPosition
	}

	projectID, err := s.repo.GetTaskProjectID(ctx, taskID)
	if err != nil {
		return wrapNotFound(err, ErrTaskNotFound)
	}
	col, err := s.getColumn(ctx, columnID)
	if err != nil {
		return err
	}
	if col.ProjectID != projectID {
		return ErrCrossProjectMove
	}

	if err := s.repo.MoveTask(ctx, taskID, columnID, position); err != nil {
		return wrapNotFound(err, ErrTaskNotFound)
	}

	_ = events.PublishWithRetry(s.publisher, events.NewEvent(events.EventReordered, projectID, taskID), 3)
	return nil
}

// MoveTaskToStatus appends a task to the first column of its project whose name maps to st
func (s *service) MoveTaskToStatus(ctx context.Context, taskID int, st status.Status) error {
	if !status.IsValid(string(st)) {
		return ErrInvalidStatus
	}
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	projectID, err := s.repo.GetTaskProjectID(ctx, taskID)
	if err != nil {
		return wrapNotFound(err, ErrTaskNotFound)
	}
	columns, err := s.repo.GetColumnsByProject(ctx, projectID)
	if err != nil {
		return err
	}

	for _, col := range columns {
		if col.Status() != st {
			continue
		}
		tasks, err := s.repo.GetTasksByColumn(ctx, col.ID)
		if err != nil {
			return err
		}
		return s.MoveTask(ctx, taskID, col.ID, len(tasks))
	}
	return fmt.Errorf("%w: %s", ErrNoColumnForStatus, st)
}

// ReorderTasks sets the order of a column's tasks.
// taskIDs must list every task in the column exactly once.
func (s *service) ReorderTasks(ctx context.Context, columnID int, taskIDs []int) error {
	col, err := s.getColumn(ctx, columnID)
	if err != nil {
		return err
	}

	if err := s.repo.ReorderTasks(ctx, columnID, taskIDs); err != nil {
		if errors.Is(err, models.ErrOrderMismatch) {
			return fmt.Errorf("%w: %w", models.ErrConflict, err)
		}
		return fmt.Errorf("failed to reorder tasks: %w", err)
	}

	_ = events.PublishWithRetry(s.publisher, events.NewEvent(events.EventReordered, col.ProjectID, 0), 3)
	return nil
}

// AttachLabel adds a label from the task's project to the task
func (s *service) AttachLabel(ctx context.Context, taskID, labelID int) error {
	projectID, err := s.taskProject(ctx, taskID)
	if err != nil {
		return err
	}
	if err := s.checkLabel(ctx, labelID, projectID); err != nil {
		return err
	}
	if err := s.repo.AddLabelToTask(ctx, taskID, labelID); err != nil {
		return err
	}

	s.publishTaskEvent(projectID, taskID)
	return nil
}

// DetachLabel removes a label from a task
func (s *service) DetachLabel(ctx context.Context, taskID, labelID int) error {
	projectID, err := s.taskProject(ctx, taskID)
	if err != nil {
		return err
	}
	if labelID <= 0 {
		return ErrInvalidLabelID
	}
	if err := s.repo.RemoveLabelFromTask(ctx, taskID, labelID); err != nil {
		return err
	}

	s.publishTaskEvent(projectID, taskID)
	return nil
}

// AddChecklistItem appends an item to a task's checklist
func (s *service) AddChecklistItem(ctx context.Context, taskID int, text string) (*models.ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if err := validateChecklistText(text); err != nil {
		return nil, err
	}
	projectID, err := s.taskProject(ctx, taskID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.CreateChecklistItem(ctx, taskID, text)
	if err != nil {
		return nil, fmt.Errorf("failed to add checklist item: %w", err)
	}

	s.publishTaskEvent(projectID, taskID)
	return item, nil
}

// SetChecklistItemDone checks or unchecks an item
func (s *service) SetChecklistItemDone(ctx context.Context, itemID int, done bool) error {
	item, err := s.getChecklistItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.repo.SetChecklistItemDone(ctx, itemID, done); err != nil {
		return wrapNotFound(err, ErrChecklistNotFound)
	}

	s.publishForTask(ctx, item.TaskID)
	return nil
}

// ToggleChecklistItem flips an item's done flag and returns the updated item
func (s *service) ToggleChecklistItem(ctx context.Context, itemID int) (*models.ChecklistItem, error) {
	item, err := s.getChecklistItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.SetChecklistItemDone(ctx, itemID, !item.Done); err != nil {
		return nil, err
	}
	item.Done = !item.Done
	return item, nil
}

// UpdateChecklistItem changes an item's text
func (s *service) UpdateChecklistItem(ctx context.Context, itemID int, text string) error {
	text = strings.TrimSpace(text)
	if err := validateChecklistText(text); err != nil {
		return err
	}
	item, err := s.getChecklistItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateChecklistItemText(ctx, itemID, text); err != nil {
		return wrapNotFound(err, ErrChecklistNotFound)
	}

	s.publishForTask(ctx, item.TaskID)
	return nil
}

// DeleteChecklistItem removes an item from its checklist
func (s *service) DeleteChecklistItem(ctx context.Context, itemID int) error {
	item, err := s.getChecklistItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteChecklistItem(ctx, itemID); err != nil {
		return wrapNotFound(err, ErrChecklistNotFound)
	}

	s.publishForTask(ctx, item.TaskID)
	return nil
}

func (s *service) getColumn(ctx context.Context, columnID int) (*models.Column, error) {
	if columnID <= 0 {
		return nil, ErrInvalidColumnID
	}
	col, err := s.repo.GetColumnByID(ctx, columnID)
	if err != nil {
		return nil, wrapNotFound(err, ErrColumnNotFound)
	}
	return col, nil
}

func (s *service) taskProject(ctx context.Context, taskID int) (int, error) {
	if taskID <= 0 {
		return 0, ErrInvalidTaskID
	}
	projectID, err := s.repo.GetTaskProjectID(ctx, taskID)
	if err != nil {
		return 0, wrapNotFound(err, ErrTaskNotFound)
	}
	return projectID, nil
}

func (s *service) checkLabel(ctx context.Context, labelID, projectID int) error {
	if labelID <= 0 {
		return ErrInvalidLabelID
	}
	l, err := s.repo.GetLabelByID(ctx, labelID)
	if err != nil {
		return wrapNotFound(err, ErrLabelNotFound)
	}
	if l.ProjectID != projectID {
		return ErrLabelProjectMismatch
	}
	return nil
}

func (s *service) getChecklistItem(ctx context.Context, itemID int) (*models.ChecklistItem, error) {
	if itemID <= 0 {
		return nil, ErrChecklistNotFound
	}
	item, err := s.repo.GetChecklistItem(ctx, itemID)
	if err != nil {
		return nil, wrapNotFound(err, ErrChecklistNotFound)
	}
	return item, nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > models.MaxTaskTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateChecklistText(text string) error {
	if text == "" {
		return ErrEmptyChecklist
	}
	if len(text) > models.MaxChecklistLength {
		return ErrChecklistTooLong
	}
	return nil
}

func wrapNotFound(err, target error) error {
	if errors.Is(err, models.ErrNotFound) {
		return target
	}
	return err
}

// publishForTask looks up the task's project before publishing.
// A failed lookup only costs the live update.
func (s *service) publishForTask(ctx context.Context, taskID int) {
	projectID, err := s.repo.GetTaskProjectID(ctx, taskID)
	if err != nil {
		return
	}
	s.publishTaskEvent(projectID, taskID)
}

func (s *service) publishTaskEvent(projectID, taskID int) {
	_ = events.PublishWithRetry(s.publisher, events.NewEvent(events.EventTaskChanged, projectID, taskID), 3)
}
