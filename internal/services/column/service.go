package column

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/status"
)

// Service defines all column-related business operations
type Service interface {
	// Read operations
	GetColumnsByProject(ctx context.Context, projectID int) ([]*models.Column, error)
	GetColumnByID(ctx context.Context, id int) (*models.Column, error)
	GetColumnStatuses(ctx context.Context, projectID int) ([]ColumnStatus, error)

	// Write operations
	CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error)
	UpdateColumnName(ctx context.Context, id int, name string) error
	DeleteColumn(ctx context.Context, id int, force bool) error
	ReorderColumns(ctx context.Context, projectID int, columnIDs []int) error
}

// CreateColumnRequest encapsulates data for creating a column
type CreateColumnRequest struct {
	Name      string
	ProjectID int
	Position  *int // Optional: index to insert at (nil = append to end)
}

// ColumnStatus pairs a column with the status its name maps to
type ColumnStatus struct {
	Column *models.Column `json:"column"`
	Status status.Status  `json:"status"`
}

// repository defines the data access methods needed by the column service
type repository interface {
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	CreateColumn(ctx context.Context, projectID int, name string, position *int) (*models.Column, error)
	GetColumnsByProject(ctx context.Context, projectID int) ([]*models.Column, error)
	GetColumnByID(ctx context.Context, id int) (*models.Column, error)
	UpdateColumnName(ctx context.Context, id int, name string) error
	DeleteColumn(ctx context.Context, id int) error
	ReorderColumns(ctx context.Context, projectID int, columnIDs []int) error
	GetTaskCountByColumn(ctx context.Context, columnID int) (int, error)
}

type service struct {
	repo      repository
	publisher events.Publisher
}

// NewService creates a new column service. publisher may be nil.
func NewService(repo repository, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// GetColumnsByProject retrieves all columns for a project in board order
func (s *service) GetColumnsByProject(ctx context.Context, projectID int) ([]*models.Column, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.GetColumnsByProject(ctx, projectID)
}

// GetColumnByID retrieves a specific column
func (s *service) GetColumnByID(ctx context.Context, id int) (*models.Column, error) {
	if id <= 0 {
		return nil, ErrInvalidColumnID
	}
	col, err := s.repo.GetColumnByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, ErrColumnNotFound)
	}
	return col, nil
}

// GetColumnStatuses maps every column of a project onto the status enum
func (s *service) GetColumnStatuses(ctx context.Context, projectID int) ([]ColumnStatus, error) {
	columns, err := s.GetColumnsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result := make([]ColumnStatus, 0, len(columns))
	for _, col := range columns {
		result = append(result, ColumnStatus{Column: col, Status: col.Status()})
	}
	return result, nil
}

// CreateColumn creates a new column, appended or inserted at req.Position
func (s *service) CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if req.Position != nil && *req.Position < 0 {
		return nil, ErrInvalidPosition
	}
	if err := s.requireProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	col, err := s.repo.CreateColumn(ctx, req.ProjectID, req.Name, req.Position)
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	s.publishColumnEvent(col.ProjectID, col.ID)
	return col, nil
}

// UpdateColumnName renames a column. The column's status follows its new name.
func (s *service) UpdateColumnName(ctx context.Context, id int, name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	col, err := s.GetColumnByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateColumnName(ctx, id, name); err != nil {
		return wrapNotFound(err, ErrColumnNotFound)
	}

	s.publishColumnEvent(col.ProjectID, id)
	return nil
}

// DeleteColumn deletes a column. Unless force is set, a column that still
// holds tasks is rejected with ErrColumnHasTasks.
func (s *service) DeleteColumn(ctx context.Context, id int, force bool) error {
	col, err := s.GetColumnByID(ctx, id)
	if err != nil {
		return err
	}

	if !force {
		count, err := s.repo.GetTaskCountByColumn(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count tasks: %w", err)
		}
		if count > 0 {
			return ErrColumnHasTasks
		}
	}

	if err := s.repo.DeleteColumn(ctx, id); err != nil {
		return wrapNotFound(err, ErrColumnNotFound)
	}

	s.publishColumnEvent(col.ProjectID, id)
	return nil
}

// ReorderColumns sets the column order of a project.
// columnIDs must list every column of the project exactly once.
func (s *service) ReorderColumns(ctx context.Context, projectID int, columnIDs []int) error {
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}

	if err := s.repo.ReorderColumns(ctx, projectID, columnIDs); err != nil {
		if errors.Is(err, models.ErrOrderMismatch) {
			return fmt.Errorf("%w: %w", models.ErrConflict, err)
		}
		return fmt.Errorf("failed to reorder columns: %w", err)
	}

	_ = events.PublishWithRetry(s.publisher, events.NewEvent(events.EventReordered, projectID, 0), 3)
	return nil
}

func (s *service) requireProject(ctx context.Context, projectID int) error {
	if projectID <= 0 {
		return ErrInvalidProjectID
	}
	if _, err := s.repo.GetProjectByID(ctx, projectID); err != nil {
		return wrapNotFound(err, ErrProjectNotFound)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > models.MaxColumnNameLength {
		return ErrNameTooLong
	}
	return nil
}

func wrapNotFound(err, target error) error {
	if errors.Is(err, models.ErrNotFound) {
		return target
	}
	return err
}

func (s *service) publishColumnEvent(projectID, columnID int) {
	_ = events.PublishWithRetry(s.publisher, events.NewEvent(events.EventColumnChanged, projectID, columnID), 3)
}
