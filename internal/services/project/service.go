package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	GetBoard(ctx context.Context, id int) (*models.Board, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) error
	DeleteProject(ctx context.Context, id int) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Description string
}

// UpdateProjectRequest encapsulates data for updating a project.
// Nil fields are left unchanged.
type UpdateProjectRequest struct {
	ID          int
	Name        *string
	Description *string
}

// repository defines the data access methods needed by the project service
type repository interface {
	CreateProject(ctx context.Context, name, description string) (*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id int, name, description string) error
	DeleteProject(ctx context.Context, id int) error

	// Board assembly
	GetColumnsByProject(ctx context.Context, projectID int) ([]*models.Column, error)
	GetTaskSummariesByProject(ctx context.Context, projectID int) (map[int][]*models.TaskSummary, error)
}

type service struct {
	repo      repository
	publisher events.Publisher
}

// NewService creates a new project service. publisher may be nil.
func NewService(repo repository, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProjects retrieves all projects
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAllProjects(ctx)
}

// GetProjectByID retrieves a single project
func (s *service) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	if id <= 0 {
		return nil, ErrInvalidProjectID
	}
	project, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return project, nil
}

// GetBoard loads a project with its columns and cards
func (s *service) GetBoard(ctx context.Context, id int) (*models.Board, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	columns, err := s.repo.GetColumnsByProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load columns: %w", err)
	}
	tasks, err := s.repo.GetTaskSummariesByProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return &models.Board{Project: project, Columns: columns, Tasks: tasks}, nil
}

// CreateProject creates a new project with its default columns
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	project, err := s.repo.CreateProject(ctx, req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.publishProjectEvent(project.ID)
	return project, nil
}

// UpdateProject updates a project's name and/or description
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) error {
	current, err := s.GetProjectByID(ctx, req.ID)
	if err != nil {
		return err
	}

	name, description := current.Name, current.Description
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return err
		}
	}
	if req.Description != nil {
		description = *req.Description
	}

	if err := s.repo.UpdateProject(ctx, req.ID, name, description); err != nil {
		return wrapNotFound(err)
	}

	s.publishProjectEvent(req.ID)
	return nil
}

// DeleteProject deletes a project with all of its columns, tasks and labels
func (s *service) DeleteProject(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidProjectID
	}
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return wrapNotFound(err)
	}

	s.publishProjectEvent(id)
	return nil
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > models.MaxProjectNameLength {
		return ErrNameTooLong
	}
	return nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return ErrProjectNotFound
	}
	return err
}

func (s *service) publishProjectEvent(projectID int) {
	_ = events.PublishWithRetry(s.publisher, events.NewEvent(events.EventProjectChanged, projectID, projectID), 3)
}
