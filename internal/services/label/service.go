package label

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// DefaultColor is used when a label is created without one
const DefaultColor = "#7D56F4"

// Service defines all label-related business operations
type Service interface {
	GetLabelsByProject(ctx context.Context, projectID int) ([]*models.Label, error)
	GetLabelByID(ctx context.Context, id int) (*models.Label, error)
	CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error)
	UpdateLabel(ctx context.Context, req UpdateLabelRequest) error
	DeleteLabel(ctx context.Context, id int) error
}

// CreateLabelRequest encapsulates data for creating a label
type CreateLabelRequest struct {
	ProjectID int
	Name      string
	Color     string // Hex color like #FF5733; empty uses DefaultColor
}

// UpdateLabelRequest encapsulates data for updating a label.
// Nil fields are left unchanged.
type UpdateLabelRequest struct {
	ID    int
	Name  *string
	Color *string
}

// repository defines the data access methods needed by the label service
type repository interface {
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	CreateLabel(ctx context.Context, projectID int, name, color string) (*models.Label, error)
	GetLabelByID(ctx context.Context, id int) (*models.Label, error)
	GetLabelsByProject(ctx context.Context, projectID int) ([]*models.Label, error)
	UpdateLabel(ctx context.Context, id int, name, color string) error
	DeleteLabel(ctx context.Context, id int) error
}

type service struct {
	repo      repository
	publisher events.Publisher
}

// NewService creates a new label service. publisher may be nil.
func NewService(repo repository, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// GetLabelsByProject retrieves all labels of a project
func (s *service) GetLabelsByProject(ctx context.Context, projectID int) ([]*models.Label, error) {
	if projectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	if _, err := s.repo.GetProjectByID(ctx, projectID); err != nil {
		return nil, wrapNotFound(err, ErrProjectNotFound)
	}
	return s.repo.GetLabelsByProject(ctx, projectID)
}

// GetLabelByID retrieves a label
func (s *service) GetLabelByID(ctx context.Context, id int) (*models.Label, error) {
	if id <= 0 {
		return nil, ErrInvalidLabelID
	}
	l, err := s.repo.GetLabelByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, ErrLabelNotFound)
	}
	return l, nil
}

// CreateLabel creates a label in a project
func (s *service) CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Color == "" {
		req.Color = DefaultColor
	}
	if err := validate(req.Name, req.Color); err != nil {
		return nil, err
	}

	existing, err := s.GetLabelsByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if nameTaken(existing, req.Name, 0) {
		return nil, ErrLabelExists
	}

	l, err := s.repo.CreateLabel(ctx, req.ProjectID, req.Name, req.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	s.publishLabelEvent(l.ProjectID, l.ID)
	return l, nil
}

// UpdateLabel changes a label's name and/or color
func (s *service) UpdateLabel(ctx context.Context, req UpdateLabelRequest) error {
	existing, err := s.GetLabelByID(ctx, req.ID)
	if err != nil {
		return err
	}

	name, color := existing.Name, existing.Color
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	if req.Color != nil {
		color = *req.Color
	}
	if err := validate(name, color); err != nil {
		return err
	}

	if name != existing.Name {
		siblings, err := s.repo.GetLabelsByProject(ctx, existing.ProjectID)
		if err != nil {
			return err
		}
		if nameTaken(siblings, name, existing.ID) {
			return ErrLabelExists
		}
	}

	if err := s.repo.UpdateLabel(ctx, req.ID, name, color); err != nil {
		return wrapNotFound(err, ErrLabelNotFound)
	}

	s.publishLabelEvent(existing.ProjectID, req.ID)
	return nil
}

// DeleteLabel deletes a label and detaches it from every task
func (s *service) DeleteLabel(ctx context.Context, id int) error {
	existing, err := s.GetLabelByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteLabel(ctx, id); err != nil {
		return wrapNotFound(err, ErrLabelNotFound)
	}

	s.publishLabelEvent(existing.ProjectID, id)
	return nil
}

func validate(name, color string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > models.MaxLabelNameLength {
		return ErrNameTooLong
	}
	if !hexColorRegex.MatchString(color) {
		return ErrInvalidColor
	}
	return nil
}

func nameTaken(labels []*models.Label, name string, exceptID int) bool {
	for _, l := range labels {
		if l.ID != exceptID && strings.EqualFold(l.Name, name) {
			return true
		}
	}
	return false
}

func wrapNotFound(err, target error) error {
	if errors.Is(err, models.ErrNotFound) {
		return target
	}
	return err
}

func (s *service) publishLabelEvent(projectID, labelID int) {
	_ = events.PublishWithRetry(s.publisher, events.NewEvent(events.EventLabelChanged, projectID, labelID), 3)
}
