package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

// CreateProject creates a new project seeded with the default columns
func (r *ProjectRepo) CreateProject(ctx context.Context, name, description string) (*models.Project, error) {
	var projectID int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO projects (name, description) VALUES (?, ?)`,
			name, description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert project '%s': %w", name, err)
		}

		projectID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get project ID after insert: %w", err)
		}

		for pos, colName := range models.DefaultColumns {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO columns (project_id, name, position) VALUES (?, ?, ?)`,
				projectID, colName, pos,
			); err != nil {
				return fmt.Errorf("failed to create default column '%s' for project %d: %w", colName, projectID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetProjectByID(ctx, int(projectID))
}

// GetAllProjects retrieves every project ordered by name
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, created_at, updated_at FROM projects ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		p := &models.Project{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProjectByID retrieves a project by its ID
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at, updated_at FROM projects WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "project", id)
	}
	return p, nil
}

// UpdateProject updates a project's name and description
func (r *ProjectRepo) UpdateProject(ctx context.Context, id int, name, description string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		name, description, id,
	)
	if err != nil {
		return fmt.Errorf("updating project %d: %w", id, err)
	}
	return requireAffected(res, "project", id)
}

// DeleteProject removes a project; columns, tasks and labels cascade
func (r *ProjectRepo) DeleteProject(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project %d: %w", id, err)
	}
	return requireAffected(res, "project", id)
}
