package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// LabelRepo handles all label-related database operations.
type LabelRepo struct {
	db *sql.DB
}

// CreateLabel creates a new label in a project
func (r *LabelRepo) CreateLabel(ctx context.Context, projectID int, name, color string) (*models.Label, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO labels (project_id, name, color) VALUES (?, ?, ?)`,
		projectID, name, color,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create label '%s': %w", name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Label{ID: int(id), ProjectID: projectID, Name: name, Color: color}, nil
}

// GetLabelByID retrieves a label by its ID
func (r *LabelRepo) GetLabelByID(ctx context.Context, id int) (*models.Label, error) {
	l := &models.Label{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, color FROM labels WHERE id = ?`, id,
	).Scan(&l.ID, &l.ProjectID, &l.Name, &l.Color)
	if err != nil {
		return nil, notFound(err, "label", id)
	}
	return l, nil
}

// GetLabelsByProject retrieves all labels for a project, ordered by name
func (r *LabelRepo) GetLabelsByProject(ctx context.Context, projectID int) ([]*models.Label, error) {
	return queryLabels(ctx, r.db,
		`SELECT id, project_id, name, color FROM labels WHERE project_id = ? ORDER BY name, id`,
		projectID)
}

// GetLabelsForTask retrieves the labels attached to a task
func (r *LabelRepo) GetLabelsForTask(ctx context.Context, taskID int) ([]*models.Label, error) {
	return queryLabels(ctx, r.db, labelsForTaskQuery, taskID)
}

const labelsForTaskQuery = `
	SELECT l.id, l.project_id, l.name, l.color
	FROM labels l
	JOIN task_labels tl ON tl.label_id = l.id
	WHERE tl.task_id = ?
	ORDER BY l.name, l.id`

func queryLabels(ctx context.Context, q execer, query string, args ...any) ([]*models.Label, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying labels: %w", err)
	}
	defer rows.Close()

	labels := []*models.Label{}
	for rows.Next() {
		l := &models.Label{}
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Name, &l.Color); err != nil {
			return nil, fmt.Errorf("scanning label row: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// UpdateLabel updates a label's name and color
func (r *LabelRepo) UpdateLabel(ctx context.Context, id int, name, color string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE labels SET name = ?, color = ? WHERE id = ?`, name, color, id)
	if err != nil {
		return fmt.Errorf("updating label %d: %w", id, err)
	}
	return requireAffected(res, "label", id)
}

// DeleteLabel removes a label from the project and every task
func (r *LabelRepo) DeleteLabel(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting label %d: %w", id, err)
	}
	return requireAffected(res, "label", id)
}

// AddLabelToTask attaches a label to a task. Attaching twice is a no-op.
func (r *LabelRepo) AddLabelToTask(ctx context.Context, taskID, labelID int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO task_labels (task_id, label_id) VALUES (?, ?)`,
		taskID, labelID,
	)
	if err != nil {
		return fmt.Errorf("adding label %d to task %d: %w", labelID, taskID, err)
	}
	return nil
}

// RemoveLabelFromTask detaches a label from a task
func (r *LabelRepo) RemoveLabelFromTask(ctx context.Context, taskID, labelID int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM task_labels WHERE task_id = ? AND label_id = ?`,
		taskID, labelID,
	)
	if err != nil {
		return fmt.Errorf("removing label %d from task %d: %w", labelID, taskID, err)
	}
	return nil
}
