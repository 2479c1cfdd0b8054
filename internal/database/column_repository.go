package database

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db *sql.DB
}

const columnSelect = `SELECT id, project_id, name, position FROM columns`

// CreateColumn creates a new column in a project.
// A nil position appends the column; otherwise it is inserted at that index
// (clamped) and the project's columns are re-packed.
func (r *ColumnRepo) CreateColumn(ctx context.Context, projectID int, name string, position *int) (*models.Column, error) {
	var newID int
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		ids, err := orderedIDs(ctx, tx, "columns", "project_id", projectID)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO columns (project_id, name, position) VALUES (?, ?, ?)`,
			projectID, name, len(ids),
		)
		if err != nil {
			return fmt.Errorf("inserting column: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		newID = int(id)

		if position == nil {
			return nil
		}
		at := max(0, min(*position, len(ids)))
		return writePositions(ctx, tx, "columns", "project_id", projectID, slices.Insert(ids, at, newID))
	})
	if err != nil {
		return nil, err
	}

	return r.GetColumnByID(ctx, newID)
}

// GetColumnsByProject retrieves all columns for a project in board order
func (r *ColumnRepo) GetColumnsByProject(ctx context.Context, projectID int) ([]*models.Column, error) {
	return r.queryColumns(ctx, columnSelect+` WHERE project_id = ? ORDER BY position, id`, projectID)
}

// GetAllColumns retrieves every column of every project
func (r *ColumnRepo) GetAllColumns(ctx context.Context) ([]*models.Column, error) {
	return r.queryColumns(ctx, columnSelect+` ORDER BY project_id, position, id`)
}

func (r *ColumnRepo) queryColumns(ctx context.Context, query string, args ...any) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	columns := []*models.Column{}
	for rows.Next() {
		col := &models.Column{}
		if err := rows.Scan(&col.ID, &col.ProjectID, &col.Name, &col.Position); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}
	return columns, nil
}

// GetColumnByID retrieves a column by its ID
func (r *ColumnRepo) GetColumnByID(ctx context.Context, id int) (*models.Column, error) {
	col := &models.Column{}
	err := r.db.QueryRowContext(ctx, columnSelect+` WHERE id = ?`, id).
		Scan(&col.ID, &col.ProjectID, &col.Name, &col.Position)
	if err != nil {
		return nil, notFound(err, "column", id)
	}
	return col, nil
}

// UpdateColumnName renames a column
func (r *ColumnRepo) UpdateColumnName(ctx context.Context, id int, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE columns SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("renaming column %d: %w", id, err)
	}
	return requireAffected(res, "column", id)
}

// DeleteColumn removes a column (its tasks cascade) and re-packs the project's columns
func (r *ColumnRepo) DeleteColumn(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var projectID int
		if err := tx.QueryRowContext(ctx, `SELECT project_id FROM columns WHERE id = ?`, id).Scan(&projectID); err != nil {
			return notFound(err, "column", id)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, id); err != nil {
			return fmt.Errorf("deleting column %d: %w", id, err)
		}
		return resequence(ctx, tx, "columns", "project_id", projectID)
	})
}

// ReorderColumns sets the project's column order. columnIDs must list every column exactly once.
func (r *ColumnRepo) ReorderColumns(ctx context.Context, projectID int, columnIDs []int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return applyOrder(ctx, tx, "columns", "project_id", projectID, columnIDs)
	})
}

// GetTaskCountByColumn returns the number of tasks in a specific column
func (r *ColumnRepo) GetTaskCountByColumn(ctx context.Context, columnID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE column_id = ?`, columnID).Scan(&count)
	return count, err
}
