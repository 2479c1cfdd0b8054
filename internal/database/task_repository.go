package database

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/status"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

const taskSelect = `SELECT id, column_id, title, description, position, due_date, created_at, updated_at FROM tasks`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	var due sql.NullTime
	if err := row.Scan(
		&task.ID, &task.ColumnID, &task.Title, &task.Description,
		&task.Position, &due, &task.CreatedAt, &task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	task.DueDate = nullTimeToPtr(due)
	return task, nil
}

// CreateTask creates a new task in a column.
// A nil position appends; otherwise the task is inserted at that index (clamped).
func (r *TaskRepo) CreateTask(ctx context.Context, columnID int, title, description string, dueDate *time.Time, position *int) (*models.Task, error) {
	var newID int
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		ids, err := orderedIDs(ctx, tx, "tasks", "column_id", columnID)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (column_id, title, description, position, due_date) VALUES (?, ?, ?, ?, ?)`,
			columnID, title, description, len(ids), timePtrToNull(dueDate),
		)
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
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
		return writePositions(ctx, tx, "tasks", "column_id", columnID, slices.Insert(ids, at, newID))
	})
	if err != nil {
		return nil, err
	}

	return r.GetTaskByID(ctx, newID)
}

// GetTaskByID retrieves a task by its ID
func (r *TaskRepo) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx, taskSelect+` WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err, "task", id)
	}
	return task, nil
}

// GetTasksByColumn retrieves all tasks for a specific column, ordered by position
func (r *TaskRepo) GetTasksByColumn(ctx context.Context, columnID int) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, taskSelect+` WHERE column_id = ? ORDER BY position, id`, columnID)
	if err != nil {
		return nil, fmt.Errorf("querying tasks for column %d: %w", columnID, err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// GetTaskSummariesByProject returns the cards of every column in a project, keyed by column ID
func (r *TaskRepo) GetTaskSummariesByProject(ctx context.Context, projectID int) (map[int][]*models.TaskSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.column_id, t.title, t.position,
		       (SELECT COUNT(*) FROM checklist_items ci WHERE ci.task_id = t.id AND ci.done = 1),
		       (SELECT COUNT(*) FROM checklist_items ci WHERE ci.task_id = t.id)
		FROM tasks t
		JOIN columns c ON c.id = t.column_id
		WHERE c.project_id = ?
		ORDER BY c.position, t.position, t.id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying task summaries for project %d: %w", projectID, err)
	}
	defer rows.Close()

	result := make(map[int][]*models.TaskSummary)
	byID := make(map[int]*models.TaskSummary)
	for rows.Next() {
		s := &models.TaskSummary{Labels: []*models.Label{}}
		if err := rows.Scan(&s.ID, &s.ColumnID, &s.Title, &s.Position, &s.ChecklistDone, &s.ChecklistTotal); err != nil {
			return nil, fmt.Errorf("scanning task summary: %w", err)
		}
		result[s.ColumnID] = append(result[s.ColumnID], s)
		byID[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	// Attach labels in a single query
	labelRows, err := r.db.QueryContext(ctx, `
		SELECT tl.task_id, l.id, l.project_id, l.name, l.color
		FROM task_labels tl
		JOIN labels l ON l.id = tl.label_id
		WHERE l.project_id = ?
		ORDER BY l.name`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying task labels for project %d: %w", projectID, err)
	}
	defer labelRows.Close()

	for labelRows.Next() {
		var taskID int
		l := &models.Label{}
		if err := labelRows.Scan(&taskID, &l.ID, &l.ProjectID, &l.Name, &l.Color); err != nil {
			return nil, fmt.Errorf("scanning task label: %w", err)
		}
		if s, ok := byID[taskID]; ok {
			s.Labels = append(s.Labels, l)
		}
	}
	return result, labelRows.Err()
}

// GetTaskDetail retrieves a task with its column, derived status, labels and checklist
func (r *TaskRepo) GetTaskDetail(ctx context.Context, id int) (*models.TaskDetail, error) {
	task, err := r.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.TaskDetail{Task: *task}
	err = r.db.QueryRowContext(ctx,
		`SELECT project_id, name FROM columns WHERE id = ?`, task.ColumnID,
	).Scan(&detail.ProjectID, &detail.ColumnName)
	if err != nil {
		return nil, notFound(err, "column", task.ColumnID)
	}
	detail.Status = status.FromColumnName(detail.ColumnName)

	detail.Labels, err = queryLabels(ctx, r.db, labelsForTaskQuery, id)
	if err != nil {
		return nil, err
	}

	detail.Checklist, err = queryChecklist(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// GetTaskProjectID returns the project a task belongs to
func (r *TaskRepo) GetTaskProjectID(ctx context.Context, taskID int) (int, error) {
	var projectID int
	err := r.db.QueryRowContext(ctx,
		`SELECT c.project_id FROM tasks t JOIN columns c ON c.id = t.column_id WHERE t.id = ?`,
		taskID,
	).Scan(&projectID)
	if err != nil {
		return 0, notFound(err, "task", taskID)
	}
	return projectID, nil
}

// UpdateTask updates a task's title, description and due date
func (r *TaskRepo) UpdateTask(ctx context.Context, id int, title, description string, dueDate *time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, due_date = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		title, description, timePtrToNull(dueDate), id,
	)
	if err != nil {
		return fmt.Errorf("updating task %d: %w", id, err)
	}
	return requireAffected(res, "task", id)
}

// DeleteTask removes a task and re-packs its column
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var columnID int
		if err := tx.QueryRowContext(ctx, `SELECT column_id FROM tasks WHERE id = ?`, id).Scan(&columnID); err != nil {
			return notFound(err, "task", id)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
			return fmt.Errorf("deleting task %d: %w", id, err)
		}
		return resequence(ctx, tx, "tasks", "column_id", columnID)
	})
}

// MoveTask moves a task to position (clamped) within toColumnID.
// Both the source and target columns end up densely packed.
func (r *TaskRepo) MoveTask(ctx context.Context, taskID, toColumnID, position int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var fromColumnID int
		if err := tx.QueryRowContext(ctx, `SELECT column_id FROM tasks WHERE id = ?`, taskID).Scan(&fromColumnID); err != nil {
			return notFound(err, "task", taskID)
		}

		ids, err := orderedIDs(ctx, tx, "tasks", "column_id", toColumnID)
		if err != nil {
			return err
		}
		ids = slices.DeleteFunc(ids, func(id int) bool { return id == taskID })
		at := max(0, min(position, len(ids)))
		ids = slices.Insert(ids, at, taskID)

		if err := writePositions(ctx, tx, "tasks", "column_id", toColumnID, ids); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE tasks SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, taskID); err != nil {
			return err
		}

		if fromColumnID != toColumnID {
			return resequence(ctx, tx, "tasks", "column_id", fromColumnID)
		}
		return nil
	})
}

// ReorderTasks sets the order of a column's tasks. taskIDs must list every task exactly once.
func (r *TaskRepo) ReorderTasks(ctx context.Context, columnID int, taskIDs []int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return applyOrder(ctx, tx, "tasks", "column_id", columnID, taskIDs)
	})
}
