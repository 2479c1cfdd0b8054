package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ChecklistRepo handles checklist items, which are ordered within their task
type ChecklistRepo struct {
	db *sql.DB
}

// CreateChecklistItem appends an item to a task's checklist
func (r *ChecklistRepo) CreateChecklistItem(ctx context.Context, taskID int, text string) (*models.ChecklistItem, error) {
	item := &models.ChecklistItem{TaskID: taskID, Text: text}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		ids, err := orderedIDs(ctx, tx, "checklist_items", "task_id", taskID)
		if err != nil {
			return err
		}
		item.Position = len(ids)

		result, err := tx.ExecContext(ctx,
			`INSERT INTO checklist_items (task_id, text, done, position) VALUES (?, ?, 0, ?)`,
			taskID, text, item.Position,
		)
		if err != nil {
			return fmt.Errorf("inserting checklist item: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		item.ID = int(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetChecklistItem retrieves one checklist item
func (r *ChecklistRepo) GetChecklistItem(ctx context.Context, id int) (*models.ChecklistItem, error) {
	item := &models.ChecklistItem{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, task_id, text, done, position FROM checklist_items WHERE id = ?`, id,
	).Scan(&item.ID, &item.TaskID, &item.Text, &item.Done, &item.Position)
	if err != nil {
		return nil, notFound(err, "checklist item", id)
	}
	return item, nil
}

// GetChecklistForTask retrieves a task's checklist in order
func (r *ChecklistRepo) GetChecklistForTask(ctx context.Context, taskID int) ([]*models.ChecklistItem, error) {
	return queryChecklist(ctx, r.db, taskID)
}

func queryChecklist(ctx context.Context, q execer, taskID int) ([]*models.ChecklistItem, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, task_id, text, done, position FROM checklist_items WHERE task_id = ? ORDER BY position, id`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying checklist for task %d: %w", taskID, err)
	}
	defer rows.Close()

	items := []*models.ChecklistItem{}
	for rows.Next() {
		item := &models.ChecklistItem{}
		if err := rows.Scan(&item.ID, &item.TaskID, &item.Text, &item.Done, &item.Position); err != nil {
			return nil, fmt.Errorf("scanning checklist row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetChecklistItemDone checks or unchecks an item
func (r *ChecklistRepo) SetChecklistItemDone(ctx context.Context, id int, done bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE checklist_items SET done = ? WHERE id = ?`, done, id)
	if err != nil {
		return fmt.Errorf("updating checklist item %d: %w", id, err)
	}
	return requireAffected(res, "checklist item", id)
}

// UpdateChecklistItemText changes an item's text
func (r *ChecklistRepo) UpdateChecklistItemText(ctx context.Context, id int, text string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE checklist_items SET text = ? WHERE id = ?`, text, id)
	if err != nil {
		return fmt.Errorf("updating checklist item %d: %w", id, err)
	}
	return requireAffected(res, "checklist item", id)
}

// DeleteChecklistItem removes an item and re-packs the checklist
func (r *ChecklistRepo) DeleteChecklistItem(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var taskID int
		if err := tx.QueryRowContext(ctx, `SELECT task_id FROM checklist_items WHERE id = ?`, id).Scan(&taskID); err != nil {
			return notFound(err, "checklist item", id)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM checklist_items WHERE id = ?`, id); err != nil {
			return fmt.Errorf("deleting checklist item %d: %w", id, err)
		}
		return resequence(ctx, tx, "checklist_items", "task_id", taskID)
	})
}
