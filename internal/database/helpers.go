package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// orderedIDs returns the ids in a positioned table for one container, by position then id
func orderedIDs(ctx context.Context, q execer, table, scope string, scopeID int) ([]int, error) {
	query := fmt.Sprintf("SELECT id FROM %s WHERE %s = ? ORDER BY position, id", table, scope)
	rows, err := q.QueryContext(ctx, query, scopeID)
	if err != nil {
		return nil, fmt.Errorf("listing %s for %s %d: %w", table, scope, scopeID, err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// writePositions assigns dense 0..n-1 positions in the given order
func writePositions(ctx context.Context, q execer, table, scope string, scopeID int, ids []int) error {
	query := fmt.Sprintf("UPDATE %s SET position = ?, %s = ? WHERE id = ?", table, scope)
	for pos, id := range ids {
		if _, err := q.ExecContext(ctx, query, pos, scopeID, id); err != nil {
			return fmt.Errorf("updating position of %s %d: %w", table, id, err)
		}
	}
	return nil
}

// resequence closes gaps left by deletes and moves
func resequence(ctx context.Context, q execer, table, scope string, scopeID int) error {
	ids, err := orderedIDs(ctx, q, table, scope, scopeID)
	if err != nil {
		return err
	}
	return writePositions(ctx, q, table, scope, scopeID, ids)
}

// applyOrder rewrites positions for a container to match want, which must be a
// permutation of the container's current items
func applyOrder(ctx context.Context, q execer, table, scope string, scopeID int, want []int) error {
	current, err := orderedIDs(ctx, q, table, scope, scopeID)
	if err != nil {
		return err
	}
	if !samePermutation(current, want) {
		return fmt.Errorf("%w: %s %d has %v, got %v", models.ErrOrderMismatch, scope, scopeID, current, want)
	}
	return writePositions(ctx, q, table, scope, scopeID, want)
}

func samePermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

// notFound converts sql.ErrNoRows into models.ErrNotFound
func notFound(err error, what string, id int) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", what, id, models.ErrNotFound)
	}
	return err
}

// requireAffected returns models.ErrNotFound when an update or delete touched nothing
func requireAffected(res sql.Result, what string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, models.ErrNotFound)
	}
	return nil
}

// nullTimeToPtr converts sql.NullTime to *time.Time.
// Returns nil if the value is not valid.
func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

// timePtrToNull converts an optional time to a driver value
func timePtrToNull(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
