// Package cli provides helpers for testing cobra commands against an in-memory database.
// It is separate from testutil to avoid import cycles when service tests import testutil.
package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	// Event publishing is tested elsewhere
	appInstance := app.New(db, app.WithLogger(logging.Discard()))

	return db, appInstance
}
