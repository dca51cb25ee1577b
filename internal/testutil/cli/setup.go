// Package cli provides helpers for CLI integration tests. It lives in its
// own package so service tests can import testutil without pulling in the
// command machinery.
package cli

import (
	"database/sql"
	"testing"

	"github.com/avelar/tarea/internal/app"
	"github.com/avelar/tarea/internal/database"
	"github.com/avelar/tarea/internal/testutil"
)

// SetupCLITest creates a throwaway database and returns both the DB handle
// and an App instance wired to it. Commands under test receive the App
// through their context instead of opening the real database.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	appInstance := app.New(database.NewRepository(db))

	return db, appInstance
}
