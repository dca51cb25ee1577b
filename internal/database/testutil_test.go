package database

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations.
// The default statuses (TODO, IN_PROGRESS, BLOCKED, DONE) stay seeded;
// tests rely on them the same way the application does.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// createTestTask inserts a task with the given title in TODO and returns its id.
func createTestTask(t *testing.T, repo *Repository, title string) int {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), title, "", "TODO")
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}

// setTaskTimes overwrites a task's timestamps so date-ordering and
// date-filter tests don't depend on the wall clock.
func setTaskTimes(t *testing.T, db *sql.DB, taskID int, createdAt, updatedAt string) {
	t.Helper()
	_, err := db.Exec(
		"UPDATE tasks SET created_at = ?, updated_at = ? WHERE id = ?",
		createdAt, updatedAt, taskID,
	)
	if err != nil {
		t.Fatalf("Failed to set task times: %v", err)
	}
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "tarea-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tmpfile.Close()
	t.Cleanup(func() { _ = os.Remove(tmpfile.Name()) })

	db, err := Open(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	return db, tmpfile.Name()
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}

	return newDB
}
