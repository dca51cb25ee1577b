// Package testutil provides database and output helpers shared by tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/avelar/tarea/internal/database"
)

// SetupTestDB opens a throwaway database under t.TempDir and runs the real
// migrations, so tests exercise the same schema and seed data as production.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "tarea.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestTask creates a test task and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title, status string) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (title, description, status) VALUES (?, '', ?)", title, status)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	taskID, _ := result.LastInsertId()
	return int(taskID)
}

// CreateTestTag creates a test tag and returns its ID. An empty color is
// stored as NULL, matching the repository's behavior.
func CreateTestTag(t *testing.T, db *sql.DB, name, color string) int {
	t.Helper()

	var colorValue interface{}
	if color != "" {
		colorValue = color
	}
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tags (name, color) VALUES (?, ?)", name, colorValue)
	if err != nil {
		t.Fatalf("Failed to create test tag: %v", err)
	}
	tagID, _ := result.LastInsertId()
	return int(tagID)
}

// AssignTestTag attaches a tag to a task
func AssignTestTag(t *testing.T, db *sql.DB, taskID, tagID int) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		"INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)", taskID, tagID)
	if err != nil {
		t.Fatalf("Failed to assign test tag: %v", err)
	}
}

// CreateTestLink records that fromID depends on toID and returns the link ID
func CreateTestLink(t *testing.T, db *sql.DB, fromID, toID int) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		"INSERT INTO task_links (from_task_id, to_task_id, type) VALUES (?, ?, 'dependency')",
		fromID, toID)
	if err != nil {
		t.Fatalf("Failed to create test link: %v", err)
	}
	linkID, _ := result.LastInsertId()
	return int(linkID)
}
