package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avelar/tarea/internal/database"
)

func setupTestRepo(t *testing.T) *database.Repository {
	t.Helper()

	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "tarea.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return database.NewRepository(db)
}

func TestNew(t *testing.T) {
	repo := setupTestRepo(t)

	app := New(repo)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.TaskService == nil {
		t.Error("Expected TaskService to be initialized")
	}
	if app.TagService == nil {
		t.Error("Expected TagService to be initialized")
	}
	if app.StatusService == nil {
		t.Error("Expected StatusService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected Repo to return the repository")
	}
}

func TestClose(t *testing.T) {
	repo := setupTestRepo(t)

	app := New(repo)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
