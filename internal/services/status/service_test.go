package status

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avelar/tarea/internal/database"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "tarea.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewService(database.NewRepository(db))
}

func TestListStatuses(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	statuses, err := svc.ListStatuses(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"TODO", "IN_PROGRESS", "BLOCKED", "DONE"}
	if len(statuses) != len(want) {
		t.Fatalf("Expected %d statuses, got %d", len(want), len(statuses))
	}
	for i, name := range want {
		if statuses[i].Name != name {
			t.Errorf("Expected status %d to be %s, got %s", i, name, statuses[i].Name)
		}
		if statuses[i].Position != i+1 {
			t.Errorf("Expected %s at position %d, got %d", name, i+1, statuses[i].Position)
		}
	}
}

func TestStatusNames(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	names, err := svc.StatusNames(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"TODO", "IN_PROGRESS", "BLOCKED", "DONE"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Expected name %d to be %s, got %s", i, name, names[i])
		}
	}
}
