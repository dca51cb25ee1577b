package tui

import (
	"database/sql"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelar/tarea/internal/app"
	"github.com/avelar/tarea/internal/config"
	"github.com/avelar/tarea/internal/database"
	"github.com/avelar/tarea/internal/testutil"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestModel(t *testing.T) (*sql.DB, Model) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)

	cfg := &config.Config{
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: config.DefaultColorScheme(),
	}
	cfg.ColorScheme.ApplyDefaults()

	return db, NewModel(app.New(repo), cfg)
}

// loadModel runs the initial data load and returns the updated model
func loadModel(t *testing.T, m Model) Model {
	t.Helper()

	msg := m.loadData()
	if _, ok := msg.(errMsg); ok {
		t.Fatalf("Expected data, got error message: %v", msg)
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================================
// Model Tests
// ============================================================================

func TestModelLoadsBoardData(t *testing.T) {
	db, m := newTestModel(t)
	testutil.CreateTestTask(t, db, "First task", "TODO")
	testutil.CreateTestTask(t, db, "Second task", "DONE")

	m = loadModel(t, m)

	if !m.loaded {
		t.Fatal("Expected model to be loaded")
	}
	if len(m.statuses) != 4 {
		t.Errorf("Expected four seeded statuses, got %d", len(m.statuses))
	}
	if len(m.byStatus["TODO"]) != 1 || len(m.byStatus["DONE"]) != 1 {
		t.Errorf("Expected tasks grouped by status, got %v", m.byStatus)
	}

	view := m.View()
	if !strings.Contains(view, "First task") {
		t.Errorf("Expected task on the board, got: %s", view)
	}
	if !strings.Contains(view, "No tasks") {
		t.Errorf("Expected placeholder for empty columns, got: %s", view)
	}
}

func TestModelNavigationClampsToBoard(t *testing.T) {
	db, m := newTestModel(t)
	testutil.CreateTestTask(t, db, "Task one", "TODO")
	testutil.CreateTestTask(t, db, "Task two", "TODO")

	m = loadModel(t, m)

	// Start in the first column
	if m.col != 0 {
		t.Fatalf("Expected cursor in column 0, got %d", m.col)
	}

	// Move right then left
	updated, _ := m.Update(keyRune('l'))
	m = updated.(Model)
	if m.col != 1 {
		t.Errorf("Expected column 1 after next-column, got %d", m.col)
	}
	updated, _ = m.Update(keyRune('h'))
	m = updated.(Model)
	if m.col != 0 {
		t.Errorf("Expected column 0 after prev-column, got %d", m.col)
	}

	// Left edge clamps
	updated, _ = m.Update(keyRune('h'))
	m = updated.(Model)
	if m.col != 0 {
		t.Errorf("Expected column to clamp at 0, got %d", m.col)
	}

	// Tasks list newest first, so row 0 is the latest task
	if task := m.selectedTask(); task == nil || task.Title != "Task two" {
		t.Errorf("Expected newest task selected, got %+v", task)
	}

	updated, _ = m.Update(keyRune('j'))
	m = updated.(Model)
	if task := m.selectedTask(); task == nil || task.Title != "Task one" {
		t.Errorf("Expected next task after down, got %+v", task)
	}

	// Bottom edge clamps
	updated, _ = m.Update(keyRune('j'))
	m = updated.(Model)
	if m.row != 1 {
		t.Errorf("Expected row to clamp at last task, got %d", m.row)
	}

	// Arrow keys work as alternates
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.row != 0 {
		t.Errorf("Expected row 0 after up arrow, got %d", m.row)
	}
}

func TestModelDetailOverlay(t *testing.T) {
	db, m := newTestModel(t)
	testutil.CreateTestTask(t, db, "Inspect me", "TODO")

	m = loadModel(t, m)

	// Open the overlay for the selected task
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("Expected a detail load command")
	}
	msg := cmd()
	if _, ok := msg.(detailMsg); !ok {
		t.Fatalf("Expected detail message, got %T", msg)
	}
	updated, _ = m.Update(msg)
	m = updated.(Model)
	if m.detail == nil {
		t.Fatal("Expected detail overlay to be open")
	}

	view := m.View()
	if !strings.Contains(view, "Inspect me") {
		t.Errorf("Expected task title in overlay, got: %s", view)
	}
	if !strings.Contains(view, "esc to close") {
		t.Errorf("Expected close hint in overlay, got: %s", view)
	}

	// Navigation keys are swallowed while the overlay is open
	updated, _ = m.Update(keyRune('l'))
	m = updated.(Model)
	if m.col != 0 {
		t.Errorf("Expected column unchanged behind overlay, got %d", m.col)
	}

	// Esc closes it
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.detail != nil {
		t.Error("Expected overlay to close on esc")
	}
}

func TestModelDetailOnEmptyColumnIsNoOp(t *testing.T) {
	_, m := newTestModel(t)
	m = loadModel(t, m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Expected no detail command for an empty column")
	}
}

func TestModelRefreshReloads(t *testing.T) {
	db, m := newTestModel(t)
	m = loadModel(t, m)

	// A task created behind the model's back appears after refresh
	testutil.CreateTestTask(t, db, "Late arrival", "TODO")

	updated, cmd := m.Update(keyRune('r'))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("Expected a reload command")
	}
	updated, _ = m.Update(cmd())
	m = updated.(Model)

	if len(m.byStatus["TODO"]) != 1 {
		t.Errorf("Expected refreshed board to include new task, got %v", m.byStatus)
	}
}

func TestModelQuit(t *testing.T) {
	_, m := newTestModel(t)
	m = loadModel(t, m)

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected quit message")
	}
}
