package app

import (
	"github.com/avelar/tarea/internal/database"
	statusservice "github.com/avelar/tarea/internal/services/status"
	tagservice "github.com/avelar/tarea/internal/services/tag"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	TaskService   taskservice.Service
	TagService    tagservice.Service
	StatusService statusservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore) *App {
	return &App{
		repo:          repo,
		TaskService:   taskservice.NewService(repo),
		TagService:    tagservice.NewService(repo),
		StatusService: statusservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
// Renderers and the TUI read through services; tests seed through this.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// The database handle is owned by the caller that opened it.
func (a *App) Close() error {
	return nil
}
