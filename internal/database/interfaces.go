// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/avelar/tarea/internal/models"
)

// TaskStore covers task CRUD and filtered listing.
type TaskStore interface {
	CreateTask(ctx context.Context, title, description, status string) (*models.Task, error)
	CreateTaskWithTags(ctx context.Context, title, description, status string, tagNames []string) (*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	TaskExists(ctx context.Context, id int) (bool, error)
	ListTasks(ctx context.Context, filters models.TaskFilters) ([]*models.Task, error)
	UpdateTask(ctx context.Context, id int, title, description, status string) error
	UpdateTaskWithTags(ctx context.Context, id int, title, description, status string, tagNames []string, replaceTags bool) error
	UpdateTaskStatus(ctx context.Context, id int, status string) error
	TouchTask(ctx context.Context, id int) error
	DeleteTask(ctx context.Context, id int) error
}

// TagStore covers tag CRUD and task-tag assignment.
type TagStore interface {
	CreateTag(ctx context.Context, name, color string) (*models.Tag, error)
	GetTagByName(ctx context.Context, name string) (*models.Tag, error)
	GetAllTags(ctx context.Context) ([]*models.Tag, error)
	UpdateTag(ctx context.Context, id int, name, color string) error
	DeleteTag(ctx context.Context, id int) error
	AddTagToTask(ctx context.Context, taskID, tagID int) error
	RemoveTagFromTask(ctx context.Context, taskID, tagID int) error
	AssignTagByName(ctx context.Context, taskID int, tagName string) error
	GetTagsForTask(ctx context.Context, taskID int) ([]*models.Tag, error)
	SetTaskTags(ctx context.Context, taskID int, tagIDs []int) error
}

// StatusStore covers the data-driven status lanes.
type StatusStore interface {
	GetAllStatuses(ctx context.Context) ([]*models.Status, error)
	StatusExists(ctx context.Context, name string) (bool, error)
	StatusNames(ctx context.Context) ([]string, error)
}

// LinkStore covers directed dependency links between tasks.
type LinkStore interface {
	CreateLink(ctx context.Context, fromTaskID, toTaskID int, linkType string) (*models.TaskLink, error)
	LinkExists(ctx context.Context, fromTaskID, toTaskID int, linkType string) (bool, error)
	DeleteLink(ctx context.Context, fromTaskID, toTaskID int, linkType string) error
	GetAllLinks(ctx context.Context) ([]*models.TaskLink, error)
	GetLinksForTask(ctx context.Context, taskID int) ([]*models.TaskLink, error)
	GetPrerequisites(ctx context.Context, taskID int) ([]*models.TaskReference, error)
	GetDependents(ctx context.Context, taskID int) ([]*models.TaskReference, error)
}

// DataStore is the unified interface the services depend on.
// It is composed of smaller, domain-specific interfaces so consumers can
// depend on just the slice they need.
type DataStore interface {
	TaskStore
	TagStore
	StatusStore
	LinkStore
}
