package database

import (
	"context"
	"database/sql"

	"github.com/avelar/tarea/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*TagRepo
	*StatusRepo
	*LinkRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaskRepo:   &TaskRepo{db: db},
		TagRepo:    &TagRepo{db: db},
		StatusRepo: &StatusRepo{db: db},
		LinkRepo:   &LinkRepo{db: db},
	}
}

// Wrapper methods for TaskRepo to give the store a flat, readable surface

func (r *Repository) CreateTask(ctx context.Context, title, description, status string) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, title, description, status)
}

func (r *Repository) CreateTaskWithTags(ctx context.Context, title, description, status string, tagNames []string) (*models.Task, error) {
	return r.TaskRepo.CreateWithTags(ctx, title, description, status, tagNames)
}

func (r *Repository) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) TaskExists(ctx context.Context, id int) (bool, error) {
	return r.TaskRepo.Exists(ctx, id)
}

func (r *Repository) ListTasks(ctx context.Context, filters models.TaskFilters) ([]*models.Task, error) {
	return r.TaskRepo.List(ctx, filters)
}

func (r *Repository) UpdateTask(ctx context.Context, id int, title, description, status string) error {
	return r.TaskRepo.Update(ctx, id, title, description, status)
}

func (r *Repository) UpdateTaskWithTags(ctx context.Context, id int, title, description, status string, tagNames []string, replaceTags bool) error {
	return r.TaskRepo.UpdateWithTags(ctx, id, title, description, status, tagNames, replaceTags)
}

func (r *Repository) UpdateTaskStatus(ctx context.Context, id int, status string) error {
	return r.TaskRepo.UpdateStatus(ctx, id, status)
}

func (r *Repository) TouchTask(ctx context.Context, id int) error {
	return r.TaskRepo.Touch(ctx, id)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) error {
	return r.TaskRepo.Delete(ctx, id)
}

// Wrapper methods for TagRepo

func (r *Repository) CreateTag(ctx context.Context, name, color string) (*models.Tag, error) {
	return r.TagRepo.Create(ctx, name, color)
}

func (r *Repository) GetTagByName(ctx context.Context, name string) (*models.Tag, error) {
	return r.TagRepo.GetByName(ctx, name)
}

func (r *Repository) GetAllTags(ctx context.Context) ([]*models.Tag, error) {
	return r.TagRepo.GetAll(ctx)
}

func (r *Repository) UpdateTag(ctx context.Context, id int, name, color string) error {
	return r.TagRepo.Update(ctx, id, name, color)
}

func (r *Repository) DeleteTag(ctx context.Context, id int) error {
	return r.TagRepo.Delete(ctx, id)
}

func (r *Repository) AddTagToTask(ctx context.Context, taskID, tagID int) error {
	return r.TagRepo.AddToTask(ctx, taskID, tagID)
}

func (r *Repository) RemoveTagFromTask(ctx context.Context, taskID, tagID int) error {
	return r.TagRepo.RemoveFromTask(ctx, taskID, tagID)
}

func (r *Repository) AssignTagByName(ctx context.Context, taskID int, tagName string) error {
	return r.TagRepo.AssignByName(ctx, taskID, tagName)
}

func (r *Repository) GetTagsForTask(ctx context.Context, taskID int) ([]*models.Tag, error) {
	return r.TagRepo.GetForTask(ctx, taskID)
}

func (r *Repository) SetTaskTags(ctx context.Context, taskID int, tagIDs []int) error {
	return r.TagRepo.SetForTask(ctx, taskID, tagIDs)
}

// Wrapper methods for StatusRepo

func (r *Repository) GetAllStatuses(ctx context.Context) ([]*models.Status, error) {
	return r.StatusRepo.GetAll(ctx)
}

func (r *Repository) StatusExists(ctx context.Context, name string) (bool, error) {
	return r.StatusRepo.Exists(ctx, name)
}

func (r *Repository) StatusNames(ctx context.Context) ([]string, error) {
	return r.StatusRepo.Names(ctx)
}

// Wrapper methods for LinkRepo

func (r *Repository) CreateLink(ctx context.Context, fromTaskID, toTaskID int, linkType string) (*models.TaskLink, error) {
	return r.LinkRepo.Create(ctx, fromTaskID, toTaskID, linkType)
}

func (r *Repository) LinkExists(ctx context.Context, fromTaskID, toTaskID int, linkType string) (bool, error) {
	return r.LinkRepo.Exists(ctx, fromTaskID, toTaskID, linkType)
}

func (r *Repository) DeleteLink(ctx context.Context, fromTaskID, toTaskID int, linkType string) error {
	return r.LinkRepo.Delete(ctx, fromTaskID, toTaskID, linkType)
}

func (r *Repository) GetAllLinks(ctx context.Context) ([]*models.TaskLink, error) {
	return r.LinkRepo.GetAll(ctx)
}

func (r *Repository) GetLinksForTask(ctx context.Context, taskID int) ([]*models.TaskLink, error) {
	return r.LinkRepo.GetForTask(ctx, taskID)
}

func (r *Repository) GetPrerequisites(ctx context.Context, taskID int) ([]*models.TaskReference, error) {
	return r.LinkRepo.GetPrerequisites(ctx, taskID)
}

func (r *Repository) GetDependents(ctx context.Context, taskID int) ([]*models.TaskReference, error) {
	return r.LinkRepo.GetDependents(ctx, taskID)
}
