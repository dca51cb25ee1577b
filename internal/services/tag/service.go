package tag

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/avelar/tarea/internal/database"
	"github.com/avelar/tarea/internal/models"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service defines all tag-related business operations. Tags are addressed by
// name everywhere; names are unique.
type Service interface {
	// Read operations
	ListTags(ctx context.Context) ([]*models.Tag, error)
	GetTag(ctx context.Context, name string) (*models.Tag, error)
	GetTagsForTask(ctx context.Context, taskID int) ([]*models.Tag, error)

	// Write operations
	CreateTag(ctx context.Context, req CreateTagRequest) (*models.Tag, error)
	UpdateTag(ctx context.Context, req UpdateTagRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, name string) error

	// Task assignment
	AssignTag(ctx context.Context, taskID int, name string) error
	RemoveTag(ctx context.Context, taskID int, name string) error
}

// CreateTagRequest encapsulates data for creating a tag
type CreateTagRequest struct {
	Name  string
	Color string // optional hex color like #FF5733; empty means no color
}

// UpdateTagRequest encapsulates data for updating a tag, addressed by its
// current name. Nil fields are left unchanged; an empty *Color clears the
// color.
type UpdateTagRequest struct {
	Name    string
	NewName *string
	Color   *string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new tag service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// ListTags retrieves all tags ordered by name.
func (s *service) ListTags(ctx context.Context) ([]*models.Tag, error) {
	tags, err := s.repo.GetAllTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// GetTag retrieves a single tag by name.
func (s *service) GetTag(ctx context.Context, name string) (*models.Tag, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	tag, err := s.repo.GetTagByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tag %q: %w", name, ErrTagNotFound)
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

// GetTagsForTask retrieves all tags assigned to a task.
func (s *service) GetTagsForTask(ctx context.Context, taskID int) ([]*models.Tag, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if err := s.checkTaskExists(ctx, taskID); err != nil {
		return nil, err
	}

	tags, err := s.repo.GetTagsForTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags for task: %w", err)
	}
	return tags, nil
}

// CreateTag creates a new tag with validation. Creating a name that already
// exists is rejected rather than silently reused.
func (s *service) CreateTag(ctx context.Context, req CreateTagRequest) (*models.Tag, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := validateColor(req.Color); err != nil {
		return nil, err
	}

	_, err := s.repo.GetTagByName(ctx, req.Name)
	if err == nil {
		return nil, fmt.Errorf("tag %q: %w", req.Name, ErrDuplicateTag)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check tag: %w", err)
	}

	tag, err := s.repo.CreateTag(ctx, req.Name, req.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// UpdateTag renames and/or recolors an existing tag.
func (s *service) UpdateTag(ctx context.Context, req UpdateTagRequest) (*models.Tag, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if req.NewName != nil {
		if err := validateName(*req.NewName); err != nil {
			return nil, err
		}
	}
	if req.Color != nil && *req.Color != "" {
		if err := validateColor(*req.Color); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.GetTagByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tag %q: %w", req.Name, ErrTagNotFound)
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	name := existing.Name
	if req.NewName != nil && *req.NewName != existing.Name {
		name = *req.NewName
		// Renames must not collide with another tag
		if _, err := s.repo.GetTagByName(ctx, name); err == nil {
			return nil, fmt.Errorf("tag %q: %w", name, ErrDuplicateTag)
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to check tag: %w", err)
		}
	}

	color := existing.Color
	if req.Color != nil {
		color = *req.Color
	}

	if err := s.repo.UpdateTag(ctx, existing.ID, name, color); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	return &models.Tag{ID: existing.ID, Name: name, Color: color}, nil
}

// DeleteTag removes a tag by name; its task assignments go with it.
func (s *service) DeleteTag(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	existing, err := s.repo.GetTagByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("tag %q: %w", name, ErrTagNotFound)
		}
		return fmt.Errorf("failed to get tag: %w", err)
	}

	if err := s.repo.DeleteTag(ctx, existing.ID); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// AssignTag attaches the named tag to a task, creating the tag on the fly if
// it doesn't exist yet. Re-assigning is a no-op.
func (s *service) AssignTag(ctx context.Context, taskID int, name string) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.checkTaskExists(ctx, taskID); err != nil {
		return err
	}

	if err := s.repo.AssignTagByName(ctx, taskID, name); err != nil {
		return fmt.Errorf("failed to assign tag: %w", err)
	}
	return nil
}

// RemoveTag detaches the named tag from a task. The tag itself survives;
// removing a tag that isn't assigned is a no-op.
func (s *service) RemoveTag(ctx context.Context, taskID int, name string) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.checkTaskExists(ctx, taskID); err != nil {
		return err
	}

	existing, err := s.repo.GetTagByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("tag %q: %w", name, ErrTagNotFound)
		}
		return fmt.Errorf("failed to get tag: %w", err)
	}

	if err := s.repo.RemoveTagFromTask(ctx, taskID, existing.ID); err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}
	return nil
}

func (s *service) checkTaskExists(ctx context.Context, taskID int) error {
	exists, err := s.repo.TaskExists(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return fmt.Errorf("task %d: %w", taskID, ErrTaskNotFound)
	}
	return nil
}

// validateName enforces the tag name rules.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if len(name) > 50 {
		return ErrNameTooLong
	}
	return nil
}

// validateColor accepts an empty color or a six-digit hex code.
func validateColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return ErrInvalidColor
	}
	return nil
}
