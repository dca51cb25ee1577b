package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avelar/tarea/internal/database"
	"github.com/avelar/tarea/internal/graph"
	"github.com/avelar/tarea/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	GetTaskDetail(ctx context.Context, taskID int) (*models.TaskDetail, error)
	ListTasks(ctx context.Context, filters models.TaskFilters) ([]*models.Task, error)
	ListLinks(ctx context.Context) ([]*models.TaskLink, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	ChangeStatus(ctx context.Context, taskID int, status string) error
	DeleteTask(ctx context.Context, taskID int) error

	// Dependency links (from depends on to)
	LinkTasks(ctx context.Context, fromID, toID int) error
	UnlinkTasks(ctx context.Context, fromID, toID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      string   // empty means "TODO"
	Tags        []string // tag names; missing tags are created implicitly
}

// UpdateTaskRequest encapsulates all data needed to update a task.
// Fields with pointers are optional - nil means don't update.
// A nil Tags slice leaves the tag set alone; a non-nil slice replaces it.
type UpdateTaskRequest struct {
	TaskID      int
	Title       *string
	Description *string
	Status      *string
	Tags        []string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new task service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CreateTask handles task creation with validation and business rules.
// The insert and any tag assignments happen in one transaction.
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "TODO"
	}
	if err := s.checkStatus(ctx, status); err != nil {
		return nil, err
	}

	task, err := s.repo.CreateTaskWithTags(ctx, req.Title, req.Description, status, cleanTagNames(req.Tags))
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask handles partial task updates. Unset fields keep their current
// values; a non-nil tag list replaces the whole tag set. The update runs in
// one transaction and returns the task as stored afterwards.
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := s.checkStatus(ctx, *req.Status); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.GetTaskByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", req.TaskID, ErrTaskNotFound)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	title := existing.Title
	if req.Title != nil {
		title = *req.Title
	}
	description := existing.Description
	if req.Description != nil {
		description = *req.Description
	}
	status := existing.Status
	if req.Status != nil {
		status = *req.Status
	}

	err = s.repo.UpdateTaskWithTags(ctx, req.TaskID, title, description, status,
		cleanTagNames(req.Tags), req.Tags != nil)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.repo.GetTaskByID(ctx, req.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return updated, nil
}

// ChangeStatus moves a task to another lane.
func (s *service) ChangeStatus(ctx context.Context, taskID int, status string) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if err := s.checkStatus(ctx, status); err != nil {
		return err
	}

	if err := s.repo.UpdateTaskStatus(ctx, taskID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("task %d: %w", taskID, ErrTaskNotFound)
		}
		return fmt.Errorf("failed to change status: %w", err)
	}
	return nil
}

// DeleteTask removes a task; its tag assignments and links go with it.
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("task %d: %w", taskID, ErrTaskNotFound)
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// GetTask retrieves a single task with its tags.
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", taskID, ErrTaskNotFound)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetTaskDetail retrieves a task together with both directions of its
// dependency links.
func (s *service) GetTaskDetail(ctx context.Context, taskID int) (*models.TaskDetail, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	dependsOn, err := s.repo.GetPrerequisites(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get prerequisites: %w", err)
	}
	requiredBy, err := s.repo.GetDependents(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dependents: %w", err)
	}

	return &models.TaskDetail{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Tags:        task.Tags,
		DependsOn:   dependsOn,
		RequiredBy:  requiredBy,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}, nil
}

// ListTasks retrieves tasks matching the filters. Filter statuses are
// validated so a typo fails loudly instead of matching nothing.
func (s *service) ListTasks(ctx context.Context, filters models.TaskFilters) ([]*models.Task, error) {
	for _, status := range filters.Statuses {
		if err := s.checkStatus(ctx, status); err != nil {
			return nil, err
		}
	}

	tasks, err := s.repo.ListTasks(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListLinks retrieves the full dependency edge set.
func (s *service) ListLinks(ctx context.Context) ([]*models.TaskLink, error) {
	links, err := s.repo.GetAllLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// LinkTasks records that fromID depends on toID. The edge is rejected if
// either endpoint is missing, if it's a self-link or a duplicate, or if it
// would close a dependency cycle.
func (s *service) LinkTasks(ctx context.Context, fromID, toID int) error {
	if fromID <= 0 || toID <= 0 {
		return ErrInvalidTaskID
	}
	if fromID == toID {
		return ErrSelfLink
	}

	if err := s.checkTasksExist(ctx, fromID, toID); err != nil {
		return err
	}

	exists, err := s.repo.LinkExists(ctx, fromID, toID, models.LinkTypeDependency)
	if err != nil {
		return fmt.Errorf("failed to check link: %w", err)
	}
	if exists {
		return ErrDuplicateLink
	}

	links, err := s.repo.GetAllLinks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load links: %w", err)
	}
	if graph.WouldCreateCycle(linkEdges(links), fromID, toID) {
		return ErrCircularLink
	}

	if _, err := s.repo.CreateLink(ctx, fromID, toID, models.LinkTypeDependency); err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// UnlinkTasks removes the dependency edge from fromID to toID.
func (s *service) UnlinkTasks(ctx context.Context, fromID, toID int) error {
	if fromID <= 0 || toID <= 0 {
		return ErrInvalidTaskID
	}

	err := s.repo.DeleteLink(ctx, fromID, toID, models.LinkTypeDependency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("link %d -> %d: %w", fromID, toID, ErrLinkNotFound)
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

// checkStatus validates a status name against the lanes defined in the
// database; the error message lists the valid set.
func (s *service) checkStatus(ctx context.Context, status string) error {
	exists, err := s.repo.StatusExists(ctx, status)
	if err != nil {
		return fmt.Errorf("failed to check status: %w", err)
	}
	if !exists {
		names, err := s.repo.StatusNames(ctx)
		if err != nil {
			return fmt.Errorf("failed to load statuses: %w", err)
		}
		return fmt.Errorf("%w %q (valid statuses: %s)",
			ErrUnknownStatus, status, strings.Join(names, ", "))
	}
	return nil
}

// checkTasksExist verifies both link endpoints, reporting every missing id.
func (s *service) checkTasksExist(ctx context.Context, ids ...int) error {
	var missing []string
	for _, id := range ids {
		exists, err := s.repo.TaskExists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check task %d: %w", id, err)
		}
		if !exists {
			missing = append(missing, strconv.Itoa(id))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unknown task(s) %s: %w", strings.Join(missing, ", "), ErrTaskNotFound)
	}
	return nil
}

// validateTitle enforces the title rules shared by create and update.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > 255 {
		return ErrTitleTooLong
	}
	return nil
}

// cleanTagNames trims whitespace and drops empty names.
func cleanTagNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			cleaned = append(cleaned, name)
		}
	}
	return cleaned
}

// linkEdges converts stored links into graph edges.
func linkEdges(links []*models.TaskLink) []graph.Edge {
	edges := make([]graph.Edge, 0, len(links))
	for _, link := range links {
		edges = append(edges, graph.Edge{From: link.FromTaskID, To: link.ToTaskID})
	}
	return edges
}
