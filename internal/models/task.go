package models

import "time"

// Task represents a single tracked unit of work
type Task struct {
	ID          int
	Title       string
	Description string
	Status      string // references statuses.name
	Tags        []*Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetID implements the ID accessor the CLI formatter uses for quiet output
func (t *Task) GetID() int { return t.ID }

// TaskReference is a lightweight reference to a linked task
// Used for displaying dependency relationships without loading full task details
type TaskReference struct {
	ID       int
	Title    string
	Status   string
	LinkType string
}

// TaskDetail is a DTO for the full task view
// Contains all task information including description, tags and both link directions
type TaskDetail struct {
	ID          int
	Title       string
	Description string
	Status      string
	Tags        []*Tag
	DependsOn   []*TaskReference // tasks this task depends on (prerequisites)
	RequiredBy  []*TaskReference // tasks that depend on this task
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetID implements the ID accessor the CLI formatter uses for quiet output
func (t *TaskDetail) GetID() int { return t.ID }

// TaskFilters narrows task queries. Zero value matches everything.
// Multiple dimensions combine with AND; multiple tags require the task
// to carry every one of them.
type TaskFilters struct {
	Statuses      []string
	Tags          []string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
}

// Empty reports whether no filter dimension is set.
func (f TaskFilters) Empty() bool {
	return len(f.Statuses) == 0 && len(f.Tags) == 0 &&
		f.CreatedAfter == nil && f.CreatedBefore == nil &&
		f.UpdatedAfter == nil && f.UpdatedBefore == nil
}
