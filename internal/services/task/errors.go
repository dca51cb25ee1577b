package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrUnknownStatus = errors.New("unknown status")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")

	// Dependency link errors
	ErrSelfLink      = errors.New("cannot link a task to itself")
	ErrCircularLink  = errors.New("link would create a circular dependency")
	ErrDuplicateLink = errors.New("link already exists")
	ErrLinkNotFound  = errors.New("link not found")
)
