package tag

import "errors"

// Tag-related errors
var (
	// Validation errors
	ErrEmptyName     = errors.New("tag name cannot be empty")
	ErrNameTooLong   = errors.New("tag name cannot exceed 50 characters")
	ErrInvalidColor  = errors.New("invalid color format (must be hex color like #FF5733)")
	ErrInvalidTaskID = errors.New("invalid task ID")

	// Business logic errors
	ErrTagNotFound  = errors.New("tag not found")
	ErrTaskNotFound = errors.New("task not found")
	ErrDuplicateTag = errors.New("tag already exists")
)
