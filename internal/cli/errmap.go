package cli

import (
	"errors"

	tagservice "github.com/avelar/tarea/internal/services/tag"
	taskservice "github.com/avelar/tarea/internal/services/task"
)

// CodeForError maps service-layer sentinel errors onto exit codes so every
// command classifies failures the same way. Unknown errors are treated as
// general failures (storage, I/O).
func CodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, taskservice.ErrTaskNotFound),
		errors.Is(err, taskservice.ErrLinkNotFound),
		errors.Is(err, tagservice.ErrTaskNotFound),
		errors.Is(err, tagservice.ErrTagNotFound):
		return ExitNotFound
	case errors.Is(err, taskservice.ErrSelfLink),
		errors.Is(err, taskservice.ErrCircularLink),
		errors.Is(err, taskservice.ErrDuplicateLink),
		errors.Is(err, tagservice.ErrDuplicateTag):
		return ExitConflict
	case errors.Is(err, taskservice.ErrEmptyTitle),
		errors.Is(err, taskservice.ErrTitleTooLong),
		errors.Is(err, taskservice.ErrInvalidTaskID),
		errors.Is(err, taskservice.ErrUnknownStatus),
		errors.Is(err, tagservice.ErrEmptyName),
		errors.Is(err, tagservice.ErrNameTooLong),
		errors.Is(err, tagservice.ErrInvalidColor),
		errors.Is(err, tagservice.ErrInvalidTaskID):
		return ExitValidation
	default:
		return ExitError
	}
}
