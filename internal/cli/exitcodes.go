package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, I/O errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, tag not found, link not found, or any
	// case where a resource ID or name doesn't exist.
	ExitNotFound = 3

	// ExitConflict indicates the request contradicts existing state.
	// Use for: Duplicate tags or links, self-links, and links that
	// would create a circular dependency.
	ExitConflict = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid status names, malformed colors,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// exitError carries a process exit code alongside the underlying error.
// Commands return it instead of calling os.Exit inside RunE so deferred
// cleanup (database close) still runs; main unwraps the code after Execute.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Exit wraps err with the exit code the process should terminate with.
func Exit(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode extracts the exit code from err. Command handlers wrap every
// error with Exit, so an unwrapped error escaping Execute can only come
// from cobra itself (unknown flag, missing required flag, bad argument)
// and is reported as incorrect usage.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *exitError
	if errors.As(err, &coded) {
		return coded.code
	}
	return ExitUsage
}

// Reported reports whether the command that returned err already printed it.
// Errors that never passed through Exit (cobra's own flag and argument
// failures) still need printing before the process exits.
func Reported(err error) bool {
	var coded *exitError
	return errors.As(err, &coded)
}
