package domain

import "errors"

const (
	// ExitSuccess is returned when every resolved task completed.
	ExitSuccess = 0
	// ExitAborted is returned for task-not-found and rakefile-not-found failures.
	ExitAborted = -1
	// ExitFatal is returned for every other fatal error.
	ExitFatal = 1
)

// ExitError attaches the process exit code a failure must terminate with.
type ExitError struct {
	Code int
	Err  error
}

// NewExitError wraps err with the given exit code.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the application to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrRakefileNotFound) {
		return ExitAborted
	}

	return ExitFatal
}

// Message returns the empty string: ExitError adds no message of its own to
// the cause chain.
func (e *ExitError) Message() string {
	return ""
}
