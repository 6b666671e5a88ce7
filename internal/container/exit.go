package container

import "fmt"

// ExitCodeError propagates the exact exit status produced by a command run
// inside the container. Returning a plain error would flatten every failure
// to exit code 1; this wrapper keeps the original status while still fitting
// into our error handling.
type ExitCodeError struct {
	code int
}

// NewExitCodeError wraps a raw exit status.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}

func (e *ExitCodeError) ExitCode() int {
	return e.code
}
