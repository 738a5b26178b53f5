package build

import (
	"errors"
	"fmt"
)

var (
	// ErrOutsideWorkspace indicates a stub path that is not under the
	// resolved root directory (a sibling folder whose name starts with the
	// root's name does not count) or lacks the resolved extension.
	ErrOutsideWorkspace = errors.New("stub is outside the workspace")

	// ErrTimeout indicates the compiler did not finish in time.
	ErrTimeout = errors.New("build timed out")
)

// ProcessError is returned when the compiler exits unsuccessfully.
// Its message is the compiler output, verbatim, so callers can show the
// actionable diagnostics directly.
type ProcessError struct {
	Command  string
	ExitCode int // -1 when the process could not be started
	Output   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Output != "" {
		return e.Output
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
