package cli

import (
	"errors"
	"fmt"
)

// Exit codes returned by the fsrun binary.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitError asks main to exit with Code. Its diagnostic has already been
// printed, so main must not print it again.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// GetExitCode maps an error returned by the root command to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
