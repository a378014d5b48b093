package execution

import (
	"context"
	"errors"
	"os/exec"
)

// ProcessResult is the outcome of a process that was started
type ProcessResult struct {
	ExitCode int    // -1 when the process was killed by a signal
	Output   []byte // Combined stdout and stderr
}

// Success reports whether the process exited with status 0
func (r ProcessResult) Success() bool {
	return r.ExitCode == 0
}

// ProcessRunner runs external processes to completion
type ProcessRunner interface {
	// Run blocks until the process exits. A non-zero exit status is reported
	// through ProcessResult; err is only set when the process could not be
	// started or waited for.
	Run(ctx context.Context, cmd Command) (ProcessResult, error)
}

// ExecRunner runs processes with os/exec
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes cmd and captures its combined output
func (r *ExecRunner) Run(ctx context.Context, c Command) (ProcessResult, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir

	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ProcessResult{ExitCode: exitErr.ExitCode(), Output: output}, nil
	}
	if err != nil {
		return ProcessResult{ExitCode: -1, Output: output}, err
	}
	return ProcessResult{Output: output}, nil
}
