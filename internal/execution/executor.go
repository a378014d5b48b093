package execution

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"fsrun/internal/config"
	"fsrun/internal/domain"
)

// Executor runs single test cases against the tool under test
type Executor struct {
	runner     ProcessRunner
	comparator Comparator
	toolPath   string
	scratch    string
	dir        string
	logger     *slog.Logger
}

// NewExecutor creates a new Executor for the tool and directories in cfg
func NewExecutor(cfg *config.Config, runner ProcessRunner, comparator Comparator, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		runner:     runner,
		comparator: comparator,
		toolPath:   cfg.ExecutablePath,
		scratch:    cfg.ScratchPath,
		dir:        cfg.TestDir,
		logger:     logger,
	}
}

// ToolCommand builds the invocation of the tool under test for tc. The
// expression is always a single argument.
func (e *Executor) ToolCommand(tc domain.TestCase) Command {
	return Command{
		Path: e.toolPath,
		Args: []string{"-max", strconv.Itoa(config.MaxID), "-o", e.scratch, tc.Expression},
		Dir:  e.dir,
	}
}

// Run invokes the tool for tc and, once it has exited, compares the scratch
// file with the expected result. The returned error is a *domain.CaseError.
//
// The scratch file is removed first, so a tool that exits 0 without writing
// it fails the comparison instead of matching an earlier case's output.
func (e *Executor) Run(ctx context.Context, tc domain.TestCase) error {
	if err := os.Remove(e.scratch); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &domain.CaseError{
			Kind: domain.Invocation,
			Case: tc,
			Err:  fmt.Errorf("failed to clear output file: %w", err),
		}
	}

	cmd := e.ToolCommand(tc)
	e.logger.Debug("invoking tool", "file", tc.File, "line", tc.Line, "command", cmd.String())

	res, err := e.runner.Run(ctx, cmd)
	if err == nil && !res.Success() {
		err = fmt.Errorf("exit status %d", res.ExitCode)
	}
	if err != nil {
		return &domain.CaseError{Kind: domain.Invocation, Case: tc, Output: res.Output, Err: err}
	}

	expected := e.resolve(tc.ExpectedResultPath)
	same, err := e.comparator.Equal(ctx, expected, e.scratch)
	if err != nil || !same {
		return &domain.CaseError{
			Kind:         domain.Mismatch,
			Case:         tc,
			ExpectedFile: expected,
			ActualFile:   e.scratch,
			Err:          err,
		}
	}

	e.logger.Debug("case passed", "file", tc.File, "line", tc.Line, "expected", tc.ExpectedResultPath)
	return nil
}

func (e *Executor) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.dir, path)
}
