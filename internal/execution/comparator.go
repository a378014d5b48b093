package execution

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"fsrun/internal/config"
)

// Comparator decides whether two files hold the same bytes
type Comparator interface {
	Equal(ctx context.Context, expectedPath, actualPath string) (bool, error)
}

// NewComparator picks the comparator for a config.Compare* mode. Auto mode
// uses cmp(1) when it is on PATH and compares in process otherwise.
func NewComparator(mode string, runner ProcessRunner) (Comparator, error) {
	switch mode {
	case config.CompareBytes:
		return BytesComparator{}, nil
	case config.CompareCmp:
		path, err := exec.LookPath("cmp")
		if err != nil {
			return nil, fmt.Errorf("comparison mode %q: %w", mode, err)
		}
		return NewCmpComparator(runner, path), nil
	case config.CompareAuto, "":
		if path, err := exec.LookPath("cmp"); err == nil {
			return NewCmpComparator(runner, path), nil
		}
		return BytesComparator{}, nil
	default:
		return nil, fmt.Errorf("unknown comparison mode %q", mode)
	}
}

// CmpComparator runs cmp(1) in silent mode
type CmpComparator struct {
	runner ProcessRunner
	path   string
}

// NewCmpComparator creates a comparator running the cmp binary at path
func NewCmpComparator(runner ProcessRunner, path string) *CmpComparator {
	return &CmpComparator{runner: runner, path: path}
}

// Equal runs `cmp -s expected actual`. Status 1 means the files differ;
// any other non-zero status means cmp itself failed.
func (c *CmpComparator) Equal(ctx context.Context, expectedPath, actualPath string) (bool, error) {
	res, err := c.runner.Run(ctx, Command{Path: c.path, Args: []string{"-s", expectedPath, actualPath}})
	if err != nil {
		return false, fmt.Errorf("run cmp: %w", err)
	}
	switch res.ExitCode {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, fmt.Errorf("cmp exited with status %d: %s", res.ExitCode, bytes.TrimSpace(res.Output))
	}
}

// BytesComparator compares file contents in process
type BytesComparator struct{}

// Equal reads both files and compares them byte for byte
func (BytesComparator) Equal(_ context.Context, expectedPath, actualPath string) (bool, error) {
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return false, err
	}
	actual, err := os.ReadFile(actualPath)
	if err != nil {
		return false, err
	}
	return bytes.Equal(expected, actual), nil
}
