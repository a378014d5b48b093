package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUsage       = errors.New("usage error")
	ErrNoTestFiles = errors.New("no test files found")
	ErrNoTestCases = errors.New("no tests found")
	ErrInvocation  = errors.New("could not execute")
	ErrMismatch    = errors.New("did not match expected results")
)

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Args int
}

func (e *UsageError) Error() string {
	return "Test requires 2 args: 1) path to executable and 2) path to test dir."
}

func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// DiscoveryError reports a test directory that yielded no test files.
// Err is set when the directory itself could not be read.
type DiscoveryError struct {
	Dir string
	Err error
}

func (e *DiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Cannot read test directory %s: %v", e.Dir, e.Err)
	}
	return "No test files found in: " + e.Dir
}

func (e *DiscoveryError) Is(target error) bool { return target == ErrNoTestFiles }

func (e *DiscoveryError) Unwrap() error { return e.Err }

// EmptyTestFileError reports a test file without a single runnable line.
type EmptyTestFileError struct {
	File string
}

func (e *EmptyTestFileError) Error() string {
	return "No tests found in: " + e.File
}

func (e *EmptyTestFileError) Is(target error) bool { return target == ErrNoTestCases }

// CaseKind tells which step of a test case failed.
type CaseKind int

const (
	Invocation CaseKind = iota + 1
	Mismatch
)

func (k CaseKind) String() string {
	switch k {
	case Invocation:
		return ErrInvocation.Error()
	case Mismatch:
		return ErrMismatch.Error()
	default:
		return fmt.Sprintf("CaseKind(%d)", int(k))
	}
}

// CaseError reports the first failing test case of a run.
type CaseError struct {
	Kind CaseKind
	Case TestCase

	// Output is whatever the tool under test printed (invocation failures only).
	Output []byte

	// ExpectedFile and ActualFile are the resolved paths that were compared
	// (mismatches only).
	ExpectedFile string
	ActualFile   string

	Err error
}

func (e *CaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Case, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Case)
}

func (e *CaseError) Is(target error) bool {
	switch e.Kind {
	case Invocation:
		return target == ErrInvocation
	case Mismatch:
		return target == ErrMismatch
	}
	return false
}

func (e *CaseError) Unwrap() error { return e.Err }
