package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// LineDiff returns a line oriented diff between the expected file and the
// actual output file. It is empty when both hold the same lines.
func LineDiff(expectedPath, actualPath string) (string, error) {
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return "", fmt.Errorf("failed to read expected results: %w", err)
	}
	actual, err := os.ReadFile(actualPath)
	if err != nil {
		return "", fmt.Errorf("failed to read actual results: %w", err)
	}

	return cmp.Diff(strings.Split(string(expected), "\n"), strings.Split(string(actual), "\n")), nil
}
