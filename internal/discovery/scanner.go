package discovery

import (
	"io/fs"
	"os"
	"path/filepath"

	"fsrun/internal/domain"
)

// Scanner finds the test files of a test directory
type Scanner struct {
	filter *Filter
}

// NewScanner creates a new Scanner selecting files with the given filter
func NewScanner(filter *Filter) *Scanner {
	return &Scanner{filter: filter}
}

// Scan returns the matching files directly inside dir, sorted by name.
// Subdirectories are neither returned nor descended into.
func (s *Scanner) Scan(dir string) ([]domain.TestFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.DiscoveryError{Dir: dir, Err: err}
	}

	var testFiles []domain.TestFile
	for _, entry := range entries {
		if !s.filter.Match(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if isDir(entry, path) {
			continue
		}
		testFiles = append(testFiles, domain.TestFile{Path: path, Name: entry.Name()})
	}

	if len(testFiles) == 0 {
		return nil, &domain.DiscoveryError{Dir: dir}
	}
	return testFiles, nil
}

// isDir follows symlinks so that a link to a directory is skipped as well
func isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
