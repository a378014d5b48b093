package discovery

import (
	"path/filepath"
	"strings"
)

// Filter selects test files by base-name pattern
type Filter struct {
	pattern string
}

// NewFilter creates a new Filter for a filepath.Match pattern such as "*.t"
func NewFilter(pattern string) *Filter {
	return &Filter{pattern: pattern}
}

// Match reports whether the base name of path matches the pattern.
// Hidden files never match, the same way a shell glob skips them.
// A malformed pattern matches nothing.
func (f *Filter) Match(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	matched, err := filepath.Match(f.pattern, name)
	return err == nil && matched
}
