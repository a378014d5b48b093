package discovery

import (
	"testing"
)

func TestFilter_Match(t *testing.T) {
	filter := NewFilter("*.t")

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "plain test file", path: "union.t", expected: true},
		{name: "full path", path: "/srv/tests/union.t", expected: true},
		{name: "other extension", path: "union.txt", expected: false},
		{name: "suffix inside name", path: "union.t.bak", expected: false},
		{name: "hidden file", path: ".union.t", expected: false},
		{name: "bare suffix", path: ".t", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Match(tt.path); got != tt.expected {
				t.Errorf("Match(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFilter_MalformedPattern(t *testing.T) {
	filter := NewFilter("[")
	if filter.Match("union.t") {
		t.Error("malformed pattern should match nothing")
	}
}
