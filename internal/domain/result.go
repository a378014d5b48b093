package domain

import "time"

// Summary describes a run that finished without failures
type Summary struct {
	Files    int           // Test files executed
	Cases    int           // Test cases that matched their expected results
	Duration time.Duration // Time taken by discovery and execution
}
