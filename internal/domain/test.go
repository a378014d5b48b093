package domain

// TestFile represents a discovered *.t file
type TestFile struct {
	Path string // Full path to the test file
	Name string // Just the filename
}

// TestCase represents one runnable line of a test file
type TestCase struct {
	ExpectedResultPath string // Golden file, relative to the test directory unless absolute
	Expression         string // Remaining tokens joined by single spaces
	File               string // Test file the case was read from
	Line               int    // 1-based line number within File
}

// String renders the case the way failure diagnostics identify it
func (tc TestCase) String() string {
	return tc.ExpectedResultPath + " != " + tc.Expression
}
