package config

const (
	// MaxID is the -max value handed to the tool under test
	MaxID = 20
	// TestFilePattern selects test files inside the test directory
	TestFilePattern = "*.t"
	// DefaultScratchName is the scratch file name under the system temp directory
	DefaultScratchName = "result.txt"
	// DefaultEnvFile is read from the invocation directory when present
	DefaultEnvFile = ".env"
)

// Environment variables read by Resolve
const (
	EnvScratchFile = "FSRUN_SCRATCH_FILE"
	EnvVerbose     = "FSRUN_VERBOSE"
	EnvLogFormat   = "FSRUN_LOG_FORMAT"
	EnvCompare     = "FSRUN_COMPARE"
	EnvProgress    = "FSRUN_PROGRESS"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Comparison modes. CompareAuto uses cmp(1) when it is on PATH.
const (
	CompareAuto  = "auto"
	CompareCmp   = "cmp"
	CompareBytes = "bytes"
)

// Progress modes. ProgressAuto shows the bar only on an interactive stderr.
const (
	ProgressAuto = "auto"
	ProgressOn   = "on"
	ProgressOff  = "off"
)

var (
	validLogFormats = []string{LogFormatText, LogFormatJSON}
	validCompare    = []string{CompareAuto, CompareCmp, CompareBytes}
	validProgress   = []string{ProgressAuto, ProgressOn, ProgressOff}
)
