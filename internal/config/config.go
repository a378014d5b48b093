package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fsrun/internal/domain"
)

// Config holds the run configuration. It is built once by Resolve and not
// modified afterwards.
type Config struct {
	// Positional arguments, both absolute
	ExecutablePath string
	TestDir        string

	// File the tool under test writes to for every case
	ScratchPath string

	// Glob selecting test files inside TestDir
	Pattern string

	// Ambient settings
	Verbose   bool
	LogFormat string
	Compare   string
	Progress  string
}

// GetenvFunc returns the value of an environment variable, or "" when unset.
type GetenvFunc func(key string) string

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ScratchPath: filepath.Join(os.TempDir(), DefaultScratchName),
		Pattern:     TestFilePattern,
		LogFormat:   LogFormatText,
		Compare:     CompareAuto,
		Progress:    ProgressAuto,
	}
}

// Resolve builds the configuration from the positional arguments. Relative
// paths are resolved against cwd; getenv supplies the ambient settings.
func Resolve(args []string, cwd string, getenv GetenvFunc) (*Config, error) {
	if err := CheckArgs(args); err != nil {
		return nil, err
	}
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	cfg := New()
	cfg.ExecutablePath = absolute(cwd, args[0])
	cfg.TestDir = absolute(cwd, args[1])

	if v := getenv(EnvScratchFile); v != "" {
		cfg.ScratchPath = absolute(cwd, v)
	}
	cfg.Verbose = parseBool(getenv(EnvVerbose))

	var err error
	if cfg.LogFormat, err = oneOf(EnvLogFormat, getenv(EnvLogFormat), cfg.LogFormat, validLogFormats); err != nil {
		return nil, err
	}
	if cfg.Compare, err = oneOf(EnvCompare, getenv(EnvCompare), cfg.Compare, validCompare); err != nil {
		return nil, err
	}
	if cfg.Progress, err = oneOf(EnvProgress, getenv(EnvProgress), cfg.Progress, validProgress); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CheckArgs rejects anything but the two positional arguments.
func CheckArgs(args []string) error {
	if len(args) != 2 {
		return &domain.UsageError{Args: len(args)}
	}
	return nil
}

// ShowProgress reports whether the progress bar should be drawn, given
// whether stderr is a terminal.
func (c *Config) ShowProgress(interactive bool) bool {
	switch c.Progress {
	case ProgressOn:
		return true
	case ProgressOff:
		return false
	default:
		return interactive && !c.Verbose
	}
}

func absolute(cwd, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	}
	return false
}

func oneOf(key, value, fallback string, valid []string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback, nil
	}
	if !slices.Contains(valid, value) {
		return "", fmt.Errorf("invalid %s %q: must be one of %v", key, value, valid)
	}
	return value, nil
}
