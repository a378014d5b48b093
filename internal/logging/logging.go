package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"fsrun/internal/config"
)

// Options selects the handler used for run logs.
type Options struct {
	Verbose bool
	Format  string
	RunID   string
}

// New returns the run logger. Logs are discarded unless Verbose is set, so a
// quiet run prints nothing but diagnostics.
func New(w io.Writer, opts Options) *slog.Logger {
	if !opts.Verbose {
		return slog.New(slog.DiscardHandler)
	}

	handlerOpts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var handler slog.Handler
	switch opts.Format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	logger := slog.New(handler)
	if opts.RunID != "" {
		logger = logger.With("run", opts.RunID)
	}
	return logger
}

// NewRunID returns a fresh id for correlating the lines of one run.
func NewRunID() string {
	return uuid.NewString()
}
