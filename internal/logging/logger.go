package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFile is where the TUI logs, since the terminal belongs to the UI
const DefaultFile = "slidex.log"

// New creates a logger writing to w and installs it as the package default
func New(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "slidex",
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	log.SetDefault(logger)
	return logger
}

// OpenFile creates a logger appending to path. The returned close func is
// always safe to call. When the file cannot be opened the logger falls back
// to stderr.
func OpenFile(path string, debug bool) (*log.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return New(os.Stderr, debug), func() error { return nil }, fmt.Errorf("could not open log file: %w", err)
	}
	return New(f, debug), f.Close, nil
}

// NewNop returns a logger that discards everything
func NewNop() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
