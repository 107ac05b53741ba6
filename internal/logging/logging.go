// Package logging builds the charmbracelet/log loggers SkyHop uses.
// Local play owns the terminal, so it logs to a rotating file; the SSH
// server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/skyhop/internal/config"
)

// Prefix tags every SkyHop log line.
const Prefix = "skyhop"

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 7
)

// ParseLevel maps a level name to a log level. An empty name is info.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

// NewConsole returns a timestamped logger writing to w.
func NewConsole(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// NewFile returns a logger writing to a size-rotated file at path, and the
// closer for that file.
func NewFile(path string, level log.Level) (*log.Logger, io.Closer, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	logger := log.NewWithOptions(sink, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
		Formatter:       log.LogfmtFormatter,
	})
	return logger, sink, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
