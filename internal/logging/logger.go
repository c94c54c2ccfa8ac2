// Package logging provides a structured logging wrapper around charmbracelet/log.
// Console output meant for the user goes to stdout; the logger writes
// diagnostics to stderr.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
	defaultLoggerMu   sync.RWMutex
)

func initDefault() {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
}

// New creates a stderr logger at the given level.
// Valid levels: "debug", "info", "warn", "error"; anything else means info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to a log.Level, accepting "warning" for warn.
func ParseLevel(level string) log.Level {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		name = "warn"
	}
	parsed, err := log.ParseLevel(name)
	if err != nil || name == "" {
		return log.InfoLevel
	}
	return parsed
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	initDefault()
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level default logger.
func SetDefault(logger *log.Logger) {
	initDefault()
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
