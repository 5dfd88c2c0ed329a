// Package logger wraps hashicorp/go-hclog the way the teacher's
// internal/logger does, mapping otto's integer verbosity (spec.md §6) onto
// hclog's level scale.
package logger

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
)

// Logger is otto's structured logger.
type Logger struct {
	hclog.Logger
}

// LevelForVerbosity maps otto's verbosity setting (spec.md §6 declares it
// a string, e.g. "0".."3") onto an hclog level: "0" is quiet (warnings and
// errors only), "1" is the default, "2" adds debug detail, "3" and above
// trace every step. A non-numeric value is treated as the default.
func LevelForVerbosity(v string) hclog.Level {
	n, err := strconv.Atoi(v)
	if err != nil {
		n = 1
	}
	switch {
	case n <= 0:
		return hclog.Warn
	case n == 1:
		return hclog.Info
	case n == 2:
		return hclog.Debug
	default:
		return hclog.Trace
	}
}

// New builds a Logger at the given verbosity, writing to stderr so stdout
// stays reserved for task output (spec.md §4.6 step 4).
func New(verbosity string) *Logger {
	return &Logger{Logger: hclog.New(&hclog.LoggerOptions{
		Name:   "otto",
		Level:  LevelForVerbosity(verbosity),
		Output: os.Stderr,
	})}
}

// Printf logs a line at Info, matching the teacher's logger.Printf used
// for top-level error reporting in cmd/root.go.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.Info(format, args...)
}

// Errorf logs at Error and returns the formatted error, matching the
// teacher's logger.Errorf call site in cmd/root.go.
func (l *Logger) Errorf(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	l.Error(err.Error())
	return err
}
