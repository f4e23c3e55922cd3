// Package logging provides the leveled debug sink threaded through the game
// and the search engine. It wraps charmbracelet/log with a numeric verbosity:
// a message tagged with level N is emitted only when N <= verbosity.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Reporter is a leveled debug sink. The zero value and nil are both silent.
type Reporter struct {
	logger    *log.Logger
	verbosity int
}

// New creates a Reporter writing to w. Verbosity 0 disables debug output
// while still allowing Info/Warn/Error through.
func New(w io.Writer, verbosity int, prefix string) *Reporter {
	level := log.InfoLevel
	if verbosity > 0 {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbosity > 0,
		Prefix:          prefix,
		Level:           level,
	})
	return &Reporter{logger: logger, verbosity: verbosity}
}

// Stderr is a convenience for New(os.Stderr, verbosity, "numbergrab").
func Stderr(verbosity int) *Reporter {
	return New(os.Stderr, verbosity, "numbergrab")
}

// Nop returns a Reporter that discards everything.
func Nop() *Reporter {
	return &Reporter{logger: log.New(io.Discard), verbosity: 0}
}

// Verbosity returns the configured debug level.
func (r *Reporter) Verbosity() int {
	if r == nil {
		return 0
	}
	return r.verbosity
}

// Enabled reports whether messages at level would be emitted.
func (r *Reporter) Enabled(level int) bool {
	return r != nil && r.logger != nil && level <= r.verbosity
}

// Debugf emits a formatted debug message when level <= verbosity.
func (r *Reporter) Debugf(level int, format string, args ...any) {
	if !r.Enabled(level) {
		return
	}
	r.logger.Debug(fmt.Sprintf(format, args...), "level", level)
}

// Info logs an operational event with key/value pairs.
func (r *Reporter) Info(msg string, keyvals ...any) {
	if r == nil || r.logger == nil {
		return
	}
	r.logger.Info(msg, keyvals...)
}

// Warn logs a recoverable problem with key/value pairs.
func (r *Reporter) Warn(msg string, keyvals ...any) {
	if r == nil || r.logger == nil {
		return
	}
	r.logger.Warn(msg, keyvals...)
}

// Error logs a failure with key/value pairs.
func (r *Reporter) Error(msg string, keyvals ...any) {
	if r == nil || r.logger == nil {
		return
	}
	r.logger.Error(msg, keyvals...)
}

// With returns a Reporter that adds keyvals to every message.
func (r *Reporter) With(keyvals ...any) *Reporter {
	if r == nil || r.logger == nil {
		return r
	}
	return &Reporter{logger: r.logger.With(keyvals...), verbosity: r.verbosity}
}
