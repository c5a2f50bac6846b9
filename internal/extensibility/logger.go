package extensibility

import (
	"log"
	"os"

	"github.com/comalice/fsmkit/internal/core"
)

// StdLogger is the default core.Logger, wrapping one *log.Logger per tier
// and writing Debug/Info to stdout, Critical to stderr, the same shape as
// the pack's defaultLogger implementations.
type StdLogger struct {
	visibility core.Visibility
	debug      *log.Logger
	info       *log.Logger
	critical   *log.Logger
}

// NewStdLogger returns a StdLogger gated at the given visibility.
func NewStdLogger(v core.Visibility) *StdLogger {
	return &StdLogger{
		visibility: v,
		debug:      log.New(os.Stdout, "[DEBUG] ", log.LstdFlags),
		info:       log.New(os.Stdout, "[INFO] ", log.LstdFlags),
		critical:   log.New(os.Stderr, "[CRITICAL] ", log.LstdFlags),
	}
}

func (l *StdLogger) SetVisibility(v core.Visibility) { l.visibility = v }

func (l *StdLogger) Debug(format string, args ...any) {
	if l.visibility > core.VisibilityDebug {
		return
	}
	l.debug.Printf(format, args...)
}

func (l *StdLogger) Info(format string, args ...any) {
	if l.visibility > core.VisibilityInfo {
		return
	}
	l.info.Printf(format, args...)
}

func (l *StdLogger) Critical(format string, args ...any) {
	if l.visibility > core.VisibilityCritical {
		return
	}
	l.critical.Printf(format, args...)
}

// NoopLogger discards everything. Used by tests that don't want log noise.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...any)          {}
func (NoopLogger) Info(string, ...any)           {}
func (NoopLogger) Critical(string, ...any)       {}
func (NoopLogger) SetVisibility(core.Visibility) {}
