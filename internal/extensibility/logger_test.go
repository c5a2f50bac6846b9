package extensibility

import (
	"testing"

	"github.com/comalice/fsmkit/internal/core"
)

func TestStdLoggerRespectsVisibility(t *testing.T) {
	l := NewStdLogger(core.VisibilityCritical)
	// Debug/Info are below the threshold and must not panic or block; there
	// is no observable side effect to assert on beyond "did not crash".
	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Critical("critical %d", 3)

	l.SetVisibility(core.VisibilityDebug)
	l.Debug("now visible")
}

func TestNoopLoggerIsInert(t *testing.T) {
	var l NoopLogger
	l.Debug("x")
	l.Info("x")
	l.Critical("x")
	l.SetVisibility(core.VisibilityDebug)
}
