package core

import "time"

// Watchdog is the engine's stall-detection collaborator. Enable arms (or
// re-arms) the timer; every successful Step resets it. Concrete
// implementations live in internal/extensibility.
type Watchdog interface {
	Enable(timeout time.Duration)
	Reset()
	Disable()
}

// noopWatchdog is the Engine's zero-value watchdog: no timers, no
// escalation, used until WithWatchdog installs a real one.
type noopWatchdog struct{}

func (noopWatchdog) Enable(time.Duration) {}
func (noopWatchdog) Reset()               {}
func (noopWatchdog) Disable()             {}
