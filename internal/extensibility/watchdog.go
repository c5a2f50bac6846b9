package extensibility

import (
	"sync"
	"time"
)

// TimerWatchdog is the default core.Watchdog, backed by time.AfterFunc.
type TimerWatchdog struct {
	mu       sync.Mutex
	timer    *time.Timer
	timeout  time.Duration
	onExpire func()
}

// NewTimerWatchdog returns a TimerWatchdog that calls onExpire (if
// non-nil) each time the armed timeout elapses without a Reset.
func NewTimerWatchdog(onExpire func()) *TimerWatchdog {
	return &TimerWatchdog{onExpire: onExpire}
}

func (w *TimerWatchdog) Enable(timeout time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timeout = timeout
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(timeout, w.fire)
}

func (w *TimerWatchdog) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Reset(w.timeout)
	}
}

func (w *TimerWatchdog) Disable() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *TimerWatchdog) fire() {
	w.mu.Lock()
	cb := w.onExpire
	w.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// NoopWatchdog never arms a real timer. Used for tests and bare builds
// that don't want wall-clock timers running.
type NoopWatchdog struct{}

func (NoopWatchdog) Enable(time.Duration) {}
func (NoopWatchdog) Reset()               {}
func (NoopWatchdog) Disable()             {}
