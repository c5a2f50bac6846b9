package extensibility

import (
	"testing"
	"time"
)

func TestTimerWatchdogFiresOnExpiry(t *testing.T) {
	fired := make(chan struct{}, 1)
	w := NewTimerWatchdog(func() {
		fired <- struct{}{}
	})
	w.Enable(20 * time.Millisecond)

	select {
	case <-fired:
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("expected watchdog to fire within the timeout")
	}
}

func TestTimerWatchdogResetPostponesExpiry(t *testing.T) {
	fired := make(chan struct{}, 1)
	w := NewTimerWatchdog(func() {
		fired <- struct{}{}
	})
	w.Enable(60 * time.Millisecond)

	deadline := time.After(40 * time.Millisecond)
	<-deadline
	w.Reset()

	select {
	case <-fired:
		t.Fatalf("did not expect the watchdog to fire immediately after Reset")
	case <-time.After(20 * time.Millisecond):
	}
	w.Disable()
}

func TestNoopWatchdogNeverFires(t *testing.T) {
	var w NoopWatchdog
	w.Enable(time.Millisecond)
	w.Reset()
	w.Disable()
}
