package extensibility

import (
	"time"

	"github.com/comalice/fsmkit/internal/core"
	"github.com/comalice/fsmkit/internal/primitives"
)

// steppable is the subset of Engine's surface a Driver needs, so a Driver
// isn't pinned to one particular (E, A) instantiation's full method set.
type steppable interface {
	Step() core.Status
}

// Driver repeatedly calls Step on a ticker, the Go analogue of the
// original's periodic external "step()" caller and the pack's
// TimerEventSource. It owns no goroutine until Run is called and stops
// cleanly when Stop is called.
type Driver struct {
	engine   steppable
	interval time.Duration
	done     chan struct{}
	stopped  chan struct{}
}

// NewDriver returns a Driver that calls engine.Step() once per interval.
func NewDriver(engine steppable, interval time.Duration) *Driver {
	return &Driver{
		engine:   engine,
		interval: interval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Run blocks, calling Step on every tick, until Stop is called. It is
// meant to be launched in its own goroutine.
func (d *Driver) Run() {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	defer close(d.stopped)
	for {
		select {
		case <-d.done:
			return
		case <-ticker.C:
			d.engine.Step()
		}
	}
}

// Stop signals Run to return and waits for it to do so.
func (d *Driver) Stop() {
	close(d.done)
	<-d.stopped
}

// Signal is a timestamped event, the default argument-bundle shape for
// callers that don't need a richer struct, grounded on the original
// engine's own Signal helper class.
type Signal[E primitives.Symbol, A any] struct {
	Event E
	Args  A
	At    time.Time
}

// ChannelSource feeds signals from a channel into a caller-supplied raise
// function on every receive, the Go analogue of the pack's
// ChannelEventSource adapting an external channel into the engine's input.
type ChannelSource[E primitives.Symbol, A any] struct {
	ch    <-chan Signal[E, A]
	raise func(E, A) bool
	done  chan struct{}
}

// NewChannelSource returns a ChannelSource that calls raise for every value
// received on ch until Stop is called or ch is closed.
func NewChannelSource[E primitives.Symbol, A any](ch <-chan Signal[E, A], raise func(E, A) bool) *ChannelSource[E, A] {
	return &ChannelSource[E, A]{ch: ch, raise: raise, done: make(chan struct{})}
}

// Run blocks, forwarding channel values into raise, until the channel
// closes or Stop is called. It is meant to be launched in its own
// goroutine.
func (s *ChannelSource[E, A]) Run() {
	for {
		select {
		case <-s.done:
			return
		case sig, ok := <-s.ch:
			if !ok {
				return
			}
			s.raise(sig.Event, sig.Args)
		}
	}
}

// Stop signals Run to return.
func (s *ChannelSource[E, A]) Stop() {
	close(s.done)
}
