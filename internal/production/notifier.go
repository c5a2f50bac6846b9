package production

import (
	"context"
	"time"

	"github.com/comalice/fsmkit/internal/primitives"
)

// StateChangeEvent bundles a caller-observed transition for downstream
// consumers such as dashboards or audit logs. Callers are responsible for
// producing these after driving an Engine themselves; Engine never emits
// them on its own.
type StateChangeEvent struct {
	MachineID string
	From      primitives.StateID
	To        primitives.StateID
	Event     any
	At        time.Time
}

// ChannelNotifier forwards StateChangeEvents to a Go channel. Notify is
// non-blocking: a full channel drops the event rather than stalling the
// caller's driving loop.
type ChannelNotifier struct {
	ch chan<- StateChangeEvent
}

// NewChannelNotifier returns a ChannelNotifier writing to ch.
func NewChannelNotifier(ch chan<- StateChangeEvent) *ChannelNotifier {
	return &ChannelNotifier{ch: ch}
}

// Notify publishes ev, dropping it if ch is full or ctx is already done.
func (n *ChannelNotifier) Notify(ctx context.Context, ev StateChangeEvent) error {
	select {
	case n.ch <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Close closes the underlying channel. Callers must not call Notify after
// Close.
func (n *ChannelNotifier) Close() error {
	close(n.ch)
	return nil
}
