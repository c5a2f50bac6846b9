package extensibility

import (
	"testing"
	"time"

	"github.com/comalice/fsmkit/internal/core"
	"github.com/comalice/fsmkit/internal/primitives"
)

func newSoloEngine() *core.Engine[uint8, int] {
	e := core.NewEngine[uint8, int]()
	id := primitives.StateID(1)
	e.AddState(core.NewState[uint8, int](id, primitives.Unset, nil))
	e.SetStartState(id)
	e.SetErrorState(id)
	e.AddStopState(id)
	e.Start(true)
	return e
}

func TestDriverCallsStepOnEachTick(t *testing.T) {
	e := newSoloEngine()
	steps := 0
	e.AddAlphabetSymbol(1) // no transitions registered; Step() is still safe to call repeatedly

	wrapped := stepFunc(func() core.Status {
		steps++
		return e.Step()
	})

	d := NewDriver(wrapped, 10*time.Millisecond)
	go d.Run()

	time.Sleep(55 * time.Millisecond)
	d.Stop()

	if steps < 3 {
		t.Fatalf("expected at least 3 Step() calls in ~55ms at a 10ms interval, got %d", steps)
	}
}

type stepFunc func() core.Status

func (f stepFunc) Step() core.Status { return f() }

func TestChannelSourceForwardsUntilStop(t *testing.T) {
	ch := make(chan Signal[uint8, int], 4)
	var received []uint8
	src := NewChannelSource[uint8, int](ch, func(ev uint8, args int) bool {
		received = append(received, ev)
		return true
	})
	go src.Run()

	ch <- Signal[uint8, int]{Event: 1, Args: 0}
	ch <- Signal[uint8, int]{Event: 2, Args: 0}
	time.Sleep(20 * time.Millisecond)
	src.Stop()

	if len(received) != 2 || received[0] != 1 || received[1] != 2 {
		t.Fatalf("received = %v, want [1 2]", received)
	}
}
