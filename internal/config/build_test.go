package config

import (
	"testing"

	"github.com/comalice/fsmkit/internal/core"
)

type testRegistry struct{}

func (testRegistry) Event(name string) (uint8, bool) {
	switch name {
	case "timer":
		return 1, true
	default:
		return 0, false
	}
}

func (testRegistry) Handler(name string) (core.Handler[int], bool) {
	if name == "noop" {
		return core.VoidHandler(func(int) {}), true
	}
	return nil, false
}

func (testRegistry) Guard(name string) (core.Guard[int], bool) {
	return nil, false
}

func TestBuildMaterializesEngine(t *testing.T) {
	def, err := Load([]byte(validYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	e, ids, err := Build[uint8, int](def, testRegistry{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !e.Valid() {
		t.Fatalf("expected built engine to be Valid")
	}
	if !e.Start(true) {
		t.Fatalf("Start(true) failed")
	}
	if e.CurrentState() != ids["red"] {
		t.Fatalf("CurrentState() = %v, want ids[red]", e.CurrentState())
	}

	if !e.Raise(1, 0) {
		t.Fatalf("expected Raise(timer) to be accepted from red")
	}
	if got := e.Step(); got != core.StateChanged {
		t.Fatalf("Step() = %v, want StateChanged", got)
	}
	if e.CurrentState() != ids["green"] {
		t.Fatalf("CurrentState() = %v, want ids[green]", e.CurrentState())
	}
}

func TestBuildFailsOnUnknownEvent(t *testing.T) {
	def := &Definition{
		ID:         "x",
		Start:      "a",
		Error:      "a",
		StopStates: []string{"a"},
		States:     []StateDef{{Name: "a"}, {Name: "b"}},
		Transitions: []TransitionDef{
			{From: "a", Event: "nope", To: "b"},
		},
	}
	if _, _, err := Build[uint8, int](def, testRegistry{}); err == nil {
		t.Fatalf("expected Build to fail on an unresolvable event name")
	}
}
