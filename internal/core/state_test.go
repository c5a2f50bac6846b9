package core

import (
	"testing"

	"github.com/comalice/fsmkit/internal/primitives"
)

func TestStateHasParent(t *testing.T) {
	root := NewState[uint8, int](1, primitives.Unset, nil)
	if root.HasParent() {
		t.Fatalf("expected root state to report no parent")
	}

	child := NewState[uint8, int](2, primitives.StateID(1), nil)
	if !child.HasParent() {
		t.Fatalf("expected child state to report a parent")
	}
	if child.Parent() != primitives.StateID(1) {
		t.Fatalf("Parent() = %v, want 1", child.Parent())
	}
}

func TestStateInvoke(t *testing.T) {
	noHandler := NewState[uint8, int](1, primitives.Unset, nil)
	if noHandler.Invoke(0) {
		t.Fatalf("expected a handlerless state to report Invoke failure")
	}

	var invoked int
	boolState := NewState[uint8, int](2, primitives.Unset, BoolHandler(func(v int) bool {
		invoked = v
		return v > 0
	}))
	if boolState.Invoke(-1) {
		t.Fatalf("expected BoolHandler(-1) to report failure")
	}
	if !boolState.Invoke(1) {
		t.Fatalf("expected BoolHandler(1) to report success")
	}
	if invoked != 1 {
		t.Fatalf("invoked = %d, want 1", invoked)
	}

	voidState := NewState[uint8, int](3, primitives.Unset, VoidHandler(func(v int) {
		invoked = v
	}))
	if !voidState.Invoke(42) {
		t.Fatalf("expected VoidHandler to always report success")
	}
	if invoked != 42 {
		t.Fatalf("invoked = %d, want 42", invoked)
	}
}
