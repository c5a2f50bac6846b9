package core

import "github.com/comalice/fsmkit/internal/primitives"

// Guard is a boolean predicate attached to a Transition. A nil Guard is the
// "no guard" sentinel, checked with ==nil, the idiomatic substitute for the
// original's type-erased function wrapper's valid() query.
type Guard[A any] func(A) bool

// Transition is a single (event, target, optional guard) edge, C2 in the
// engine's component design.
type Transition[E primitives.Symbol, A any] struct {
	event E
	next  primitives.StateID
	guard Guard[A]
}

// NewTransition constructs a Transition. A nil guard means the transition
// is always taken once its event is looked up.
func NewTransition[E primitives.Symbol, A any](event E, next primitives.StateID, guard Guard[A]) Transition[E, A] {
	return Transition[E, A]{event: event, next: next, guard: guard}
}

// Event returns the transition's triggering event symbol.
func (t Transition[E, A]) Event() E { return t.event }

// Next returns the transition's target StateID.
func (t Transition[E, A]) Next() primitives.StateID { return t.next }

// HasGuard reports whether a guard predicate is installed.
func (t Transition[E, A]) HasGuard() bool { return t.guard != nil }

// EvaluateGuard runs the installed guard against args. Calling it when
// HasGuard is false returns false rather than panicking: an unrecoverable
// panic inside a locked engine is not an acceptable failure mode for a
// library, even though the original documents this case as undefined
// behaviour.
func (t Transition[E, A]) EvaluateGuard(args A) bool {
	if t.guard == nil {
		return false
	}
	return t.guard(args)
}

// Equal compares only the triggering event, matching the original's
// operator== on Transition.
func (t Transition[E, A]) Equal(event E) bool { return t.event == event }

// Valid reports whether the transition has both a non-zero target and a
// non-zero event symbol.
func (t Transition[E, A]) Valid() bool {
	var zero E
	return t.next != primitives.Unset && t.event != zero
}
