package core

import "github.com/comalice/fsmkit/internal/primitives"

// State is a node in the engine's parent hierarchy, C3 in the component
// design. The E type parameter carries no field of its own; it is kept so
// that State, Transition and TransitionTable share the same instantiation
// as Engine.
type State[E primitives.Symbol, A any] struct {
	id      primitives.StateID
	parent  primitives.StateID
	handler Handler[A]
}

// NewState constructs a State. A zero parent means the state has no parent
// (it sits at the root of the hierarchy). A nil handler is legal: Invoke
// then reports failure, matching a state with no configured action.
func NewState[E primitives.Symbol, A any](id, parent primitives.StateID, handler Handler[A]) State[E, A] {
	return State[E, A]{id: id, parent: parent, handler: handler}
}

// ID returns the state's identifier.
func (s State[E, A]) ID() primitives.StateID { return s.id }

// Parent returns the state's parent, or the unset sentinel if it has none.
func (s State[E, A]) Parent() primitives.StateID { return s.parent }

// HasParent reports whether the state has a parent to climb to on a lookup
// miss.
func (s State[E, A]) HasParent() bool { return s.parent != primitives.Unset }

// HasHandler reports whether the state has a configured handler. Engine's
// Deterministic check requires a reachable transition row for every
// alphabet symbol on a handler-bearing state; a state with no handler has
// nothing to run and is exempt from that requirement.
func (s State[E, A]) HasHandler() bool { return s.handler != nil }

// Invoke runs the state's handler, if any, and reports its success. A state
// with no handler always reports failure, since there is nothing to have
// succeeded.
func (s State[E, A]) Invoke(args A) bool {
	if s.handler == nil {
		return false
	}
	return s.handler.Invoke(args)
}
