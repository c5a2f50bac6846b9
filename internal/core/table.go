package core

import (
	"github.com/comalice/fsmkit/internal/policy"
	"github.com/comalice/fsmkit/internal/primitives"
)

// sttKey is the composite (state, event) lookup key, the Go analogue of the
// original engine's SttIndex union. A struct key rather than a manually
// packed uint64 is used here so the table works for any Symbol width
// without resorting to unsafe or reflect to normalize E into a fixed-width
// integer.
type sttKey[E primitives.Symbol] struct {
	state primitives.StateID
	event E
}

// TransitionTable holds the (state, event) -> Transition mapping and the
// accumulated event alphabet, C4 in the component design.
type TransitionTable[E primitives.Symbol, A any] struct {
	rows     map[sttKey[E]]Transition[E, A]
	alphabet policy.Set[E]
}

// NewTransitionTable returns an empty TransitionTable.
func NewTransitionTable[E primitives.Symbol, A any]() *TransitionTable[E, A] {
	return &TransitionTable[E, A]{
		rows:     make(map[sttKey[E]]Transition[E, A]),
		alphabet: policy.NewSet[E](),
	}
}

// Has reports whether a row is already registered for (state, event). The
// engine consults this before Insert to reject a duplicate registration as
// nondeterministic rather than silently overwriting it.
func (t *TransitionTable[E, A]) Has(state primitives.StateID, event E) bool {
	_, ok := t.rows[sttKey[E]{state: state, event: event}]
	return ok
}

// Insert registers tr as the transition taken from state on tr.Event(),
// overwriting any existing row for the same (state, event) pair, and
// records the event in the alphabet.
func (t *TransitionTable[E, A]) Insert(state primitives.StateID, tr Transition[E, A]) {
	t.rows[sttKey[E]{state: state, event: tr.Event()}] = tr
	t.alphabet.Add(tr.Event())
}

// Lookup finds the transition for (state, event), climbing to the parent
// state on a miss via parentOf exactly as the original's recursive
// lookup() walks up the hierarchy before giving up.
func (t *TransitionTable[E, A]) Lookup(state primitives.StateID, event E, parentOf func(primitives.StateID) (primitives.StateID, bool)) (Transition[E, A], bool) {
	for {
		if tr, ok := t.rows[sttKey[E]{state: state, event: event}]; ok {
			return tr, true
		}
		parent, ok := parentOf(state)
		if !ok || parent == primitives.Unset {
			var zero Transition[E, A]
			return zero, false
		}
		state = parent
	}
}

// Alphabet returns the set of distinct event symbols registered across all
// transitions in the table.
func (t *TransitionTable[E, A]) Alphabet() policy.Set[E] { return t.alphabet }

// Len returns the number of registered (state, event) rows.
func (t *TransitionTable[E, A]) Len() int { return len(t.rows) }

// ForEach visits every registered row. Order is unspecified.
func (t *TransitionTable[E, A]) ForEach(fn func(state primitives.StateID, event E, tr Transition[E, A])) {
	for k, v := range t.rows {
		fn(k.state, k.event, v)
	}
}
