package config

import (
	"fmt"

	"github.com/comalice/fsmkit/internal/core"
	"github.com/comalice/fsmkit/internal/primitives"
)

// Registry resolves the string names a Definition carries into the typed
// values a live engine needs: an event symbol, and the handler/guard
// closures YAML cannot represent. Callers implement it once per (E, A)
// instantiation they use.
type Registry[E primitives.Symbol, A any] interface {
	Event(name string) (E, bool)
	Handler(name string) (core.Handler[A], bool)
	Guard(name string) (core.Guard[A], bool)
}

// Build materializes a validated Definition into a live, typed Engine,
// generating a random StateID per declared state name. The returned map
// lets the caller translate its own state names back into the StateID
// values Raise/Transition/CurrentState work with.
func Build[E primitives.Symbol, A any](def *Definition, reg Registry[E, A]) (*core.Engine[E, A], map[string]primitives.StateID, error) {
	if err := def.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	ids := make(map[string]primitives.StateID, len(def.States))
	for _, sd := range def.States {
		ids[sd.Name] = primitives.NewStateID()
	}

	states := make([]core.State[E, A], 0, len(def.States))
	for _, sd := range def.States {
		var parent primitives.StateID
		if sd.Parent != "" {
			parent = ids[sd.Parent]
		}
		var handler core.Handler[A]
		if sd.Handler != "" {
			h, ok := reg.Handler(sd.Handler)
			if !ok {
				return nil, nil, fmt.Errorf("config: unknown handler %q for state %q", sd.Handler, sd.Name)
			}
			handler = h
		}
		states = append(states, core.NewState[E, A](ids[sd.Name], parent, handler))
	}

	e := core.NewEngine[E, A]()
	if !e.AddStates(states) {
		return nil, nil, fmt.Errorf("config: failed to register states (all-or-nothing)")
	}

	for _, td := range def.Transitions {
		ev, ok := reg.Event(td.Event)
		if !ok {
			return nil, nil, fmt.Errorf("config: unknown event %q", td.Event)
		}
		var guard core.Guard[A]
		if td.Guard != "" {
			g, ok := reg.Guard(td.Guard)
			if !ok {
				return nil, nil, fmt.Errorf("config: unknown guard %q", td.Guard)
			}
			guard = g
		}
		if !e.AddTransition(ids[td.From], core.NewTransition[E, A](ev, ids[td.To], guard)) {
			return nil, nil, fmt.Errorf("config: failed to register transition %s -%s-> %s", td.From, td.Event, td.To)
		}
	}

	if !e.SetStartState(ids[def.Start]) {
		return nil, nil, fmt.Errorf("config: failed to set start state %q", def.Start)
	}
	if !e.SetErrorState(ids[def.Error]) {
		return nil, nil, fmt.Errorf("config: failed to set error state %q", def.Error)
	}
	stopIDs := make([]primitives.StateID, 0, len(def.StopStates))
	for _, name := range def.StopStates {
		stopIDs = append(stopIDs, ids[name])
	}
	if !e.AddStopStates(stopIDs) {
		return nil, nil, fmt.Errorf("config: failed to register stop states")
	}

	return e, ids, nil
}
