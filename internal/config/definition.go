package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StateDef declares one state by name, its optional parent, and the
// optional name of a handler to resolve against a Registry at Build time.
type StateDef struct {
	Name    string `yaml:"name" json:"name"`
	Parent  string `yaml:"parent,omitempty" json:"parent,omitempty"`
	Handler string `yaml:"handler,omitempty" json:"handler,omitempty"`
}

// TransitionDef declares one outgoing edge by the names of its source and
// target states, its triggering event, and an optional guard name.
type TransitionDef struct {
	From  string `yaml:"from" json:"from"`
	Event string `yaml:"event" json:"event"`
	To    string `yaml:"to" json:"to"`
	Guard string `yaml:"guard,omitempty" json:"guard,omitempty"`
}

// Definition is the declarative, name-based shape of an engine, the YAML
// document cmd/fsmdump reads directly and Build materializes into a typed
// internal/core.Engine.
type Definition struct {
	ID          string          `yaml:"id" json:"id"`
	Start       string          `yaml:"start" json:"start"`
	Error       string          `yaml:"error" json:"error"`
	StopStates  []string        `yaml:"stop_states" json:"stop_states"`
	States      []StateDef      `yaml:"states" json:"states"`
	Transitions []TransitionDef `yaml:"transitions" json:"transitions"`
}

// Load parses a YAML document into a Definition and validates it.
func Load(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &def, nil
}

// Validate checks the structural rules Build and the eventual engine
// would otherwise fail on much later: unique state names, resolvable
// parent/start/error/stop-state references, resolvable transition
// endpoints, non-empty event names (an empty name is this format's
// epsilon), and no duplicate (from, event) pair — the same nondeterminism
// guard internal/core.Engine.AddTransition enforces at registration time.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("missing id")
	}
	names := make(map[string]bool, len(d.States))
	for _, s := range d.States {
		if s.Name == "" {
			return fmt.Errorf("state with empty name")
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate state name %q", s.Name)
		}
		names[s.Name] = true
	}
	for _, s := range d.States {
		if s.Parent != "" && !names[s.Parent] {
			return fmt.Errorf("state %q references unknown parent %q", s.Name, s.Parent)
		}
	}
	if d.Start == "" || !names[d.Start] {
		return fmt.Errorf("start state %q is not a declared state", d.Start)
	}
	if d.Error == "" || !names[d.Error] {
		return fmt.Errorf("error state %q is not a declared state", d.Error)
	}
	if len(d.StopStates) == 0 {
		return fmt.Errorf("at least one stop state is required")
	}
	for _, s := range d.StopStates {
		if !names[s] {
			return fmt.Errorf("stop state %q is not a declared state", s)
		}
	}
	seen := make(map[[2]string]bool, len(d.Transitions))
	for _, tr := range d.Transitions {
		if tr.Event == "" {
			return fmt.Errorf("transition %s->%s has an empty (epsilon) event", tr.From, tr.To)
		}
		if !names[tr.From] {
			return fmt.Errorf("transition references unknown source state %q", tr.From)
		}
		if !names[tr.To] {
			return fmt.Errorf("transition references unknown target state %q", tr.To)
		}
		key := [2]string{tr.From, tr.Event}
		if seen[key] {
			return fmt.Errorf("duplicate transition (%s, %s): nondeterministic", tr.From, tr.Event)
		}
		seen[key] = true
	}
	return nil
}
