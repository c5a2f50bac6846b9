package config

import "testing"

const validYAML = `
id: traffic-light
start: red
error: failed
stop_states: [red]
states:
  - name: red
    handler: noop
  - name: green
    handler: noop
  - name: yellow
    handler: noop
  - name: failed
transitions:
  - from: red
    event: timer
    to: green
  - from: green
    event: timer
    to: yellow
  - from: yellow
    event: timer
    to: red
`

func TestLoadValidDefinition(t *testing.T) {
	def, err := Load([]byte(validYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if def.ID != "traffic-light" {
		t.Fatalf("ID = %q, want traffic-light", def.ID)
	}
	if len(def.States) != 4 {
		t.Fatalf("len(States) = %d, want 4", len(def.States))
	}
}

func TestValidateRejectsUnknownStartState(t *testing.T) {
	def := &Definition{
		ID:         "x",
		Start:      "missing",
		Error:      "a",
		StopStates: []string{"a"},
		States:     []StateDef{{Name: "a"}},
	}
	if def.Validate() == nil {
		t.Fatalf("expected Validate to reject an unknown start state")
	}
}

func TestValidateRejectsEpsilonTransition(t *testing.T) {
	def := &Definition{
		ID:          "x",
		Start:       "a",
		Error:       "a",
		StopStates:  []string{"a"},
		States:      []StateDef{{Name: "a"}, {Name: "b"}},
		Transitions: []TransitionDef{{From: "a", Event: "", To: "b"}},
	}
	if def.Validate() == nil {
		t.Fatalf("expected Validate to reject an epsilon transition")
	}
}

func TestValidateRejectsDuplicateTransition(t *testing.T) {
	def := &Definition{
		ID:         "x",
		Start:      "a",
		Error:      "a",
		StopStates: []string{"a"},
		States:     []StateDef{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		Transitions: []TransitionDef{
			{From: "a", Event: "ev", To: "b"},
			{From: "a", Event: "ev", To: "c"},
		},
	}
	if def.Validate() == nil {
		t.Fatalf("expected Validate to reject a duplicate (from, event) pair")
	}
}

func TestValidateRejectsUnknownParent(t *testing.T) {
	def := &Definition{
		ID:         "x",
		Start:      "a",
		Error:      "a",
		StopStates: []string{"a"},
		States:     []StateDef{{Name: "a", Parent: "ghost"}},
	}
	if def.Validate() == nil {
		t.Fatalf("expected Validate to reject an unresolvable parent reference")
	}
}
