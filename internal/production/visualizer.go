package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/comalice/fsmkit/internal/config"
)

// Visualizer renders a Definition for human inspection. It works purely
// on names, never a live Engine, so it has no type parameters to
// instantiate.
type Visualizer struct{}

// ExportDOT generates Graphviz DOT source for def, drawing the error state
// as a diamond and every stop state doubly-bordered. The start state is
// drawn as a box like any other state.
func (Visualizer) ExportDOT(def *config.Definition) string {
	var buf bytes.Buffer
	buf.WriteString("digraph FSM {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=10, style=rounded];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	stop := make(map[string]bool, len(def.StopStates))
	for _, s := range def.StopStates {
		stop[s] = true
	}

	for _, sd := range def.States {
		shape := "box"
		peripheries := "1"
		if sd.Name == def.Start {
			shape = "box"
		}
		if sd.Name == def.Error {
			shape = "diamond"
		}
		if stop[sd.Name] {
			peripheries = "2"
		}
		buf.WriteString(fmt.Sprintf("  %q [shape=%s, peripheries=%s];\n", sd.Name, shape, peripheries))
		if sd.Parent != "" {
			buf.WriteString(fmt.Sprintf("  %q -> %q [style=dotted, arrowhead=none];\n", sd.Parent, sd.Name))
		}
	}

	for _, td := range def.Transitions {
		label := td.Event
		if td.Guard != "" {
			label = fmt.Sprintf("%s[%s]", td.Event, td.Guard)
		}
		buf.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", td.From, td.To, label))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes def to indented JSON.
func (Visualizer) ExportJSON(def *config.Definition) ([]byte, error) {
	return json.MarshalIndent(def, "", "  ")
}
