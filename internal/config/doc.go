// Package config loads a declarative engine definition from YAML,
// structurally modeled on the teacher's declarative machine configuration:
// states, transitions and lifecycle states are named by string, since
// YAML cannot carry a typed event alphabet or a Go closure. Definition and
// Validate work on the string form alone; Build resolves those names
// against a caller-supplied Registry into a live, typed
// internal/core.Engine.
package config
