// Package primitives provides the foundational, zero-dependency data types
// shared by the engine: the event-symbol constraint and the random state
// identifier.
//
// This package and all of internal/core use ONLY the Go standard library.
// No external dependencies are permitted in the core engine; the yaml.v3
// dependency lives exclusively in internal/config and internal/production.
package primitives
