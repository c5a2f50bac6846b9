// Package policy provides the container and threading collaborator
// contracts the engine is built on, plus their default, stdlib-only
// implementations. It is the lowest layer of the dependency chain
// (policy -> transition/state -> table -> engine): nothing in this package
// imports internal/core, so a caller can depend on policy alone to build a
// custom collaborator without pulling in the engine.
package policy
