// Package core implements the hierarchical finite-state-machine engine:
// Transition, State, TransitionTable and Engine, in that dependency order
// on top of internal/policy and internal/primitives.
//
// The engine is generic over an event alphabet type E (constrained to
// primitives.Symbol) and an argument bundle type A (any), the Go analogue
// of the original C++ engine's Policy and variadic Args... template
// parameters. There is no separate compile-time "policy" type: container
// and threading behaviour are supplied at construction time through
// EngineOption values, since Go generics have no equivalent of C++ SFINAE
// capability queries.
package core
