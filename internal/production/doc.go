// Package production provides operator-facing integrations that sit
// outside the engine's runtime path: a YAML-backed version registry for
// diffing deployed automaton revisions, a DOT/JSON visualizer, and a
// channel-based state-change notifier. None of these are consulted by
// internal/core.Engine itself; the engine never auto-persists, matching
// the non-goal that cross-restart persistence of live runtime state is
// not an implicit engine feature.
package production
