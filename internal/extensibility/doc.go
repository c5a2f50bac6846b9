// Package extensibility provides the engine's optional collaborators that
// sit outside the core state-machine algorithm: logging, watchdog
// supervision, and a periodic external driver loop. Each collaborator is a
// small interface with a stdlib-only default implementation, following the
// engine's functional-options wiring convention.
package extensibility
