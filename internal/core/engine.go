package core

import (
	"unsafe"

	"github.com/comalice/fsmkit/internal/policy"
	"github.com/comalice/fsmkit/internal/primitives"
)

// queuedEvent bundles a raised or handler-initiated event with its argument
// bundle for later processing by Step.
type queuedEvent[E primitives.Symbol, A any] struct {
	event E
	args  A
}

// Engine is the hierarchical finite-state-machine executor, C5 in the
// component design. It is built with NewEngine and a set of EngineOption
// values; zero-value Engine is not usable.
type Engine[E primitives.Symbol, A any] struct {
	th       policy.Threading
	stopCond policy.Cond

	states     policy.OrderedMap[primitives.StateID, State[E, A]]
	table      *TransitionTable[E, A]
	alphabet   policy.Set[E]
	stopStates policy.Set[primitives.StateID]

	startState primitives.StateID
	errorState primitives.StateID
	current    primitives.StateID

	queue        policy.Deque[queuedEvent[E, A]]
	inTransition bool

	status   Status
	silent   bool
	logger   Logger
	watchdog Watchdog
}

// EngineOption configures an Engine at construction time, following the
// functional-options convention used throughout the collaborator surface.
type EngineOption[E primitives.Symbol, A any] func(*Engine[E, A])

// WithThreading installs a custom Threading policy. The default, applied
// when this option is not supplied, is policy.MutexThreading.
func WithThreading[E primitives.Symbol, A any](t policy.Threading) EngineOption[E, A] {
	return func(e *Engine[E, A]) { e.th = t }
}

// WithLogger installs a custom Logger. The default is a no-op logger.
func WithLogger[E primitives.Symbol, A any](l Logger) EngineOption[E, A] {
	return func(e *Engine[E, A]) { e.logger = l }
}

// WithWatchdog installs a custom Watchdog. The default is a no-op
// watchdog that never arms a timer.
func WithWatchdog[E primitives.Symbol, A any](w Watchdog) EngineOption[E, A] {
	return func(e *Engine[E, A]) { e.watchdog = w }
}

// WithSilent suppresses every engine-emitted log line regardless of the
// installed Logger's visibility threshold, matching the original's
// m_silent flag.
func WithSilent[E primitives.Symbol, A any](silent bool) EngineOption[E, A] {
	return func(e *Engine[E, A]) { e.silent = silent }
}

// NewEngine constructs an Engine with no registered states. Callers
// populate it with AddState/AddStates, AddTransition, SetStartState,
// SetErrorState and AddStopState/AddStopStates before calling Start.
func NewEngine[E primitives.Symbol, A any](opts ...EngineOption[E, A]) *Engine[E, A] {
	e := &Engine[E, A]{
		th:         &policy.MutexThreading{},
		states:     policy.NewOrderedMap[primitives.StateID, State[E, A]](),
		table:      NewTransitionTable[E, A](),
		alphabet:   policy.NewSet[E](),
		stopStates: policy.NewSet[primitives.StateID](),
		queue:      policy.NewDeque[queuedEvent[E, A]](),
		status:     Stopped,
		logger:     noopLogger{},
		watchdog:   noopWatchdog{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.stopCond = e.th.NewCond()
	return e
}

func (e *Engine[E, A]) logDebug(format string, args ...any) {
	if e.silent {
		return
	}
	e.logger.Debug(format, args...)
}

func (e *Engine[E, A]) logInfo(format string, args ...any) {
	if e.silent {
		return
	}
	e.logger.Info(format, args...)
}

func (e *Engine[E, A]) logCritical(format string, args ...any) {
	if e.silent {
		return
	}
	e.logger.Critical(format, args...)
}

func (e *Engine[E, A]) parentOfLocked(id primitives.StateID) (primitives.StateID, bool) {
	st, ok := e.states.Get(id)
	if !ok || !st.HasParent() {
		return primitives.Unset, false
	}
	return st.Parent(), true
}

// AddState registers a single state. It fails if the state's id is unset,
// already registered, or its parent (if any) is not yet registered.
func (e *Engine[E, A]) AddState(st State[E, A]) bool {
	e.th.Lock()
	defer e.th.Unlock()
	return e.addStateLocked(st)
}

func (e *Engine[E, A]) addStateLocked(st State[E, A]) bool {
	if st.ID() == primitives.Unset {
		return false
	}
	if _, exists := e.states.Get(st.ID()); exists {
		return false
	}
	if st.HasParent() {
		if _, ok := e.states.Get(st.Parent()); !ok {
			return false
		}
	}
	e.states.Set(st.ID(), st)
	return true
}

// AddStates registers a batch of states all-or-nothing: if any state in
// the batch is invalid, duplicated, or has an unresolvable parent (parents
// may reference other states earlier or later in the same batch), none of
// the batch is registered. This corrects the original's partial-insert
// behaviour on failure.
func (e *Engine[E, A]) AddStates(states []State[E, A]) bool {
	e.th.Lock()
	defer e.th.Unlock()

	seen := make(map[primitives.StateID]bool, len(states))
	for _, st := range states {
		if st.ID() == primitives.Unset || seen[st.ID()] {
			return false
		}
		if _, exists := e.states.Get(st.ID()); exists {
			return false
		}
		seen[st.ID()] = true
	}
	for _, st := range states {
		if !st.HasParent() {
			continue
		}
		if _, ok := e.states.Get(st.Parent()); ok {
			continue
		}
		if !seen[st.Parent()] {
			return false
		}
	}
	for _, st := range states {
		e.states.Set(st.ID(), st)
	}
	return true
}

// AddTransition registers tr as an outgoing edge of state. It fails if tr
// is structurally invalid (epsilon event or unset target), state or the
// target are unregistered, or (state, tr.Event()) is already registered —
// the last case is rejected rather than overwritten, since silently
// accepting it would make the automaton nondeterministic.
func (e *Engine[E, A]) AddTransition(state primitives.StateID, tr Transition[E, A]) bool {
	e.th.Lock()
	defer e.th.Unlock()

	if !tr.Valid() {
		return false
	}
	if _, ok := e.states.Get(state); !ok {
		return false
	}
	if _, ok := e.states.Get(tr.Next()); !ok {
		return false
	}
	if e.table.Has(state, tr.Event()) {
		return false
	}
	e.table.Insert(state, tr)
	e.alphabet.Add(tr.Event())
	return true
}

// AddAlphabetSymbol registers an event symbol in the engine's alphabet
// independently of any transition, mirroring the original's
// addAlphabetSymbol. It fails for the zero (epsilon) symbol.
func (e *Engine[E, A]) AddAlphabetSymbol(event E) bool {
	e.th.Lock()
	defer e.th.Unlock()
	var zero E
	if event == zero {
		return false
	}
	e.alphabet.Add(event)
	return true
}

// SetStartState designates id as the state entered by Start. It fails if
// id is not registered.
func (e *Engine[E, A]) SetStartState(id primitives.StateID) bool {
	e.th.Lock()
	defer e.th.Unlock()
	if _, ok := e.states.Get(id); !ok {
		return false
	}
	e.startState = id
	if e.current == primitives.Unset {
		e.current = id
	}
	return true
}

// SetErrorState designates id as the state the engine moves to when a
// handler invocation fails. It fails if id is not registered.
func (e *Engine[E, A]) SetErrorState(id primitives.StateID) bool {
	e.th.Lock()
	defer e.th.Unlock()
	if _, ok := e.states.Get(id); !ok {
		return false
	}
	e.errorState = id
	return true
}

// AddStopState marks id as a terminal state. It fails if id is not
// registered.
func (e *Engine[E, A]) AddStopState(id primitives.StateID) bool {
	e.th.Lock()
	defer e.th.Unlock()
	if _, ok := e.states.Get(id); !ok {
		return false
	}
	e.stopStates.Add(id)
	return true
}

// AddStopStates marks a batch of states as terminal, all-or-nothing: if
// any id in the batch is not registered, none of the batch is marked.
func (e *Engine[E, A]) AddStopStates(ids []primitives.StateID) bool {
	e.th.Lock()
	defer e.th.Unlock()
	for _, id := range ids {
		if _, ok := e.states.Get(id); !ok {
			return false
		}
	}
	for _, id := range ids {
		e.stopStates.Add(id)
	}
	return true
}

// Valid reports whether the engine's status is Running or Stopped, it has
// at least one state, a registered start state, a registered error state,
// at least one registered stop state, and the registered transition table
// is Deterministic. An engine with zero transitions still passes
// vacuously, provided those conditions hold.
func (e *Engine[E, A]) Valid() bool {
	e.th.Lock()
	defer e.th.Unlock()
	return e.validLocked()
}

func (e *Engine[E, A]) validLocked() bool {
	if e.status != Running && e.status != Stopped {
		return false
	}
	if e.states.Len() == 0 {
		return false
	}
	if e.startState == primitives.Unset {
		return false
	}
	if _, ok := e.states.Get(e.startState); !ok {
		return false
	}
	if e.errorState == primitives.Unset {
		return false
	}
	if _, ok := e.states.Get(e.errorState); !ok {
		return false
	}
	if e.stopStates.Len() == 0 {
		return false
	}
	for _, id := range e.stopStates.Items() {
		if _, ok := e.states.Get(id); !ok {
			return false
		}
	}
	return e.deterministicLocked()
}

// Deterministic walks every registered state against the alphabet
// accumulated at transition-insert time. For a state with a handler, every
// alphabet symbol must resolve to a transition row on the state itself or
// one of its ancestors; a missing row on a handler-bearing state fails the
// check. Independently, for every state, climbing from the state itself
// up through its ancestors must never offer the same symbol twice — a
// direct row on the state shadowing an ancestor's row (or two ancestors
// both offering it) is an ε-transition: two distinct paths accepting the
// same symbol from one state.
func (e *Engine[E, A]) Deterministic() bool {
	e.th.Lock()
	defer e.th.Unlock()
	return e.deterministicLocked()
}

func (e *Engine[E, A]) deterministicLocked() bool {
	alphabet := e.alphabet.Items()
	for _, id := range e.states.Keys() {
		st, _ := e.states.Get(id)

		seen := make(map[E]bool, len(alphabet))
		cur := id
		for {
			for _, ev := range alphabet {
				if !e.table.Has(cur, ev) {
					continue
				}
				if seen[ev] {
					e.logCritical("epsilon-transition: symbol reachable via two distinct paths from state %v", id)
					return false
				}
				seen[ev] = true
			}
			parent, ok := e.parentOfLocked(cur)
			if !ok {
				break
			}
			cur = parent
		}

		if st.HasHandler() {
			for _, ev := range alphabet {
				if !seen[ev] {
					e.logCritical("missing transition row for symbol %v on handler-bearing state %v", ev, id)
					return false
				}
			}
		}
	}
	return true
}

// Accept reports whether event has a registered transition reachable from
// the current state by climbing the parent chain, without taking it.
func (e *Engine[E, A]) Accept(event E) bool {
	e.th.Lock()
	defer e.th.Unlock()
	return e.acceptLocked(event)
}

func (e *Engine[E, A]) acceptLocked(event E) bool {
	if e.current == primitives.Unset {
		return false
	}
	_, ok := e.table.Lookup(e.current, event, e.parentOfLocked)
	return ok
}

// Start transitions the engine to Running. If validate is true, Start
// fails (returning false and leaving the engine Stopped) unless Valid
// holds. Every call resets current to the configured start state, so a
// restart after Stop or Halt always resumes from startState rather than
// wherever the engine last left off.
func (e *Engine[E, A]) Start(validate bool) bool {
	e.th.Lock()
	defer e.th.Unlock()
	if validate && !e.validLocked() {
		return false
	}
	e.current = e.startState
	e.status = Running
	e.logInfo("engine started at state %v", e.current)
	return true
}

// Running reports whether the engine's status is Running.
func (e *Engine[E, A]) Running() bool {
	e.th.Lock()
	defer e.th.Unlock()
	return e.status == Running
}

// Halt unconditionally stops the engine, regardless of current state,
// disabling the watchdog and waking any goroutine blocked in Stop.
func (e *Engine[E, A]) Halt() {
	e.th.Lock()
	defer e.th.Unlock()
	e.watchdog.Disable()
	e.status = Stopped
	e.stopCond.Signal()
}

func (e *Engine[E, A]) isStopOrErrorLocked(id primitives.StateID) bool {
	return id == e.errorState || e.stopStates.Contains(id)
}

// Stop marks the engine Stopped if the current state is already its error
// state or a registered stop state. If it isn't and wait is true, Stop
// blocks once on the internal condition variable and retries a single
// time before giving up, matching the original's single-retry contract.
// If wait is false, Stop fails immediately instead of blocking.
func (e *Engine[E, A]) Stop(wait bool) bool {
	e.th.Lock()
	defer e.th.Unlock()
	return e.stopLocked(wait)
}

func (e *Engine[E, A]) stopLocked(wait bool) bool {
	if e.isStopOrErrorLocked(e.current) {
		e.watchdog.Disable()
		e.status = Stopped
		return true
	}
	if !wait {
		return false
	}
	e.stopCond.Wait()
	return e.stopLocked(false)
}

// Raise enqueues event at the back of the pending-event queue (FIFO) if
// the current state (or an ancestor) accepts it. It reports whether the
// event was accepted and queued.
func (e *Engine[E, A]) Raise(event E, args A) bool {
	e.th.Lock()
	defer e.th.Unlock()
	if !e.acceptLocked(event) {
		return false
	}
	e.queue.PushBack(queuedEvent[E, A]{event: event, args: args})
	return true
}

// Transition enqueues event at the front of the pending-event queue,
// preempting already-queued events, and marks a transition as in flight.
// It fails if a handler-initiated transition is already in flight or the
// event is not accepted from the current state.
func (e *Engine[E, A]) Transition(event E, args A) bool {
	e.th.Lock()
	defer e.th.Unlock()
	if e.inTransition {
		return false
	}
	if !e.acceptLocked(event) {
		return false
	}
	e.queue.PushFront(queuedEvent[E, A]{event: event, args: args})
	e.inTransition = true
	return true
}

// Step returns the engine's current status immediately, without touching
// the queue, unless the engine is Running. Otherwise it resets the
// watchdog unconditionally, dequeues a single pending event, and looks up
// the transition table (climbing the parent chain from the current
// state). If a row is found, it advances the current state to the row's
// target and invokes that state's handler unconditionally — a transition's
// guard is informational only and never vetoes the step, matching the
// original's documented behaviour. The target's handler runs with the
// engine lock released, so it may call Transition to queue a follow-up
// event at the front of the queue. A failed invocation moves the engine to
// its configured error state, replays the saved argument bundle into that
// state's own handler, and returns Fault; success returns StateChanged.
// Step returns
// StateUnchanged if the queue is empty or no transition is found for the
// dequeued event.
func (e *Engine[E, A]) Step() Status {
	e.th.Lock()
	defer e.th.Unlock()

	if e.status != Running {
		return e.status
	}

	e.watchdog.Reset()

	qe, ok := e.queue.PopFront()
	if !ok {
		e.inTransition = false
		return StateUnchanged
	}

	tr, found := e.table.Lookup(e.current, qe.event, e.parentOfLocked)
	if !found {
		e.inTransition = false
		return StateUnchanged
	}

	next := tr.Next()
	st, ok := e.states.Get(next)
	if !ok {
		e.toErrorStateLocked(qe.args)
		e.inTransition = false
		return Fault
	}

	e.current = next
	e.th.Unlock()
	invoked := st.Invoke(qe.args)
	e.th.Lock()
	if !invoked {
		e.toErrorStateLocked(qe.args)
		e.inTransition = false
		return Fault
	}

	e.inTransition = false
	if e.isStopOrErrorLocked(e.current) {
		e.stopCond.Signal()
	}
	e.logDebug("transitioned to state %v on event %v", e.current, qe.event)
	return StateChanged
}

// toErrorStateLocked moves the engine to its configured error state and
// replays args — the argument bundle saved from the event that triggered
// the failure — into that state's own handler, matching the original's
// error-recovery replay contract.
func (e *Engine[E, A]) toErrorStateLocked(args A) {
	e.current = e.errorState
	e.status = Error
	if st, ok := e.states.Get(e.errorState); ok {
		st.Invoke(args)
	}
	e.logCritical("engine entered error state on failed handler invocation")
	e.stopCond.Signal()
}

// CurrentState returns the engine's current state.
func (e *Engine[E, A]) CurrentState() primitives.StateID {
	e.th.Lock()
	defer e.th.Unlock()
	return e.current
}

// StatusOf returns the engine's current Status.
func (e *Engine[E, A]) StatusOf() Status {
	e.th.Lock()
	defer e.th.Unlock()
	return e.status
}

// Clone returns a deep copy of the engine's registered states, transition
// table, alphabet, stop states, pending event queue, and lifecycle
// position (including whether a handler-initiated transition is in
// flight), under its own independent lock and an inert watchdog (sharing
// a wall-clock timer between two engines would double-fire escalation).
func (e *Engine[E, A]) Clone() *Engine[E, A] {
	e.th.Lock()
	defer e.th.Unlock()

	clone := &Engine[E, A]{
		th:           &policy.MutexThreading{},
		states:       policy.NewOrderedMap[primitives.StateID, State[E, A]](),
		table:        NewTransitionTable[E, A](),
		alphabet:     policy.NewSet[E](),
		stopStates:   policy.NewSet[primitives.StateID](),
		queue:        policy.NewDeque[queuedEvent[E, A]](),
		startState:   e.startState,
		errorState:   e.errorState,
		current:      e.current,
		inTransition: e.inTransition,
		status:       e.status,
		silent:       e.silent,
		logger:       e.logger,
		watchdog:     noopWatchdog{},
	}
	clone.stopCond = clone.th.NewCond()

	for _, id := range e.states.Keys() {
		st, _ := e.states.Get(id)
		clone.states.Set(id, st)
	}
	e.table.ForEach(func(state primitives.StateID, _ E, tr Transition[E, A]) {
		clone.table.Insert(state, tr)
	})
	for _, ev := range e.alphabet.Items() {
		clone.alphabet.Add(ev)
	}
	for _, id := range e.stopStates.Items() {
		clone.stopStates.Add(id)
	}
	for _, qe := range e.queue.Items() {
		clone.queue.PushBack(qe)
	}
	return clone
}

// Swap exchanges the full registered state and lifecycle position of e and
// other in place, locking both engines in address order to avoid an ABBA
// deadlock against a concurrent Swap in the opposite direction. Logger and
// watchdog are exchanged along with the data; the threading policy (and
// with it the lock and stop condition) is not, since each engine keeps its
// own.
func (e *Engine[E, A]) Swap(other *Engine[E, A]) {
	if e == other {
		return
	}
	first, second := e, other
	if uintptr(unsafe.Pointer(e)) > uintptr(unsafe.Pointer(other)) {
		first, second = other, e
	}
	first.th.Lock()
	defer first.th.Unlock()
	second.th.Lock()
	defer second.th.Unlock()

	e.states, other.states = other.states, e.states
	e.table, other.table = other.table, e.table
	e.alphabet, other.alphabet = other.alphabet, e.alphabet
	e.stopStates, other.stopStates = other.stopStates, e.stopStates
	e.startState, other.startState = other.startState, e.startState
	e.errorState, other.errorState = other.errorState, e.errorState
	e.current, other.current = other.current, e.current
	e.queue, other.queue = other.queue, e.queue
	e.inTransition, other.inTransition = other.inTransition, e.inTransition
	e.status, other.status = other.status, e.status
	e.silent, other.silent = other.silent, e.silent
	e.logger, other.logger = other.logger, e.logger
	e.watchdog, other.watchdog = other.watchdog, e.watchdog
}
