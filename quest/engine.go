package quest

import (
	"context"

	"github.com/google/uuid"
)

// Engine is a mutable cursor walking one immutable Definition. It tracks the
// active state and steps it forward as events arrive via Fire.
//
// An engine has exactly one logical owner. Calls against one instance must be
// serialized by that owner; the shared Definition needs no coordination since
// it is read-only. Create one engine per running quest.
type Engine struct {
	def        *Definition
	instanceID string
	current    *State
	started    bool
	logger     Logger
}

// NewEngine creates an engine over a definition. The engine is not started;
// call Start to enter the initial state.
func NewEngine(def *Definition) *Engine {
	return &Engine{
		def:        def,
		instanceID: uuid.NewString(),
	}
}

// SetLogger sets the logger for engine lifecycle events.
func (e *Engine) SetLogger(logger Logger) {
	e.logger = logger
}

// Definition returns the definition backing this engine.
func (e *Engine) Definition() *Definition {
	return e.def
}

// InstanceID returns the unique identifier of this running instance, used
// for logs and traces.
func (e *Engine) InstanceID() string {
	return e.instanceID
}

// Current returns the name of the active state, or "" before Start.
func (e *Engine) Current() string {
	if e.current == nil {
		return ""
	}

	return e.current.Name()
}

// Started reports whether Start has succeeded. There is no restart
// primitive; once started, an engine stays started.
func (e *Engine) Started() bool {
	return e.started
}

// Start resolves the definition's initial state and makes it current.
// It fails with ErrAlreadyStarted on a started engine and with
// ErrUnknownState if the initial state is not declared.
//
// The initial state's entry actions are NOT executed here; the caller reads
// them via EntryActions and feeds them to a dispatcher. The engine stays
// ignorant of how actions are performed.
func (e *Engine) Start(ctx context.Context) (err error) {
	ctx, span := startQuestSpan(ctx, e)

	defer func() {
		endSpan(span, err)
	}()

	if e.started {
		return ErrAlreadyStarted
	}

	initial, ok := e.def.State(e.def.InitialState())
	if !ok {
		return WrapStateError(e.def.InitialState(), ErrUnknownState)
	}

	e.current = initial
	e.started = true

	startsTotal.WithLabelValues(e.def.Name()).Inc()

	if e.logger != nil {
		e.logger.QuestStarted(ctx, e.def.Name(), e.instanceID, initial.Name())
	}

	return nil
}

// Fire delivers one event to the engine. It scans the current state's
// transitions in declaration order and takes the first whose trigger matches
// the event name exactly; matching is case-sensitive with no wildcards or
// guards. A successful match moves the cursor and returns true.
//
// No matching transition is a normal outcome, not a failure: events are
// broadcast-like, and a quest is free to ignore events meant for other
// quests or irrelevant to its current state. Fire then returns (false, nil)
// and leaves the cursor untouched.
//
// A matched transition whose target is not declared fails with
// ErrUnknownState; this is the deferred validation point for targets that
// Load deliberately does not check. A single call performs at most one hop.
func (e *Engine) Fire(ctx context.Context, event string) (moved bool, err error) {
	ctx, span := startFireSpan(ctx, e, event)

	defer func() {
		endSpan(span, err)
	}()

	if !e.started {
		return false, ErrNotStarted
	}

	for _, transition := range e.current.Transitions() {
		if transition.On() != event {
			continue
		}

		target, ok := e.def.State(transition.To())
		if !ok {
			return false, WrapTransitionError(e.current.Name(), transition.To(), event, ErrUnknownState)
		}

		from := e.current.Name()
		e.current = target

		recordTransition(span, from, target.Name())
		transitionsTotal.WithLabelValues(e.def.Name(), from, target.Name(), event).Inc()

		if e.logger != nil {
			e.logger.TransitionTaken(ctx, e.def.Name(), from, target.Name(), event)
		}

		return true, nil
	}

	eventsIgnoredTotal.WithLabelValues(e.def.Name(), e.current.Name()).Inc()

	if e.logger != nil {
		e.logger.EventIgnored(ctx, e.def.Name(), e.current.Name(), event)
	}

	return false, nil
}

// EntryActions returns the current state's entry actions in declaration
// order, or an empty sequence before Start. Absence of activity is expressed
// as an empty result, never an error.
func (e *Engine) EntryActions() []Action {
	if !e.started {
		return nil
	}

	return e.current.EntryActions()
}
