package quest

import (
	"context"
	"fmt"
)

// Handler performs the side effect behind one action name. Parameters arrive
// verbatim from the definition document.
type Handler func(ctx context.Context, params map[string]any) error

// Dispatcher maps action names to handlers. It is the only place side
// effects occur; the engine itself never calls it. Registration happens at
// application startup, and the table is scoped to this object rather than
// process-wide.
type Dispatcher struct {
	handlers map[string]Handler
	logger   Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
	}
}

// SetLogger sets the logger for dispatch outcomes.
func (d *Dispatcher) SetLogger(logger Logger) {
	d.logger = logger
}

// Register maps an action name to a handler, replacing any previous mapping.
func (d *Dispatcher) Register(name string, handler Handler) {
	d.handlers[name] = handler
}

// Dispatch invokes the handler registered for the action's name, passing the
// action's parameters through. An unmapped name fails with ErrNoHandler; the
// process is never terminated on the dispatcher's account.
func (d *Dispatcher) Dispatch(ctx context.Context, action Action) error {
	handler, ok := d.handlers[action.Name()]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrNoHandler, action.Name())

		dispatchesTotal.WithLabelValues(action.Name(), outcomeError).Inc()

		if d.logger != nil {
			d.logger.ActionDispatched(ctx, action.Name(), err)
		}

		return err
	}

	err := handler(ctx, action.Parameters())

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}

	dispatchesTotal.WithLabelValues(action.Name(), outcome).Inc()

	if d.logger != nil {
		d.logger.ActionDispatched(ctx, action.Name(), err)
	}

	return err
}

// Runner couples an engine with a dispatcher, performing the caller-side
// protocol the engine deliberately leaves out: entry actions are dispatched
// once after Start and once after every Fire that takes a transition.
type Runner struct {
	engine     *Engine
	dispatcher *Dispatcher
}

// NewRunner creates a runner driving the given engine and dispatcher.
func NewRunner(engine *Engine, dispatcher *Dispatcher) *Runner {
	return &Runner{
		engine:     engine,
		dispatcher: dispatcher,
	}
}

// Engine returns the driven engine.
func (r *Runner) Engine() *Engine {
	return r.engine
}

// Start starts the engine and dispatches the initial state's entry actions
// in declaration order. The first handler error aborts and is returned;
// remaining actions are not dispatched.
func (r *Runner) Start(ctx context.Context) error {
	err := r.engine.Start(ctx)
	if err != nil {
		return err
	}

	return r.dispatchEntryActions(ctx)
}

// Fire delivers an event to the engine. When a transition is taken, the new
// state's entry actions are dispatched before returning. The moved result is
// true whenever the engine moved, even if dispatching then failed.
func (r *Runner) Fire(ctx context.Context, event string) (bool, error) {
	moved, err := r.engine.Fire(ctx, event)
	if err != nil || !moved {
		return moved, err
	}

	return true, r.dispatchEntryActions(ctx)
}

func (r *Runner) dispatchEntryActions(ctx context.Context) error {
	for _, action := range r.engine.EntryActions() {
		err := r.dispatcher.Dispatch(ctx, action)
		if err != nil {
			return WrapStateError(r.engine.Current(), err)
		}
	}

	return nil
}
