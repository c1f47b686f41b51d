package quest

import (
	"errors"
	"fmt"
)

// Predefined error types. The fine-grained sentinels wrap one of the five
// root conditions so callers can match at either level with errors.Is.
var (
	// ErrDefinitionNotFound indicates that the backing document could not be located.
	ErrDefinitionNotFound = errors.New("definition not found")
	// ErrMalformedDefinition indicates that required structural fields are absent.
	ErrMalformedDefinition = errors.New("malformed definition")
	// ErrUnknownState indicates that a state name does not resolve to a declared state.
	ErrUnknownState = errors.New("unknown state")
	// ErrAlreadyStarted indicates that Start was called on a started engine.
	ErrAlreadyStarted = errors.New("engine already started")
	// ErrNotStarted indicates that Fire was called before Start.
	ErrNotStarted = errors.New("engine not started")
	// ErrNoHandler indicates that no handler is registered for an action name.
	ErrNoHandler = errors.New("no handler registered for action")

	// ErrQuestNameRequired indicates that the quest_name key is missing.
	ErrQuestNameRequired = fmt.Errorf("%w: quest_name is required", ErrMalformedDefinition)
	// ErrInitialStateRequired indicates that the initial_state key is missing.
	ErrInitialStateRequired = fmt.Errorf("%w: initial_state is required", ErrMalformedDefinition)
	// ErrStatesRequired indicates that the states key is missing.
	ErrStatesRequired = fmt.Errorf("%w: states is required", ErrMalformedDefinition)
	// ErrStatesNotMapping indicates that the states key is not a mapping.
	ErrStatesNotMapping = fmt.Errorf("%w: states must be a mapping", ErrMalformedDefinition)
	// ErrStateNotMapping indicates that a state body is not a mapping.
	ErrStateNotMapping = fmt.Errorf("%w: state body must be a mapping", ErrMalformedDefinition)
	// ErrActionNameRequired indicates that an on_enter item is missing the action key.
	ErrActionNameRequired = fmt.Errorf("%w: on_enter item requires 'action'", ErrMalformedDefinition)
	// ErrActionNotMapping indicates that an on_enter item is not a mapping.
	ErrActionNotMapping = fmt.Errorf("%w: on_enter item must be a mapping", ErrMalformedDefinition)
	// ErrTransitionToRequired indicates that a transition is missing the to key.
	ErrTransitionToRequired = fmt.Errorf("%w: transition requires 'to'", ErrMalformedDefinition)
	// ErrTransitionOnRequired indicates that a transition is missing the on key.
	ErrTransitionOnRequired = fmt.Errorf("%w: transition requires 'on'", ErrMalformedDefinition)
	// ErrTransitionNotMapping indicates that a non-null transition entry is not a mapping.
	ErrTransitionNotMapping = fmt.Errorf("%w: transition must be a mapping", ErrMalformedDefinition)
)

// StateError wraps an error with state context.
type StateError struct {
	State string
	Err   error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state %s: %v", e.State, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// TransitionError wraps an error with transition context.
type TransitionError struct {
	From  string
	To    string
	Event string
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s on %q: %v", e.From, e.To, e.Event, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// WrapStateError wraps an error with state context.
func WrapStateError(state string, err error) error {
	if err == nil {
		return nil
	}

	return &StateError{
		State: state,
		Err:   err,
	}
}

// WrapTransitionError wraps an error with transition context.
func WrapTransitionError(from, to, event string, err error) error {
	if err == nil {
		return nil
	}

	return &TransitionError{
		From:  from,
		To:    to,
		Event: event,
		Err:   err,
	}
}
