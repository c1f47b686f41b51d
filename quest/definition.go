// Package quest provides a declarative finite state machine engine for quest
// chronicles: a definition format describing named states, per-state entry
// actions, and event-triggered transitions, paired with a runtime engine that
// walks a single active state as external events arrive.
package quest

// Action is an instruction to execute on entering a state. The action name
// selects a handler; the engine treats it as opaque and passes parameters
// through verbatim.
type Action struct {
	name       string
	parameters map[string]any
}

// NewAction creates an action. Parameters may be nil.
func NewAction(name string, parameters map[string]any) Action {
	if parameters == nil {
		parameters = map[string]any{}
	}

	return Action{
		name:       name,
		parameters: parameters,
	}
}

// Name returns the handler identifier.
func (a Action) Name() string {
	return a.name
}

// Parameters returns the action's parameters. The returned map is shared;
// callers must treat it as read-only.
func (a Action) Parameters() map[string]any {
	return a.parameters
}

// Transition is a directed, event-triggered edge out of a state.
type Transition struct {
	to string
	on string
}

// NewTransition creates a transition to the target state triggered by the
// given event name.
func NewTransition(to, on string) Transition {
	return Transition{
		to: to,
		on: on,
	}
}

// To returns the destination state name.
func (t Transition) To() string {
	return t.to
}

// On returns the event name that activates this edge. Matching is an exact,
// case-sensitive string comparison.
func (t Transition) On() string {
	return t.on
}

// State is a named node in a quest definition.
type State struct {
	name         string
	description  string
	entryActions []Action
	transitions  []Transition
}

// NewState creates a state with the given entry actions and transitions,
// both kept in declaration order.
func NewState(name, description string, entryActions []Action, transitions []Transition) *State {
	return &State{
		name:         name,
		description:  description,
		entryActions: entryActions,
		transitions:  transitions,
	}
}

// Name returns the state name, unique within a definition.
func (s *State) Name() string {
	return s.name
}

// Description returns the free-text description. It carries no semantics.
func (s *State) Description() string {
	return s.description
}

// EntryActions returns the actions to execute every time this state becomes
// current, in declaration order. The returned slice is shared; callers must
// treat it as read-only.
func (s *State) EntryActions() []Action {
	return s.entryActions
}

// Transitions returns the outgoing edges in declaration order.
func (s *State) Transitions() []Transition {
	return s.transitions
}

// Definition is an immutable quest blueprint: states, transitions, and an
// initial state. One definition may back any number of concurrently running
// engines since it is read-only after load.
type Definition struct {
	name         string
	initialState string
	states       map[string]*State
}

// NewDefinition assembles a definition. The states map is keyed by state
// name; transition targets are not checked here (see Load).
func NewDefinition(name, initialState string, states map[string]*State) *Definition {
	return &Definition{
		name:         name,
		initialState: initialState,
		states:       states,
	}
}

// Name returns the quest name, used for logging and diagnostics.
func (d *Definition) Name() string {
	return d.name
}

// InitialState returns the name of the state entered on Start.
func (d *Definition) InitialState() string {
	return d.initialState
}

// State looks up a state by name.
func (d *Definition) State(name string) (*State, bool) {
	state, ok := d.states[name]

	return state, ok
}

// States returns the state table. The returned map is shared; callers must
// treat it as read-only.
func (d *Definition) States() map[string]*State {
	return d.states
}
