package quest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// reservedActionKey is the on_enter item key that names the handler; every
// other key on the item passes through as a parameter.
const reservedActionKey = "action"

// Load builds a Definition from a generic parsed tree, the shape produced by
// unmarshalling a YAML document into map[string]any.
//
// Load validates structure only. Transition targets are deliberately NOT
// resolved here: documents may declare transitions into states defined by a
// companion document or a later merge step, so target resolution is deferred
// to the engine at the moment a transition is taken. Unreachable states and
// dangling targets never block loading.
func Load(tree map[string]any) (*Definition, error) {
	name, ok := tree["quest_name"].(string)
	if !ok || name == "" {
		return nil, ErrQuestNameRequired
	}

	initialState, ok := tree["initial_state"].(string)
	if !ok || initialState == "" {
		return nil, ErrInitialStateRequired
	}

	statesRaw, ok := tree["states"]
	if !ok {
		return nil, ErrStatesRequired
	}

	statesTree, ok := statesRaw.(map[string]any)
	if !ok {
		return nil, ErrStatesNotMapping
	}

	states := make(map[string]*State, len(statesTree))

	for stateName, bodyRaw := range statesTree {
		state, err := loadState(stateName, bodyRaw)
		if err != nil {
			return nil, fmt.Errorf("quest %s: %w", name, err)
		}

		states[stateName] = state
	}

	return NewDefinition(name, initialState, states), nil
}

// Parse unmarshals YAML bytes into a generic tree and loads it.
func Parse(data []byte) (*Definition, error) {
	var tree map[string]any

	err := yaml.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDefinition, err)
	}

	return Load(tree)
}

// LoadFile reads a definition document from the filesystem. A missing file
// surfaces ErrDefinitionNotFound.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, wrapReadError(path, err)
	}

	return Parse(data)
}

// LoadFS reads a definition document from an fs.FS, typically an embed.FS.
func LoadFS(fsys fs.FS, path string) (*Definition, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, wrapReadError(path, err)
	}

	return Parse(data)
}

func wrapReadError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrDefinitionNotFound, path, err)
	}

	return fmt.Errorf("failed to read definition %q: %w", path, err)
}

// loadState builds one State from its mapping key and body. A null body is
// tolerated and yields a state with no actions or transitions.
func loadState(name string, bodyRaw any) (*State, error) {
	if bodyRaw == nil {
		return NewState(name, "", nil, nil), nil
	}

	body, ok := bodyRaw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("state %s: %w", name, ErrStateNotMapping)
	}

	description, _ := body["description"].(string)

	entryActions, err := loadEntryActions(name, body["on_enter"])
	if err != nil {
		return nil, err
	}

	transitions, err := loadTransitions(name, body["transitions"])
	if err != nil {
		return nil, err
	}

	return NewState(name, description, entryActions, transitions), nil
}

// loadEntryActions builds the on_enter action sequence. The reserved key
// "action" becomes the action name; all remaining keys pass through verbatim
// as parameters.
func loadEntryActions(stateName string, raw any) ([]Action, error) {
	items, _ := raw.([]any)
	if len(items) == 0 {
		return nil, nil
	}

	actions := make([]Action, 0, len(items))

	for i, itemRaw := range items {
		item, ok := itemRaw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("state %s, on_enter %d: %w", stateName, i, ErrActionNotMapping)
		}

		actionName, ok := item[reservedActionKey].(string)
		if !ok || actionName == "" {
			return nil, fmt.Errorf("state %s, on_enter %d: %w", stateName, i, ErrActionNameRequired)
		}

		parameters := make(map[string]any, len(item)-1)

		for key, value := range item {
			if key == reservedActionKey {
				continue
			}

			parameters[key] = value
		}

		actions = append(actions, NewAction(actionName, parameters))
	}

	return actions, nil
}

// loadTransitions builds the transition sequence in declaration order.
// Null and empty entries are skipped silently to tolerate sparse or
// templated documents.
func loadTransitions(stateName string, raw any) ([]Transition, error) {
	items, _ := raw.([]any)
	if len(items) == 0 {
		return nil, nil
	}

	transitions := make([]Transition, 0, len(items))

	for i, itemRaw := range items {
		if itemRaw == nil {
			continue
		}

		item, ok := itemRaw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("state %s, transition %d: %w", stateName, i, ErrTransitionNotMapping)
		}

		if len(item) == 0 {
			continue
		}

		target, ok := item["to"].(string)
		if !ok || target == "" {
			return nil, fmt.Errorf("state %s, transition %d: %w", stateName, i, ErrTransitionToRequired)
		}

		event, ok := item["on"].(string)
		if !ok || event == "" {
			return nil, fmt.Errorf("state %s, transition %d: %w", stateName, i, ErrTransitionOnRequired)
		}

		transitions = append(transitions, NewTransition(target, event))
	}

	return transitions, nil
}
