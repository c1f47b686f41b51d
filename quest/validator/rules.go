package validator

import (
	"fmt"
	"sort"

	"github.com/questforge/chronicler/quest"
)

// Rule checks a definition for one class of issue.
type Rule interface {
	Name() string
	Check(def *quest.Definition) []Finding
}

// DefaultRules returns the standard set of rules.
func DefaultRules() []Rule {
	return []Rule{
		&danglingTargetRule{},
		&unreachableStateRule{},
		&duplicateTriggerRule{},
		&emptyQuestRule{},
	}
}

// sortedStateNames returns the state names in a stable order so findings are
// deterministic across runs.
func sortedStateNames(def *quest.Definition) []string {
	names := make([]string, 0, len(def.States()))
	for name := range def.States() {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// danglingTargetRule finds transitions pointing at undeclared states. The
// engine only rejects these when the transition is taken; authoring-time this
// is usually a typo or a missing companion document.
type danglingTargetRule struct{}

func (r *danglingTargetRule) Name() string {
	return "DanglingTarget"
}

func (r *danglingTargetRule) Check(def *quest.Definition) []Finding {
	var findings []Finding

	for _, name := range sortedStateNames(def) {
		state, _ := def.State(name)

		for _, transition := range state.Transitions() {
			if _, ok := def.State(transition.To()); !ok {
				findings = append(findings, Finding{
					Code: "DANGLING_TARGET",
					Message: fmt.Sprintf("transition from %q on %q targets undeclared state %q",
						name, transition.On(), transition.To()),
					State: name,
				})
			}
		}
	}

	return findings
}

// unreachableStateRule finds states no event path reaches from the initial
// state.
type unreachableStateRule struct{}

func (r *unreachableStateRule) Name() string {
	return "UnreachableState"
}

func (r *unreachableStateRule) Check(def *quest.Definition) []Finding {
	reachable := map[string]bool{def.InitialState(): true}

	// Simple BFS over declared transitions
	queue := []string{def.InitialState()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		state, ok := def.State(current)
		if !ok {
			continue
		}

		for _, transition := range state.Transitions() {
			if !reachable[transition.To()] {
				reachable[transition.To()] = true
				queue = append(queue, transition.To())
			}
		}
	}

	var findings []Finding

	for _, name := range sortedStateNames(def) {
		if !reachable[name] {
			findings = append(findings, Finding{
				Code: "UNREACHABLE_STATE",
				Message: fmt.Sprintf("state %q cannot be reached from initial state %q",
					name, def.InitialState()),
				State: name,
			})
		}
	}

	return findings
}

// duplicateTriggerRule finds states declaring two transitions on the same
// event. The engine deterministically takes the first-declared one, masking
// the rest.
type duplicateTriggerRule struct{}

func (r *duplicateTriggerRule) Name() string {
	return "DuplicateTrigger"
}

func (r *duplicateTriggerRule) Check(def *quest.Definition) []Finding {
	var findings []Finding

	for _, name := range sortedStateNames(def) {
		state, _ := def.State(name)
		seen := make(map[string]bool)

		for _, transition := range state.Transitions() {
			if seen[transition.On()] {
				findings = append(findings, Finding{
					Code: "DUPLICATE_TRIGGER",
					Message: fmt.Sprintf("state %q declares multiple transitions on %q; only the first is ever taken",
						name, transition.On()),
					State: name,
				})
			}

			seen[transition.On()] = true
		}
	}

	return findings
}

// emptyQuestRule finds definitions with no states at all. Loading succeeds;
// Start then fails because the initial state cannot resolve.
type emptyQuestRule struct{}

func (r *emptyQuestRule) Name() string {
	return "EmptyQuest"
}

func (r *emptyQuestRule) Check(def *quest.Definition) []Finding {
	if len(def.States()) > 0 {
		return nil
	}

	return []Finding{{
		Code:    "EMPTY_QUEST",
		Message: fmt.Sprintf("quest %q declares no states", def.Name()),
	}}
}
