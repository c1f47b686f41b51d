// Package visualizer generates Mermaid state diagrams from quest definitions.
package visualizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/questforge/chronicler/quest"
)

// Visualizer errors.
var (
	ErrDefinitionNil  = errors.New("definition cannot be nil")
	ErrNoInitialState = errors.New("definition must have an initial state")
)

// GenerateMermaid converts a Definition to a Mermaid state diagram.
func GenerateMermaid(def *quest.Definition) (string, error) {
	return GenerateMermaidWithOptions(def, DefaultOptions())
}

// GenerateMermaidFromFile loads a definition document and generates a
// Mermaid diagram.
func GenerateMermaidFromFile(path string) (string, error) {
	def, err := quest.LoadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load definition: %w", err)
	}

	return GenerateMermaid(def)
}

// GenerateMermaidWithOptions generates a Mermaid diagram with custom options.
// States are emitted in sorted order so output is stable.
func GenerateMermaidWithOptions(def *quest.Definition, opts Options) (string, error) {
	if def == nil {
		return "", ErrDefinitionNil
	}

	if def.InitialState() == "" {
		return "", ErrNoInitialState
	}

	var sb strings.Builder

	sb.WriteString("```mermaid\n")
	sb.WriteString(fmt.Sprintf("stateDiagram-%s\n", opts.Direction))

	// Initial state marker
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", def.InitialState()))

	highlightMap := make(map[string]bool)
	for _, state := range opts.HighlightPath {
		highlightMap[state] = true
	}

	names := make([]string, 0, len(def.States()))
	for name := range def.States() {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		state, _ := def.State(name)

		if opts.ShowActions && len(state.EntryActions()) > 0 {
			actionNames := make([]string, len(state.EntryActions()))
			for i, action := range state.EntryActions() {
				actionNames[i] = action.Name()
			}

			sb.WriteString(fmt.Sprintf("    %s: %s\\n[%s]\n",
				name, name, strings.Join(actionNames, ", ")))
		}

		switch {
		case highlightMap[name]:
			sb.WriteString(fmt.Sprintf("    class %s highlighted\n", name))
		case len(state.Transitions()) == 0:
			sb.WriteString(fmt.Sprintf("    class %s deadEnd\n", name))
		}

		for _, transition := range state.Transitions() {
			label := ""
			if opts.ShowEvents {
				label = ": " + transition.On()
			}

			sb.WriteString(fmt.Sprintf("    %s --> %s%s\n", name, transition.To(), label))
		}
	}

	sb.WriteString("\n")
	sb.WriteString("    classDef deadEnd fill:#c8e6c9,stroke:#2e7d32,stroke-width:2px\n")
	sb.WriteString("    classDef highlighted fill:#fff9c4,stroke:#f57f17,stroke-width:3px\n")
	sb.WriteString("```\n")

	return sb.String(), nil
}
