// Package validator provides opt-in lint checks for quest definitions.
//
// The loader deliberately tolerates dangling transition targets, unreachable
// states, and duplicate triggers; none of them block loading or running.
// This package surfaces them as findings for authoring-time feedback. It is
// never called by the loader or the engine.
package validator

import (
	"github.com/questforge/chronicler/quest"
)

// Result contains the findings of validating a quest definition.
type Result struct {
	Findings []Finding
}

// Clean reports whether no findings were raised.
func (r Result) Clean() bool {
	return len(r.Findings) == 0
}

// Finding is a single non-fatal issue in a definition.
type Finding struct {
	Code    string // Finding code like "DANGLING_TARGET", "UNREACHABLE_STATE"
	Message string // Human-readable message
	State   string // State name if applicable
}

// Validate runs the default rules against a definition.
func Validate(def *quest.Definition) Result {
	return ValidateWithRules(def, DefaultRules())
}

// ValidateWithRules runs custom rules against a definition.
func ValidateWithRules(def *quest.Definition, rules []Rule) Result {
	var result Result

	for _, rule := range rules {
		result.Findings = append(result.Findings, rule.Check(def)...)
	}

	return result
}

// ValidateFile loads a definition document and validates it.
func ValidateFile(path string) (Result, error) {
	def, err := quest.LoadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Validate(def), nil
}
