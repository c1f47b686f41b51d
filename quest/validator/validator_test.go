package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questforge/chronicler/quest"
)

func parse(t *testing.T, doc string) *quest.Definition {
	t.Helper()

	def, err := quest.Parse([]byte(doc))
	require.NoError(t, err)

	return def
}

func codes(result Result) []string {
	out := make([]string, 0, len(result.Findings))
	for _, finding := range result.Findings {
		out = append(out, finding.Code)
	}

	return out
}

func TestValidate_CleanDefinition(t *testing.T) {
	t.Parallel()

	def := parse(t, `
quest_name: patrol
initial_state: idle
states:
  idle:
    transitions:
      - to: alert
        on: intruder_seen
  alert:
    transitions:
      - to: idle
        on: all_clear
`)

	result := Validate(def)
	assert.True(t, result.Clean())
	assert.Empty(t, result.Findings)
}

func TestValidate_DanglingTarget(t *testing.T) {
	t.Parallel()

	def := parse(t, `
quest_name: dangling
initial_state: start
states:
  start:
    transitions:
      - to: missing
        on: go
`)

	result := Validate(def)
	assert.Contains(t, codes(result), "DANGLING_TARGET")

	// The definition still loads and starts; findings never block.
	engine := quest.NewEngine(def)
	require.NoError(t, engine.Start(context.Background()))
}

func TestValidate_UnreachableState(t *testing.T) {
	t.Parallel()

	def := parse(t, `
quest_name: island
initial_state: mainland
states:
  mainland: {}
  island:
    transitions:
      - to: mainland
        on: swim
`)

	result := Validate(def)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "UNREACHABLE_STATE", result.Findings[0].Code)
	assert.Equal(t, "island", result.Findings[0].State)
}

func TestValidate_DuplicateTrigger(t *testing.T) {
	t.Parallel()

	def := parse(t, `
quest_name: fork
initial_state: crossroads
states:
  crossroads:
    transitions:
      - to: left
        on: walk
      - to: right
        on: walk
  left: {}
  right: {}
`)

	result := Validate(def)
	assert.Contains(t, codes(result), "DUPLICATE_TRIGGER")
}

func TestValidate_EmptyQuest(t *testing.T) {
	t.Parallel()

	def, err := quest.Load(map[string]any{
		"quest_name":    "void",
		"initial_state": "nowhere",
		"states":        map[string]any{},
	})
	require.NoError(t, err)

	result := Validate(def)
	assert.Contains(t, codes(result), "EMPTY_QUEST")
}
