package questtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/questforge/chronicler/quest"
)

// PatrolDoc is a small two-state quest document: a guard idles until an
// intruder is seen, raises the alarm, and stands down on all clear.
const PatrolDoc = `
quest_name: patrol
initial_state: idle
states:
  idle:
    description: waiting for trouble
    on_enter:
      - action: log_message
        message: waiting
    transitions:
      - to: alert
        on: intruder_seen
  alert:
    on_enter:
      - action: log_message
        message: alarm!
    transitions:
      - to: idle
        on: all_clear
`

// PatrolDefinition loads the patrol fixture.
func PatrolDefinition(t *testing.T) *quest.Definition {
	t.Helper()

	def, err := quest.Parse([]byte(PatrolDoc))
	require.NoError(t, err, "failed to parse patrol fixture")

	return def
}
