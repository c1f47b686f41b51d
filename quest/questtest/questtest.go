// Package questtest provides testing utilities for quest definitions:
// canned fixtures, a recording dispatcher, and a scripted scenario runner.
package questtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/questforge/chronicler/quest"
)

// Recorded is one dispatched action captured by a Recorder.
type Recorded struct {
	Name   string
	Params map[string]any
}

// Recorder captures dispatched actions in order. Register it on a dispatcher
// for every action name a test expects to see.
type Recorder struct {
	actions []Recorded
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Handler returns a quest.Handler that records the given action name.
func (r *Recorder) Handler(name string) quest.Handler {
	return func(_ context.Context, params map[string]any) error {
		r.actions = append(r.actions, Recorded{Name: name, Params: params})

		return nil
	}
}

// Actions returns the recorded actions in dispatch order.
func (r *Recorder) Actions() []Recorded {
	return r.actions
}

// Names returns the recorded action names in dispatch order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.actions))
	for i, recorded := range r.actions {
		names[i] = recorded.Name
	}

	return names
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.actions = nil
}

// Step is one scripted event in a scenario.
type Step struct {
	Event     string
	WantMoved bool
	WantState string
}

// RunScenario starts a fresh engine over def and fires the scripted events
// in order, requiring each step's expected outcome. It returns the engine so
// callers can make further assertions.
func RunScenario(t *testing.T, def *quest.Definition, steps []Step) *quest.Engine {
	t.Helper()

	ctx := context.Background()
	engine := quest.NewEngine(def)
	require.NoError(t, engine.Start(ctx), "failed to start engine")

	for i, step := range steps {
		moved, err := engine.Fire(ctx, step.Event)
		require.NoError(t, err, "step %d: fire %q", i, step.Event)
		require.Equal(t, step.WantMoved, moved, "step %d: moved mismatch for %q", i, step.Event)

		if step.WantState != "" {
			require.Equal(t, step.WantState, engine.Current(), "step %d: state mismatch", i)
		}
	}

	return engine
}
