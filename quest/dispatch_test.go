package quest

import (
	"context"
	"errors"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

var errHandlerFailed = errors.New("handler failed")

func TestDispatcherDispatch(t *testing.T) {
	t.Parallel()

	var gotParams map[string]any

	calls := atomic.NewInt64(0)

	dispatcher := NewDispatcher()
	dispatcher.Register("log_message", func(_ context.Context, params map[string]any) error {
		calls.Inc()
		gotParams = params

		return nil
	})

	action := NewAction("log_message", map[string]any{"message": "waiting"})
	require.NoError(t, dispatcher.Dispatch(context.Background(), action))

	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, map[string]any{"message": "waiting"}, gotParams)
}

func TestDispatcherNoHandler(t *testing.T) {
	t.Parallel()

	dispatcher := NewDispatcher()
	dispatcher.SetLogger(NewSlogLogger(slogt.New(t)))

	err := dispatcher.Dispatch(context.Background(), NewAction("unmapped", nil))
	require.ErrorIs(t, err, ErrNoHandler)
}

func TestDispatcherHandlerError(t *testing.T) {
	t.Parallel()

	dispatcher := NewDispatcher()
	dispatcher.Register("explode", func(_ context.Context, _ map[string]any) error {
		return errHandlerFailed
	})

	err := dispatcher.Dispatch(context.Background(), NewAction("explode", nil))
	require.ErrorIs(t, err, errHandlerFailed)
}

func TestRunnerDispatchesEntryActions(t *testing.T) {
	t.Parallel()

	var dispatched []string

	dispatcher := NewDispatcher()
	dispatcher.Register("log_message", func(_ context.Context, params map[string]any) error {
		message, _ := params["message"].(string)
		dispatched = append(dispatched, message)

		return nil
	})

	ctx := context.Background()
	runner := NewRunner(NewEngine(patrolDefinition(t)), dispatcher)

	// Start dispatches the initial state's entry actions exactly once.
	require.NoError(t, runner.Start(ctx))
	assert.Equal(t, []string{"waiting"}, dispatched)

	moved, err := runner.Fire(ctx, "intruder_seen")
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []string{"waiting", "alarm!"}, dispatched)

	// An ignored event dispatches nothing.
	moved, err = runner.Fire(ctx, "unknown_event")
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, []string{"waiting", "alarm!"}, dispatched)

	moved, err = runner.Fire(ctx, "all_clear")
	require.NoError(t, err)
	assert.True(t, moved)

	// Re-entering a state re-runs its entry actions.
	assert.Equal(t, []string{"waiting", "alarm!", "waiting"}, dispatched)
}

func TestRunnerOrderedDispatch(t *testing.T) {
	t.Parallel()

	def, err := Parse([]byte(`
quest_name: ceremony
initial_state: opening
states:
  opening:
    on_enter:
      - action: step
        rank: first
      - action: step
        rank: second
      - action: step
        rank: third
`))
	require.NoError(t, err)

	var ranks []string

	dispatcher := NewDispatcher()
	dispatcher.Register("step", func(_ context.Context, params map[string]any) error {
		rank, _ := params["rank"].(string)
		ranks = append(ranks, rank)

		return nil
	})

	runner := NewRunner(NewEngine(def), dispatcher)
	require.NoError(t, runner.Start(context.Background()))

	assert.Equal(t, []string{"first", "second", "third"}, ranks)
}

func TestRunnerStartHandlerError(t *testing.T) {
	t.Parallel()

	dispatcher := NewDispatcher()
	dispatcher.Register("log_message", func(_ context.Context, _ map[string]any) error {
		return errHandlerFailed
	})

	runner := NewRunner(NewEngine(patrolDefinition(t)), dispatcher)

	err := runner.Start(context.Background())
	require.ErrorIs(t, err, errHandlerFailed)

	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "idle", stateErr.State)

	// The engine itself started; only dispatching failed.
	assert.True(t, runner.Engine().Started())
}

func TestRunnerFireReportsMoveOnDispatchError(t *testing.T) {
	t.Parallel()

	dispatcher := NewDispatcher()
	dispatcher.Register("log_message", func(_ context.Context, params map[string]any) error {
		if params["message"] == "alarm!" {
			return errHandlerFailed
		}

		return nil
	})

	ctx := context.Background()
	runner := NewRunner(NewEngine(patrolDefinition(t)), dispatcher)
	require.NoError(t, runner.Start(ctx))

	moved, err := runner.Fire(ctx, "intruder_seen")
	require.ErrorIs(t, err, errHandlerFailed)

	// The transition was taken before dispatching failed.
	assert.True(t, moved)
	assert.Equal(t, "alert", runner.Engine().Current())
}
