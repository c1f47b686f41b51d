package quest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer swaps the global tracer provider for an in-memory one.
func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	oldProvider := otel.GetTracerProvider()

	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		otel.SetTracerProvider(oldProvider)
	})

	return exporter
}

func attrMap(spans tracetest.SpanStubs, idx int) map[string]any {
	attrs := make(map[string]any)
	for _, attr := range spans[idx].Attributes {
		attrs[string(attr.Key)] = attr.Value.AsInterface()
	}

	return attrs
}

// Subtests share the exporter and the global tracer provider, so they run
// sequentially.
//
//nolint:paralleltest,tparallel // Test modifies global OTEL tracer provider
func TestSpans(t *testing.T) {
	exporter := setupTestTracer(t)

	t.Run("start span", func(t *testing.T) {
		exporter.Reset()

		engine := NewEngine(patrolDefinition(t))
		require.NoError(t, engine.Start(context.Background()))

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "quest.start", spans[0].Name)

		attrs := attrMap(spans, 0)
		assert.Equal(t, "patrol", attrs["quest"])
		assert.Equal(t, engine.InstanceID(), attrs["instance_id"])
	})

	t.Run("fire span records transition", func(t *testing.T) {
		exporter.Reset()

		engine := NewEngine(patrolDefinition(t))
		require.NoError(t, engine.Start(context.Background()))

		moved, err := engine.Fire(context.Background(), "intruder_seen")
		require.NoError(t, err)
		require.True(t, moved)

		spans := exporter.GetSpans()
		require.Len(t, spans, 2)
		assert.Equal(t, "quest.fire", spans[1].Name)

		attrs := attrMap(spans, 1)
		assert.Equal(t, "intruder_seen", attrs["event"])
		assert.Equal(t, true, attrs["matched"])
		assert.Equal(t, "idle", attrs["from_state"])
		assert.Equal(t, "alert", attrs["to_state"])
	})

	t.Run("ignored event leaves no transition attributes", func(t *testing.T) {
		exporter.Reset()

		engine := NewEngine(patrolDefinition(t))
		require.NoError(t, engine.Start(context.Background()))

		moved, err := engine.Fire(context.Background(), "unknown_event")
		require.NoError(t, err)
		require.False(t, moved)

		spans := exporter.GetSpans()
		require.Len(t, spans, 2)

		attrs := attrMap(spans, 1)
		assert.NotContains(t, attrs, "matched")
		assert.NotContains(t, attrs, "to_state")
	})
}
