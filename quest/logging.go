package quest

import (
	"context"
	"log/slog"
)

// Logger provides logging hooks for quest engine execution.
type Logger interface {
	QuestStarted(ctx context.Context, quest, instanceID, initialState string)
	TransitionTaken(ctx context.Context, quest, from, to, event string)
	EventIgnored(ctx context.Context, quest, state, event string)
	ActionDispatched(ctx context.Context, action string, err error)
}

// DefaultLogger implements Logger using slog.
type DefaultLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger creates a logger backed by slog.Default().
func NewDefaultLogger() *DefaultLogger {
	return NewSlogLogger(slog.Default())
}

// NewSlogLogger creates a logger backed by the given slog.Logger.
func NewSlogLogger(logger *slog.Logger) *DefaultLogger {
	return &DefaultLogger{
		logger: logger,
	}
}

func (l *DefaultLogger) QuestStarted(ctx context.Context, quest, instanceID, initialState string) {
	l.logger.InfoContext(ctx, "Quest started",
		"quest", quest,
		"instance_id", instanceID,
		"initial_state", initialState,
	)
}

func (l *DefaultLogger) TransitionTaken(ctx context.Context, quest, from, to, event string) {
	l.logger.InfoContext(ctx, "Transition taken",
		"quest", quest,
		"from", from,
		"to", to,
		"event", event,
	)
}

func (l *DefaultLogger) EventIgnored(ctx context.Context, quest, state, event string) {
	l.logger.DebugContext(ctx, "Event ignored",
		"quest", quest,
		"state", state,
		"event", event,
	)
}

func (l *DefaultLogger) ActionDispatched(ctx context.Context, action string, err error) {
	if err != nil {
		l.logger.ErrorContext(ctx, "Action dispatched with error",
			"action", action,
			"error", err,
		)
	} else {
		l.logger.InfoContext(ctx, "Action dispatched",
			"action", action,
		)
	}
}
