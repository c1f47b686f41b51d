package quest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric outcome constants.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Metric definitions with appropriate labels. Ignored events are counted
// without an event label: events are broadcast-like and arbitrary event
// names would blow up label cardinality.
var (
	// startsTotal tracks engine starts per quest.
	startsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quest_engine_starts_total",
		Help: "Total number of quest engine starts by quest name",
	}, []string{"quest"})

	// transitionsTotal tracks transitions taken.
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quest_transitions_total",
		Help: "Total number of transitions taken by quest, from_state, to_state, and event",
	}, []string{"quest", "from_state", "to_state", "event"})

	// eventsIgnoredTotal tracks Fire calls that matched no transition.
	eventsIgnoredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quest_events_ignored_total",
		Help: "Total number of fired events that matched no transition, by quest and state",
	}, []string{"quest", "state"})

	// dispatchesTotal tracks action dispatch outcomes.
	dispatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quest_action_dispatches_total",
		Help: "Total number of action dispatches by action and outcome (success or error)",
	}, []string{"action", "outcome"})
)
