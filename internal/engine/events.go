package engine

import "time"

// EventKind identifies something the presentation layer may want to react to.
type EventKind int

const (
	EventPlanConfirmed EventKind = iota
	EventStreakExtended
	EventReassurance
	EventEating
	EventDrinking
)

func (k EventKind) String() string {
	switch k {
	case EventPlanConfirmed:
		return "plan_confirmed"
	case EventStreakExtended:
		return "streak_extended"
	case EventReassurance:
		return "reassurance"
	case EventEating:
		return "eating"
	case EventDrinking:
		return "drinking"
	}
	return "unknown"
}

// Event is emitted after a transition has updated the working copy.
type Event struct {
	Kind EventKind
	At   time.Time
	// Count is the new streak length for EventStreakExtended.
	Count int
}

// Listener receives events synchronously, in emission order.
type Listener func(Event)
