package engine

import (
	"time"

	"github.com/julianstephens/nourish/internal/constants"
)

// Affect is the avatar's expression.
type Affect string

const (
	AffectNeutral  Affect = "neutral"
	AffectHappy    Affect = "happy"
	AffectSad      Affect = "sad"
	AffectEating   Affect = "eating"
	AffectDrinking Affect = "drinking"
	AffectSleeping Affect = "sleeping"
)

// DefaultAffect derives the resting expression from the day state.
func DefaultAffect(s Snapshot) Affect {
	switch {
	case !s.HasPlan():
		return AffectSleeping
	case s.DoingWell():
		return AffectHappy
	default:
		return AffectNeutral
	}
}

// Avatar layers a short-lived reaction over the derived default. The zero
// value shows the default.
type Avatar struct {
	reaction Affect
	until    time.Time
}

// React shows affect until now+d.
func (a *Avatar) React(affect Affect, now time.Time, d time.Duration) {
	a.reaction = affect
	a.until = now.Add(d)
}

// Observe maps an engine event to a reaction and returns how long it lasts,
// or zero when the event has none.
func (a *Avatar) Observe(ev Event) time.Duration {
	var (
		affect Affect
		d      time.Duration
	)
	switch ev.Kind {
	case EventEating:
		affect, d = AffectEating, constants.ReactionDuration
	case EventDrinking:
		affect, d = AffectDrinking, constants.ReactionDuration
	case EventPlanConfirmed, EventStreakExtended, EventReassurance:
		affect, d = AffectHappy, constants.CheerDuration
	default:
		return 0
	}
	a.React(affect, ev.At, d)
	return d
}

// Current returns the active reaction, or the default once it has expired.
func (a *Avatar) Current(now time.Time, s Snapshot) Affect {
	if a.reaction != "" && now.Before(a.until) {
		return a.reaction
	}
	a.reaction = ""
	return DefaultAffect(s)
}

// Reacting reports whether a reaction is still showing at now.
func (a *Avatar) Reacting(now time.Time) bool {
	return a.reaction != "" && now.Before(a.until)
}
