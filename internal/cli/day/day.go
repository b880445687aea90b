// Package day holds the commands that drive the day state: planning,
// logging meals and water, and reviewing progress.
package day

import (
	"fmt"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/engine"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/notifier"
)

// announce prints the banner for events that carry a message.
func announce(msgs *notifier.Messages) engine.Listener {
	return func(ev engine.Event) {
		var title, body string
		switch ev.Kind {
		case engine.EventPlanConfirmed:
			title, body = msgs.PlanConfirmed()
		case engine.EventStreakExtended:
			title, body = msgs.StreakExtended(ev.Count)
		case engine.EventReassurance:
			title, body = msgs.Reassurance()
		default:
			return
		}
		fmt.Printf("\n%s\n  %s\n", title, body)
	}
}

func newEngine(ctx *cli.Context, msgs *notifier.Messages) *engine.Engine {
	return ctx.Engine(engine.WithListener(announce(msgs)))
}

func printSchedule(msgs *notifier.Messages, s engine.Snapshot) {
	for _, meal := range models.Meals {
		slot, ok := s.Schedule[meal]
		if !ok {
			continue
		}
		mark := " "
		if s.Eaten[meal] {
			mark = "✓"
		}
		name := slot.Name
		if name == "" {
			name = msgs.MealName(meal)
		}
		fmt.Printf("  [%s] %s  %-10s %s\n", mark, slot.Time, meal, name)
	}
}
