package day

import (
	"fmt"
	"strings"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/engine"
	"github.com/julianstephens/nourish/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	msgs := ctx.Messages()
	s := ctx.Engine().Snapshot()
	now := ctx.Clock()

	fmt.Printf("Today (%s)  mood: %s\n\n", utils.Today(now), engine.DefaultAffect(s))

	if !s.HasPlan() {
		fmt.Println("No plan yet. Run 'nourish plan HH:MM' with your wake-up time.")
	} else {
		if s.WakeUp != nil {
			fmt.Printf("Woke up at %s\n", s.WakeUp)
		}
		printSchedule(msgs, s)
	}

	fmt.Printf("\nWater:  %s %d/%d\n", glasses(s.Water), s.Water, constants.WaterTarget)
	fmt.Printf("Streak: %d day(s)\n", s.Streak.Count)

	pending, err := ctx.Store.GetReminders(false)
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	for _, r := range pending {
		if r.FireAt.After(now) {
			fmt.Printf("\nNext reminder: %s %s (%s)\n", r.Title, r.FireAt.Format(constants.TimeFormat), utils.Relative(r.FireAt, now))
			break
		}
	}
	return nil
}

func glasses(n int) string {
	filled := min(n, constants.WaterTarget)
	return strings.Repeat("●", filled) + strings.Repeat("○", constants.WaterTarget-filled)
}
