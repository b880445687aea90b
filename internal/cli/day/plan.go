package day

import (
	"context"
	"fmt"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/models"
)

type PlanCmd struct {
	WakeUp string `arg:"" name:"wake-up" help:"Wake-up time (HH:MM)."`
}

func (c *PlanCmd) Run(ctx *cli.Context) error {
	wake, err := models.ParseClockTime(c.WakeUp)
	if err != nil {
		return err
	}

	msgs := ctx.Messages()
	e := newEngine(ctx, msgs)
	e.Plan(context.Background(), wake)

	s := e.Snapshot()
	fmt.Printf("\nPlan for wake-up at %s:\n", wake)
	printSchedule(msgs, s)

	pending, err := ctx.Store.GetReminders(false)
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	if len(pending) == 0 {
		fmt.Println("\nNo reminders scheduled. Start nourish-tray or enable notifications to get them.")
	} else {
		fmt.Printf("\n%d reminder(s) scheduled.\n", len(pending))
	}
	return nil
}
