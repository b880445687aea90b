package day

import (
	"fmt"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/models"
)

type HistoryCmd struct{}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	s := ctx.Engine().Snapshot()

	if len(s.History) == 0 {
		fmt.Println("No history yet. Days are archived when you plan the next one.")
		return nil
	}

	fmt.Printf("Last %d day(s), streak %d:\n\n", len(s.History), s.Streak.Count)
	fmt.Printf("  %-10s  %-6s  %s\n", "Date", "Meals", "Water")
	for _, h := range s.History {
		fmt.Printf("  %-10s  %d/%d     %d/%d\n", h.Date, h.Meals, len(models.Meals), h.Water, constants.WaterTarget)
	}
	return nil
}
