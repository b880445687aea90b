package day

import (
	"context"
	"fmt"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/models"
)

type EatCmd struct {
	Meal string `arg:"" enum:"breakfast,lunch,dinner" help:"Meal to mark as eaten (breakfast, lunch, dinner)."`
}

func (c *EatCmd) Run(ctx *cli.Context) error {
	meal, err := models.ParseMealID(c.Meal)
	if err != nil {
		return err
	}

	msgs := ctx.Messages()
	e := newEngine(ctx, msgs)
	if err := e.MarkEaten(context.Background(), meal); err != nil {
		return err
	}

	s := e.Snapshot()
	fmt.Printf("✓ %s (%d/%d meals today)\n", msgs.MealName(meal), s.Eaten.Count(), len(models.Meals))
	return nil
}
