package day

import (
	"context"
	"fmt"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/constants"
)

type WaterCmd struct {
	Reset bool `help:"Reset today's water count to zero."`
}

func (c *WaterCmd) Run(ctx *cli.Context) error {
	e := ctx.Engine()
	if c.Reset {
		e.ResetWater(context.Background())
		fmt.Println("Water count reset.")
		return nil
	}

	if e.Snapshot().WaterRemaining() == 0 {
		fmt.Printf("💧 %d/%d glasses, daily target reached!\n", e.Snapshot().Water, constants.WaterTarget)
		return nil
	}

	n := e.DrinkWater(context.Background())
	if left := e.Snapshot().WaterRemaining(); left > 0 {
		fmt.Printf("💧 %d/%d glasses, %d to go\n", n, constants.WaterTarget, left)
	} else {
		fmt.Printf("💧 %d/%d glasses, daily target reached!\n", n, constants.WaterTarget)
	}
	return nil
}
