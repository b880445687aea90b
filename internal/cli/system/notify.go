package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/logger"
	"github.com/julianstephens/nourish/internal/notifier"
)

type NotifyCmd struct {
	DryRun   bool          `help:"Print due reminders instead of sending them."`
	Watch    bool          `help:"Keep running and deliver reminders as they come due."`
	Interval time.Duration `help:"Polling interval for --watch (defaults to the config file value)."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Conf()
	dryRun := c.DryRun || cfg.Notifications.DryRun

	if !ctx.Settings().NotificationsEnabled {
		if dryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	var opts []notifier.DispatcherOption
	if dryRun {
		opts = append(opts, notifier.WithDryRun(os.Stdout))
	}
	d := notifier.NewDispatcher(ctx.Store, notifier.New(), opts...)

	if !c.Watch {
		res, err := d.DispatchDue(context.Background(), ctx.Clock())
		if err != nil {
			return err
		}
		report(res, dryRun)
		return nil
	}

	interval := c.Interval
	if interval <= 0 {
		interval = cfg.Notifications.WatchInterval
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching for due reminders every %s (Ctrl+C to stop)\n", interval)
	logger.Info("Notify watch started", "interval", interval, "dry_run", dryRun)
	err := d.Watch(sigCtx, interval, ctx.Clock, func(res notifier.Result) {
		if res != (notifier.Result{}) {
			report(res, dryRun)
		}
	})
	logger.Info("Notify watch stopped")
	return err
}

func report(res notifier.Result, dryRun bool) {
	if res == (notifier.Result{}) {
		if dryRun {
			fmt.Println("No reminders due.")
		}
		return
	}
	fmt.Printf("Delivered %d, skipped %d stale, %d failed\n", res.Delivered, res.Stale, res.Failed)
}
