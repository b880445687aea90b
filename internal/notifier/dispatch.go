package notifier

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/nourish/internal/logger"
	"github.com/julianstephens/nourish/internal/models"
)

// Sender delivers one notification.
type Sender interface {
	Notify(ctx context.Context, title, body string) error
}

// DispatchStore is the slice of storage the dispatcher reads and updates.
type DispatchStore interface {
	GetSettings() (models.Settings, error)
	GetReminders(includeSent bool) ([]models.Reminder, error)
	MarkReminderSent(id string, at time.Time) error
}

// Result counts what one dispatch pass did.
type Result struct {
	Delivered int
	Stale     int
	Failed    int
}

// Dispatcher delivers reminders whose fire time has come.
type Dispatcher struct {
	store  DispatchStore
	sender Sender
	dryRun io.Writer
}

type DispatcherOption func(*Dispatcher)

// WithDryRun prints due reminders to w instead of sending them. Nothing is
// marked sent.
func WithDryRun(w io.Writer) DispatcherOption {
	return func(d *Dispatcher) { d.dryRun = w }
}

func NewDispatcher(store DispatchStore, sender Sender, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{store: store, sender: sender}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DispatchDue handles every pending reminder with FireAt <= now. Reminders
// older than the grace period are marked sent without delivery. Each
// reminder is attempted once.
func (d *Dispatcher) DispatchDue(ctx context.Context, now time.Time) (Result, error) {
	var res Result

	settings, err := d.store.GetSettings()
	if err != nil {
		return res, fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		logger.Debug("Notifications disabled, skipping dispatch")
		return res, nil
	}
	grace := time.Duration(settings.NotificationGracePeriodMin) * time.Minute

	pending, err := d.store.GetReminders(false)
	if err != nil {
		return res, fmt.Errorf("failed to list reminders: %w", err)
	}

	for _, r := range pending {
		if r.FireAt.After(now) {
			break
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if late := now.Sub(r.FireAt); late > grace {
			logger.Warn("Dropping stale reminder", "id", r.ID, "kind", r.Kind, "late", late.Round(time.Second))
			d.markSent(r.ID, now)
			res.Stale++
			continue
		}

		if d.dryRun != nil {
			fmt.Fprintf(d.dryRun, "[DryRun] %s %s\n", r.Title, r.Body)
			res.Delivered++
			continue
		}

		if err := d.sender.Notify(ctx, r.Title, r.Body); err != nil {
			logger.Error("Failed to send notification", "id", r.ID, "kind", r.Kind, "error", err)
			res.Failed++
		} else {
			res.Delivered++
		}
		d.markSent(r.ID, now)
	}

	return res, nil
}

func (d *Dispatcher) markSent(id string, at time.Time) {
	if d.dryRun != nil {
		return
	}
	if err := d.store.MarkReminderSent(id, at); err != nil {
		logger.Warn("Failed to mark reminder sent", "id", id, "error", err)
	}
}

// Watch runs DispatchDue every interval until ctx is done.
func (d *Dispatcher) Watch(ctx context.Context, interval time.Duration, now func() time.Time, onPass func(Result)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := d.DispatchDue(ctx, now())
		if err != nil && ctx.Err() == nil {
			logger.Error("Dispatch pass failed", "error", err)
		}
		if onPass != nil && err == nil {
			onPass(res)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
