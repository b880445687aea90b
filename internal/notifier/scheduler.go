package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/logger"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/scheduler"
	"github.com/julianstephens/nourish/internal/storage"
)

// ReminderStore is the slice of storage the scheduler writes to.
type ReminderStore interface {
	GetSettings() (models.Settings, error)
	AddReminder(models.Reminder) error
	DeleteReminder(id string) error
	DeletePendingReminders() (int, error)
}

// ReminderScheduler turns a wake-up time into reminder rows. Every failure
// is logged and swallowed; callers always get a Schedule back.
type ReminderScheduler struct {
	store ReminderStore
	now   func() time.Time
	newID func() string
	probe func() error
}

type SchedulerOption func(*ReminderScheduler)

// WithNow overrides the clock.
func WithNow(now func() time.Time) SchedulerOption {
	return func(s *ReminderScheduler) { s.now = now }
}

// WithIDs overrides reminder handle generation.
func WithIDs(newID func() string) SchedulerOption {
	return func(s *ReminderScheduler) { s.newID = newID }
}

// WithTrayProbe overrides the tray reachability check.
func WithTrayProbe(probe func() error) SchedulerOption {
	return func(s *ReminderScheduler) { s.probe = probe }
}

func NewReminderScheduler(store ReminderStore, opts ...SchedulerOption) *ReminderScheduler {
	s := &ReminderScheduler{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
		probe: func() error {
			_, err := Discover()
			return err
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReminderScheduler) settings() models.Settings {
	settings, err := s.store.GetSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// RequestPermission reports whether reminders may be scheduled.
func (s *ReminderScheduler) RequestPermission(ctx context.Context) bool {
	if !s.settings().NotificationsEnabled {
		logger.Info("Notifications disabled in settings")
		return false
	}
	if err := s.probe(); err != nil {
		logger.Debug("Tray not reachable, reminders will wait for it", "error", err)
	}
	return true
}

// ScheduleAll replaces every pending reminder with a fresh set for wake.
func (s *ReminderScheduler) ScheduleAll(ctx context.Context, wake models.ClockTime) models.Schedule {
	if n, err := s.store.DeletePendingReminders(); err != nil {
		logger.Warn("Failed to cancel pending reminders", "error", err)
	} else if n > 0 {
		logger.Debug("Cancelled pending reminders", "count", n)
	}

	now := s.now()
	granted := s.RequestPermission(ctx)
	msgs := NewMessages(s.settings().Locale)
	derived := scheduler.Derive(&wake)
	plan := derived.At(now)

	schedule := make(models.Schedule, len(models.Meals))
	for i, slot := range plan.Meals {
		name := msgs.MealName(slot.Meal)
		mealSlot := models.MealSlot{
			Name: name,
			Time: derived.Meals[i].Time.String(),
		}

		if granted && slot.At.After(now) {
			title, body := msgs.MealReminder(name)
			s.add(ctx, models.ReminderMeal, slot.Meal, title, body, slot.At, now)
		}

		followAt := slot.At.Add(constants.FollowUpDelay)
		if granted && followAt.After(now) {
			title, body := msgs.FollowUp(name)
			if id, ok := s.add(ctx, models.ReminderFollowUp, slot.Meal, title, body, followAt, now); ok {
				mealSlot.FollowUpID = &id
			}
		}

		schedule[slot.Meal] = mealSlot
	}

	if granted {
		title, body := msgs.Water()
		for _, at := range plan.Water {
			if at.After(now) {
				s.add(ctx, models.ReminderWater, "", title, body, at, now)
			}
		}
	}

	return schedule
}

func (s *ReminderScheduler) add(ctx context.Context, kind models.ReminderKind, meal models.MealID, title, body string, at, now time.Time) (string, bool) {
	if err := ctx.Err(); err != nil {
		logger.Warn("Skipping reminder, context done", "kind", kind, "meal", meal, "error", err)
		return "", false
	}

	r := models.Reminder{
		ID:        s.newID(),
		Kind:      kind,
		Meal:      meal,
		Title:     title,
		Body:      body,
		FireAt:    at,
		CreatedAt: now,
	}
	if err := s.store.AddReminder(r); err != nil {
		logger.Warn("Failed to schedule reminder", "kind", kind, "meal", meal, "error", err)
		return "", false
	}
	logger.Debug("Scheduled reminder", "kind", kind, "meal", meal, "in", at.Sub(now).Round(time.Second))
	return r.ID, true
}

// CancelFollowUp removes one pending follow-up. A nil or empty handle is a no-op.
func (s *ReminderScheduler) CancelFollowUp(ctx context.Context, handle *string) {
	if handle == nil || *handle == "" {
		return
	}
	err := s.store.DeleteReminder(*handle)
	switch {
	case err == nil:
		logger.Debug("Cancelled follow-up", "id", *handle)
	case errors.Is(err, storage.ErrNotFound):
		logger.Debug("Follow-up already delivered or cancelled", "id", *handle)
	default:
		logger.Warn("Failed to cancel follow-up", "id", *handle, "error", err)
	}
}
