// Package engine owns the day state: the plan derived from a wake-up time,
// which meals were eaten, the water count, the streak and the history log.
// Every transition updates the in-memory copy first and then writes it
// through to the store. Store and scheduler failures are logged, never
// returned.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/logger"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/utils"
)

var (
	ErrUnknownMeal = errors.New("unknown meal")
	ErrNoSchedule  = errors.New("no plan yet, run 'nourish plan HH:MM' first")
)

// Store is the durable copy the engine writes through to.
type Store interface {
	GetWakeUpTime() (*models.ClockTime, error)
	SaveWakeUpTime(models.ClockTime) error
	GetSchedule() (models.Schedule, error)
	SaveSchedule(models.Schedule) error
	GetEatenStatus() (models.EatenStatus, error)
	SaveEatenStatus(models.EatenStatus) error
	GetWaterCount() (int, error)
	SaveWaterCount(int) error
	GetStreak() (models.Streak, error)
	SaveStreak(models.Streak) error
	GetHistory() ([]models.HistoryEntry, error)
	SaveHistory([]models.HistoryEntry) error
}

// Scheduler creates and cancels reminders. Implementations swallow their
// own failures.
type Scheduler interface {
	ScheduleAll(ctx context.Context, wake models.ClockTime) models.Schedule
	CancelFollowUp(ctx context.Context, handle *string)
}

type Engine struct {
	store     Store
	sched     Scheduler
	now       func() time.Time
	listeners []Listener
	state     Snapshot
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithListener registers fn for every emitted event.
func WithListener(fn Listener) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, fn) }
}

func New(store Store, sched Scheduler, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		sched: sched,
		now:   time.Now,
		state: Snapshot{Eaten: freshEatenStatus()},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe adds a listener after construction.
func (e *Engine) Subscribe(fn Listener) {
	e.listeners = append(e.listeners, fn)
}

// Load replaces the working copy with what the store holds. Keys that cannot
// be read fall back to their defaults.
func (e *Engine) Load() {
	var s Snapshot
	var err error

	if s.WakeUp, err = e.store.GetWakeUpTime(); err != nil {
		e.warn("wake_up_time", err)
	}
	if s.Schedule, err = e.store.GetSchedule(); err != nil {
		e.warn("schedule", err)
	}
	if s.Eaten, err = e.store.GetEatenStatus(); err != nil || s.Eaten == nil {
		e.warn("eaten_status", err)
		s.Eaten = freshEatenStatus()
	}
	if s.Water, err = e.store.GetWaterCount(); err != nil {
		e.warn("water_count", err)
	}
	if s.Streak, err = e.store.GetStreak(); err != nil {
		e.warn("streak", err)
	}
	if s.History, err = e.store.GetHistory(); err != nil {
		e.warn("history", err)
	}

	e.state = s
}

// Snapshot returns a copy of the current day state.
func (e *Engine) Snapshot() Snapshot {
	return e.state.clone()
}

// Plan starts a new day from wake. Any progress on the current day is
// archived to history first.
func (e *Engine) Plan(ctx context.Context, wake models.ClockTime) models.Schedule {
	now := e.now()

	if meals := e.state.Eaten.Count(); meals > 0 || e.state.Water > 0 {
		entry := models.HistoryEntry{Date: utils.Today(now), Water: e.state.Water, Meals: meals}
		e.state.History = models.AppendHistory(e.state.History, entry, constants.HistoryLimit)
		e.persist("history", e.store.SaveHistory(e.state.History))
		logger.Info("Archived day", "date", entry.Date, "meals", entry.Meals, "water", entry.Water)
	}

	e.state.WakeUp = &wake
	e.persist("wake_up_time", e.store.SaveWakeUpTime(wake))

	e.state.Eaten = freshEatenStatus()
	e.persist("eaten_status", e.store.SaveEatenStatus(e.state.Eaten))

	e.state.Water = 0
	e.persist("water_count", e.store.SaveWaterCount(0))

	schedule := e.sched.ScheduleAll(ctx, wake)
	e.state.Schedule = schedule
	e.persist("schedule", e.store.SaveSchedule(schedule))

	logger.Info("Planned day", "wake", wake.String())
	e.emit(Event{Kind: EventPlanConfirmed, At: now})
	return schedule
}

// MarkEaten records meal as eaten. Marking an already eaten meal does
// nothing.
func (e *Engine) MarkEaten(ctx context.Context, meal models.MealID) error {
	if _, err := models.ParseMealID(string(meal)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownMeal, meal)
	}
	if !e.state.HasPlan() {
		return ErrNoSchedule
	}
	if e.state.Eaten[meal] {
		logger.Debug("Meal already eaten", "meal", meal)
		return nil
	}

	now := e.now()

	eaten := e.state.Eaten.Clone()
	eaten[meal] = true
	e.state.Eaten = eaten
	e.persist("eaten_status", e.store.SaveEatenStatus(eaten))

	handle := e.state.Schedule[meal].FollowUpID
	cancelled := handle != nil && *handle != ""
	if cancelled {
		e.sched.CancelFollowUp(ctx, handle)
	}

	e.emit(Event{Kind: EventEating, At: now})

	if eaten.AllEaten() {
		today := utils.Today(now)
		if e.state.Streak.CompletedOn(today) {
			return nil
		}
		e.state.Streak = models.Streak{Count: e.state.Streak.Count + 1, LastDate: &today}
		e.persist("streak", e.store.SaveStreak(e.state.Streak))
		logger.Info("Streak extended", "count", e.state.Streak.Count)
		e.emit(Event{Kind: EventStreakExtended, At: now, Count: e.state.Streak.Count})
		return nil
	}

	if cancelled {
		e.emit(Event{Kind: EventReassurance, At: now})
	}
	return nil
}

// DrinkWater adds one glass. There is no upper bound.
func (e *Engine) DrinkWater(ctx context.Context) int {
	e.state.Water++
	e.persist("water_count", e.store.SaveWaterCount(e.state.Water))
	e.emit(Event{Kind: EventDrinking, At: e.now()})
	return e.state.Water
}

func (e *Engine) ResetWater(ctx context.Context) {
	e.state.Water = 0
	e.persist("water_count", e.store.SaveWaterCount(0))
}

func (e *Engine) emit(ev Event) {
	logger.Debug("Engine event", "kind", ev.Kind.String())
	for _, fn := range e.listeners {
		fn(ev)
	}
}

func (e *Engine) persist(key string, err error) {
	if err != nil {
		logger.Warn("Failed to persist day state", "key", key, "error", err)
	}
}

func (e *Engine) warn(key string, err error) {
	if err != nil {
		logger.Warn("Failed to read day state, using default", "key", key, "error", err)
	}
}

func freshEatenStatus() models.EatenStatus {
	status := make(models.EatenStatus, len(models.Meals))
	for _, m := range models.Meals {
		status[m] = false
	}
	return status
}
