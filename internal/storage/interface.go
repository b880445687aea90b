package storage

import (
	"time"

	"github.com/julianstephens/nourish/internal/models"
)

// Provider is the durable copy of the day state. Day-state reads return the
// documented default when a value is absent or cannot be decoded; only I/O
// failures surface as errors.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Day state
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

	// History, newest first
	GetHistory() ([]models.HistoryEntry, error)
	SaveHistory([]models.HistoryEntry) error

	// Reminders
	AddReminder(models.Reminder) error
	GetReminders(includeSent bool) ([]models.Reminder, error)
	MarkReminderSent(id string, at time.Time) error
	// DeleteReminder removes one pending reminder. It returns ErrNotFound if
	// no pending reminder has that id.
	DeleteReminder(id string) error
	// DeletePendingReminders removes every unsent reminder and reports how many.
	DeletePendingReminders() (int, error)

	// Utils
	GetConfigPath() string
}
