package cli

import (
	"time"

	"github.com/julianstephens/nourish/internal/backup"
	"github.com/julianstephens/nourish/internal/config"
	"github.com/julianstephens/nourish/internal/engine"
	"github.com/julianstephens/nourish/internal/logger"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/notifier"
	"github.com/julianstephens/nourish/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config *config.Config
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Conf returns the loaded configuration, or defaults when none was loaded.
func (c *Context) Conf() *config.Config {
	if c.Config == nil {
		return config.Default()
	}
	return c.Config
}

func (c *Context) Settings() models.Settings {
	settings, err := c.Store.GetSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// Messages returns user-facing text in the configured locale.
func (c *Context) Messages() *notifier.Messages {
	return notifier.NewMessages(c.Settings().Locale)
}

// Scheduler returns the reminder scheduler backed by the store.
func (c *Context) Scheduler() *notifier.ReminderScheduler {
	return notifier.NewReminderScheduler(c.Store, notifier.WithNow(c.Clock))
}

// Engine returns a day-progress engine hydrated from the store.
func (c *Context) Engine(opts ...engine.Option) *engine.Engine {
	opts = append([]engine.Option{engine.WithClock(c.Clock)}, opts...)
	e := engine.New(c.Store, c.Scheduler(), opts...)
	e.Load()
	return e
}

// PerformAutomaticBackup snapshots SQLite databases and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if !IsSQLite(c.Store) {
		return
	}
	if _, err := backup.NewManager(c.Store.GetConfigPath()).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
