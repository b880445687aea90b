package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized nourish storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyFrom(ctx, c.Source); err != nil {
			return fmt.Errorf("data copy failed: %w", err)
		}
		fmt.Println("Data copied successfully!")
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		if abs, err := filepath.Abs(c.Source); err == nil && abs == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	_, err := os.Stat(dbPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("failed to access existing database: %w", err)
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if err := os.Remove(dbPath); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	fmt.Printf("Deleted existing database at: %s\n", dbPath)
	return nil
}

func (c *InitCmd) copyFrom(ctx *cli.Context, source string) error {
	src, err := cli.OpenStore(source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	return CopyState(src, ctx.Store)
}

// CopyState copies settings, day state, history and pending reminders from
// src to dst.
func CopyState(src, dst storage.Provider) error {
	fmt.Println("  Copying settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("  Copying day state...")
	wake, err := src.GetWakeUpTime()
	if err != nil {
		return fmt.Errorf("failed to get wake-up time from source: %w", err)
	}
	if wake != nil {
		if err := dst.SaveWakeUpTime(*wake); err != nil {
			return fmt.Errorf("failed to save wake-up time: %w", err)
		}
	}
	schedule, err := src.GetSchedule()
	if err != nil {
		return fmt.Errorf("failed to get schedule from source: %w", err)
	}
	if schedule != nil {
		if err := dst.SaveSchedule(schedule); err != nil {
			return fmt.Errorf("failed to save schedule: %w", err)
		}
	}
	eaten, err := src.GetEatenStatus()
	if err != nil {
		return fmt.Errorf("failed to get eaten status from source: %w", err)
	}
	if err := dst.SaveEatenStatus(eaten); err != nil {
		return fmt.Errorf("failed to save eaten status: %w", err)
	}
	water, err := src.GetWaterCount()
	if err != nil {
		return fmt.Errorf("failed to get water count from source: %w", err)
	}
	if err := dst.SaveWaterCount(water); err != nil {
		return fmt.Errorf("failed to save water count: %w", err)
	}
	streak, err := src.GetStreak()
	if err != nil {
		return fmt.Errorf("failed to get streak from source: %w", err)
	}
	if err := dst.SaveStreak(streak); err != nil {
		return fmt.Errorf("failed to save streak: %w", err)
	}

	fmt.Println("  Copying history...")
	history, err := src.GetHistory()
	if err != nil {
		return fmt.Errorf("failed to get history from source: %w", err)
	}
	if err := dst.SaveHistory(history); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	fmt.Printf("    Copied %d history entries\n", len(history))

	fmt.Println("  Copying reminders...")
	reminders, err := src.GetReminders(false)
	if err != nil {
		return fmt.Errorf("failed to get reminders from source: %w", err)
	}
	if _, err := dst.DeletePendingReminders(); err != nil {
		return fmt.Errorf("failed to clear pending reminders: %w", err)
	}
	for _, r := range reminders {
		if err := dst.AddReminder(r); err != nil {
			return fmt.Errorf("failed to add reminder %s: %w", r.ID, err)
		}
	}
	fmt.Printf("    Copied %d pending reminders\n", len(reminders))

	return nil
}
