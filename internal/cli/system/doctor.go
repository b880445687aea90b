package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/nourish/internal/backup"
	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/notifier"
	"github.com/julianstephens/nourish/internal/storage/sqlite"
	"github.com/julianstephens/nourish/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(*cli.Context) error
	// warnOnly checks never fail the run.
	warnOnly bool
	needsDB  bool
	// gatesDB marks the check whose failure skips the needsDB ones.
	gatesDB bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable, gatesDB: true},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Day state", run: checkDayState, needsDB: true},
	{name: "Reminder queue", run: checkReminderQueue, warnOnly: true, needsDB: true},
	{name: "Notification tray", run: checkTray, warnOnly: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true
	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
			if c.gatesDB {
				dbReachable = false
			}
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	s, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}
	db := s.GetDB()
	if db == nil {
		return errors.New("database connection is nil")
	}
	var result string
	if err := db.QueryRow("PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("integrity check failed: %s", result)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Store.(cli.Migrator)
	if !ok {
		return nil
	}
	st, err := m.Runner().Status()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if st.Current > st.Latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", st.Current, st.Latest)
	}
	if !st.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'nourish migrate')", st.Current, st.Latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if !cli.IsSQLite(ctx.Store) {
		return nil
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return errors.New("no backups found - consider creating one with 'nourish backup create'")
	}
	return nil
}

func checkDayState(ctx *cli.Context) error {
	reminders, err := ctx.Store.GetReminders(true)
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}
	snap := ctx.Engine().Snapshot()
	result := validation.New().ValidateDay(snap, reminders, ctx.Clock())
	if result.HasConflicts() {
		return errors.New(result.FormatReport())
	}
	return nil
}

func checkReminderQueue(ctx *cli.Context) error {
	settings := ctx.Settings()
	if !settings.NotificationsEnabled {
		return nil
	}
	pending, err := ctx.Store.GetReminders(false)
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}

	grace := time.Duration(settings.NotificationGracePeriodMin) * time.Minute
	overdue := 0
	for _, r := range pending {
		if ctx.Clock().Sub(r.FireAt) > grace {
			overdue++
		}
	}
	if overdue > 0 {
		return fmt.Errorf("%d reminder(s) are overdue - is 'nourish notify --watch' or a cron job running?", overdue)
	}
	return nil
}

func checkTray(ctx *cli.Context) error {
	if !ctx.Settings().NotificationsEnabled {
		return nil
	}
	if _, err := notifier.Discover(); err != nil {
		return fmt.Errorf("reminders cannot be delivered: %w", err)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
