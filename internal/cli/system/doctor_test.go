package system

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/storage/sqlite"
)

func TestDoctorCmd_Healthy(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("expected healthy database to pass, got %v", err)
	}
}

func TestDoctorCmd_InconsistentDayState(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	schedule := models.Schedule{models.MealBreakfast: {Name: "Breakfast ☕", Time: "07:00"}}
	if err := ctx.Store.SaveSchedule(schedule); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected schedule without wake-up time to fail")
	}
}

func TestDoctorCmd_Uninitialized(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "missing.db"))
	defer store.Close()

	ctx := &cli.Context{Store: store, Now: func() time.Time { return testNow }}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected missing database to fail")
	}
}

func TestMigrateCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&MigrateCmd{Status: true}).Run(ctx); err != nil {
		t.Errorf("migrate --status failed: %v", err)
	}
	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Errorf("migrate on current schema failed: %v", err)
	}
}

func TestDebugCmds(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmds := []interface{ Run(*cli.Context) error }{
		&DebugDBPathCmd{},
		&DebugDumpStateCmd{},
		&DebugDumpRemindersCmd{All: true},
		&DebugDumpSettingsCmd{},
	}
	for _, c := range cmds {
		if err := c.Run(ctx); err != nil {
			t.Errorf("%T failed: %v", c, err)
		}
	}
}
