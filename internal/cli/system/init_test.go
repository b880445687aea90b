package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/storage"
	"github.com/julianstephens/nourish/internal/storage/sqlite"
)

func TestInitCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "nourish.db")
	store := sqlite.NewStore(dbPath)
	defer store.Close()

	cmd := &InitCmd{}
	if err := cmd.Run(&cli.Context{Store: store}); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database was not created: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("expected default settings, got %+v", settings)
	}

	// Running init again keeps existing data.
	if err := store.SaveWaterCount(4); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(&cli.Context{Store: store}); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	if n, _ := store.GetWaterCount(); n != 4 {
		t.Errorf("init without --force lost data: water = %d", n)
	}
}

func TestInitCmd_Force(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := ctx.Store.SaveWaterCount(6); err != nil {
		t.Fatal(err)
	}

	cmd := &InitCmd{Force: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	n, err := ctx.Store.GetWaterCount()
	if err != nil {
		t.Fatalf("GetWaterCount failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected fresh database after --force, water = %d", n)
	}
}

func TestInitCmd_ForceRejectsSameSource(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &InitCmd{Force: true, Source: ctx.Store.GetConfigPath()}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error when source equals destination")
	}
}

func TestInitCmd_Source(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "old.json")
	src := storage.NewJSONStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatal(err)
	}

	wake := models.ClockTime{Hour: 6, Minute: 45}
	followUp := "f-lunch"
	lastDate := "2026-04-30"
	mustNoErr(t, src.SaveSettings(models.Settings{NotificationsEnabled: false, NotificationGracePeriodMin: 20, Locale: "tr"}))
	mustNoErr(t, src.SaveWakeUpTime(wake))
	mustNoErr(t, src.SaveSchedule(models.Schedule{models.MealLunch: {Name: "Öğle Yemeği 🥗", Time: "11:45", FollowUpID: &followUp}}))
	mustNoErr(t, src.SaveEatenStatus(models.EatenStatus{models.MealBreakfast: true}))
	mustNoErr(t, src.SaveWaterCount(3))
	mustNoErr(t, src.SaveStreak(models.Streak{Count: 5, LastDate: &lastDate}))
	mustNoErr(t, src.SaveHistory([]models.HistoryEntry{{Date: lastDate, Water: 8, Meals: 3}}))
	mustNoErr(t, src.AddReminder(models.Reminder{ID: followUp, Kind: models.ReminderFollowUp, Meal: models.MealLunch, FireAt: testNow.Add(5 * time.Hour), CreatedAt: testNow}))

	dst := sqlite.NewStore(filepath.Join(t.TempDir(), "nourish.db"))
	defer dst.Close()

	cmd := &InitCmd{Source: srcPath}
	if err := cmd.Run(&cli.Context{Store: dst}); err != nil {
		t.Fatalf("init --source failed: %v", err)
	}

	settings, _ := dst.GetSettings()
	if settings.Locale != "tr" || settings.NotificationsEnabled || settings.NotificationGracePeriodMin != 20 {
		t.Errorf("settings not copied: %+v", settings)
	}
	if got, _ := dst.GetWakeUpTime(); got == nil || *got != wake {
		t.Errorf("wake-up time not copied: %v", got)
	}
	if got, _ := dst.GetSchedule(); got[models.MealLunch].Time != "11:45" {
		t.Errorf("schedule not copied: %v", got)
	}
	if got, _ := dst.GetEatenStatus(); !got[models.MealBreakfast] {
		t.Errorf("eaten status not copied: %v", got)
	}
	if got, _ := dst.GetWaterCount(); got != 3 {
		t.Errorf("water count not copied: %d", got)
	}
	if got, _ := dst.GetStreak(); got.Count != 5 {
		t.Errorf("streak not copied: %+v", got)
	}
	if got, _ := dst.GetHistory(); len(got) != 1 || got[0].Date != lastDate {
		t.Errorf("history not copied: %v", got)
	}
	if got, _ := dst.GetReminders(false); len(got) != 1 || got[0].ID != followUp {
		t.Errorf("reminders not copied: %v", got)
	}
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
