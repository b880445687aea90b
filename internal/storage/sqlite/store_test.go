package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitCreatesSchemaAndSettings(t *testing.T) {
	store := setupTestStore(t)

	for _, table := range []string{"settings", "kv", "history", "reminders", "schema_version"} {
		ok, err := store.TableExists(table)
		if err != nil {
			t.Fatalf("TableExists(%s): %v", table, err)
		}
		if !ok {
			t.Errorf("table %s missing after Init", table)
		}
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first := NewStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if err := first.SaveWaterCount(3); err != nil {
		t.Fatalf("SaveWaterCount: %v", err)
	}
	first.Close()

	second := NewStore(path)
	if err := second.Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	defer second.Close()

	n, err := second.GetWaterCount()
	if err != nil || n != 3 {
		t.Errorf("GetWaterCount() = %d, %v; want 3", n, err)
	}
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, storage.ErrUninitialized) {
		t.Errorf("Load() = %v, want ErrUninitialized", err)
	}
}

func TestStateDefaults(t *testing.T) {
	store := setupTestStore(t)

	wake, err := store.GetWakeUpTime()
	if err != nil || wake != nil {
		t.Errorf("GetWakeUpTime() = %v, %v; want nil", wake, err)
	}
	schedule, err := store.GetSchedule()
	if err != nil || schedule != nil {
		t.Errorf("GetSchedule() = %v, %v; want nil", schedule, err)
	}
	status, err := store.GetEatenStatus()
	if err != nil || status == nil || status.Count() != 0 {
		t.Errorf("GetEatenStatus() = %v, %v; want empty", status, err)
	}
	water, err := store.GetWaterCount()
	if err != nil || water != 0 {
		t.Errorf("GetWaterCount() = %d, %v; want 0", water, err)
	}
	streak, err := store.GetStreak()
	if err != nil || streak.Count != 0 || streak.LastDate != nil {
		t.Errorf("GetStreak() = %+v, %v; want zero", streak, err)
	}
	history, err := store.GetHistory()
	if err != nil || len(history) != 0 {
		t.Errorf("GetHistory() = %v, %v; want empty", history, err)
	}
}

func TestStateMalformedFallsBackToDefaults(t *testing.T) {
	store := setupTestStore(t)

	for _, key := range []string{constants.KeyWakeUpTime, constants.KeySchedule, constants.KeyEatenStatus, constants.KeyWaterCount, constants.KeyStreak} {
		if err := store.putKV(key, "{not json"); err != nil {
			t.Fatalf("putKV(%s): %v", key, err)
		}
	}

	if wake, _ := store.GetWakeUpTime(); wake != nil {
		t.Errorf("wake = %v, want nil", wake)
	}
	if schedule, _ := store.GetSchedule(); schedule != nil {
		t.Errorf("schedule = %v, want nil", schedule)
	}
	if status, _ := store.GetEatenStatus(); status == nil || len(status) != 0 {
		t.Errorf("eaten status = %v, want empty", status)
	}
	if water, _ := store.GetWaterCount(); water != 0 {
		t.Errorf("water = %d, want 0", water)
	}
	if streak, _ := store.GetStreak(); streak.Count != 0 {
		t.Errorf("streak = %+v, want zero", streak)
	}
}

func TestStateRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	handle := "follow-up-1"
	schedule := models.Schedule{
		models.MealBreakfast: {Name: "Breakfast", Time: "08:00", FollowUpID: &handle},
		models.MealLunch:     {Name: "Lunch", Time: "12:00"},
	}
	date := "2026-05-01"

	if err := store.SaveWakeUpTime(models.ClockTime{Hour: 7}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSchedule(schedule); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveEatenStatus(models.EatenStatus{models.MealLunch: true}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveStreak(models.Streak{Count: 4, LastDate: &date}); err != nil {
		t.Fatal(err)
	}

	wake, _ := store.GetWakeUpTime()
	if wake == nil || wake.String() != "07:00" {
		t.Errorf("wake = %v", wake)
	}
	got, _ := store.GetSchedule()
	if got[models.MealBreakfast].FollowUpID == nil || *got[models.MealBreakfast].FollowUpID != handle {
		t.Errorf("follow-up handle lost: %+v", got)
	}
	if got[models.MealLunch].FollowUpID != nil {
		t.Errorf("lunch should have no handle: %+v", got[models.MealLunch])
	}
	status, _ := store.GetEatenStatus()
	if !status[models.MealLunch] || status[models.MealBreakfast] {
		t.Errorf("status = %v", status)
	}
	streak, _ := store.GetStreak()
	if streak.Count != 4 || !streak.CompletedOn(date) {
		t.Errorf("streak = %+v", streak)
	}
}

func TestHistoryReplaceAndOrder(t *testing.T) {
	store := setupTestStore(t)

	entries := []models.HistoryEntry{
		{Date: "2026-05-03", Water: 8, Meals: 3},
		{Date: "2026-05-01", Water: 2, Meals: 1},
	}
	if err := store.SaveHistory(entries); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}
	if err := store.SaveHistory(models.AppendHistory(entries, models.HistoryEntry{Date: "2026-05-02", Water: 4}, constants.HistoryLimit)); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}

	got, err := store.GetHistory()
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	want := []string{"2026-05-03", "2026-05-02", "2026-05-01"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, d := range want {
		if got[i].Date != d {
			t.Errorf("entry %d date = %s, want %s", i, got[i].Date, d)
		}
	}
}

func TestReminderLifecycle(t *testing.T) {
	store := setupTestStore(t)
	now := time.Date(2026, 5, 1, 7, 0, 0, 0, time.UTC)

	reminders := []models.Reminder{
		{ID: "b", Kind: models.ReminderMeal, Meal: models.MealBreakfast, Title: "Breakfast", Body: "eat", FireAt: now.Add(time.Hour), CreatedAt: now},
		{ID: "w", Kind: models.ReminderWater, Title: "Water", Body: "drink", FireAt: now.Add(2 * time.Hour), CreatedAt: now},
		{ID: "f", Kind: models.ReminderFollowUp, Meal: models.MealBreakfast, Title: "Sorry", Body: "forgot?", FireAt: now.Add(2 * time.Hour), CreatedAt: now},
	}
	for _, r := range reminders {
		if err := store.AddReminder(r); err != nil {
			t.Fatalf("AddReminder(%s): %v", r.ID, err)
		}
	}

	pending, err := store.GetReminders(false)
	if err != nil {
		t.Fatalf("GetReminders: %v", err)
	}
	if len(pending) != 3 || pending[0].ID != "b" || pending[1].ID != "f" || pending[2].ID != "w" {
		t.Fatalf("unexpected order: %+v", pending)
	}
	if !pending[0].FireAt.Equal(now.Add(time.Hour)) {
		t.Errorf("fire_at = %v", pending[0].FireAt)
	}

	if err := store.MarkReminderSent("b", now.Add(time.Hour)); err != nil {
		t.Fatalf("MarkReminderSent: %v", err)
	}
	if err := store.DeleteReminder("b"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("deleting a sent reminder = %v, want ErrNotFound", err)
	}
	if err := store.DeleteReminder("f"); err != nil {
		t.Errorf("DeleteReminder(f): %v", err)
	}

	n, err := store.DeletePendingReminders()
	if err != nil || n != 1 {
		t.Errorf("DeletePendingReminders() = %d, %v; want 1", n, err)
	}

	all, _ := store.GetReminders(true)
	if len(all) != 1 || all[0].ID != "b" || all[0].SentAt == nil {
		t.Errorf("remaining = %+v", all)
	}
}

func TestSaveSettings(t *testing.T) {
	store := setupTestStore(t)

	want := models.Settings{NotificationsEnabled: false, NotificationGracePeriodMin: 25, Locale: "tr"}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}
