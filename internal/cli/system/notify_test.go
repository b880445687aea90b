package system

import (
	"testing"
	"time"

	"github.com/julianstephens/nourish/internal/models"
)

func seedDueReminder(t *testing.T, store interface {
	AddReminder(models.Reminder) error
}) {
	t.Helper()
	r := models.Reminder{
		ID:        "due",
		Kind:      models.ReminderWater,
		Title:     "Water Time 💧",
		Body:      "Have a glass of water.",
		FireAt:    testNow.Add(-time.Minute),
		CreatedAt: testNow.Add(-time.Hour),
	}
	if err := store.AddReminder(r); err != nil {
		t.Fatal(err)
	}
}

func TestNotifyCmd_DryRunLeavesRemindersPending(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()
	seedDueReminder(t, ctx.Store)

	if err := (&NotifyCmd{DryRun: true}).Run(ctx); err != nil {
		t.Fatalf("notify --dry-run failed: %v", err)
	}

	pending, err := ctx.Store.GetReminders(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Errorf("expected reminder to stay pending after dry run, got %d pending", len(pending))
	}
}

func TestNotifyCmd_Disabled(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()
	seedDueReminder(t, ctx.Store)

	settings := models.DefaultSettings()
	settings.NotificationsEnabled = false
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	if err := (&NotifyCmd{}).Run(ctx); err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	pending, _ := ctx.Store.GetReminders(false)
	if len(pending) != 1 {
		t.Errorf("disabled notifications should not touch reminders, got %d pending", len(pending))
	}
}
