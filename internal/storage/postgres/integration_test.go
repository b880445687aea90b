package postgres

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/nourish/internal/models"
)

// Set POSTGRES_TEST_URL to run, e.g.
// POSTGRES_TEST_URL="postgres://nourish@localhost:5432/nourish_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	t.Run("Settings", func(t *testing.T) {
		if _, err := store.GetSettings(); err != nil {
			t.Fatalf("GetSettings: %v", err)
		}
	})

	t.Run("State", func(t *testing.T) {
		if err := store.SaveWaterCount(6); err != nil {
			t.Fatalf("SaveWaterCount: %v", err)
		}
		if n, err := store.GetWaterCount(); err != nil || n != 6 {
			t.Errorf("GetWaterCount() = %d, %v", n, err)
		}
	})

	t.Run("History", func(t *testing.T) {
		entries := []models.HistoryEntry{{Date: "2026-05-02", Water: 3, Meals: 2}, {Date: "2026-05-01", Water: 8, Meals: 3}}
		if err := store.SaveHistory(entries); err != nil {
			t.Fatalf("SaveHistory: %v", err)
		}
		got, err := store.GetHistory()
		if err != nil || len(got) != 2 || got[0].Date != "2026-05-02" {
			t.Errorf("GetHistory() = %+v, %v", got, err)
		}
	})

	t.Run("Reminders", func(t *testing.T) {
		if _, err := store.DeletePendingReminders(); err != nil {
			t.Fatalf("DeletePendingReminders: %v", err)
		}
		now := time.Now().Truncate(time.Second)
		r := models.Reminder{ID: uuid.NewString(), Kind: models.ReminderWater, Title: "Water", Body: "drink", FireAt: now.Add(time.Hour), CreatedAt: now}
		if err := store.AddReminder(r); err != nil {
			t.Fatalf("AddReminder: %v", err)
		}
		pending, err := store.GetReminders(false)
		if err != nil || len(pending) != 1 || !pending[0].FireAt.Equal(r.FireAt) {
			t.Errorf("GetReminders() = %+v, %v", pending, err)
		}
		if err := store.DeleteReminder(r.ID); err != nil {
			t.Errorf("DeleteReminder: %v", err)
		}
	})
}
