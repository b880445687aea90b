package system

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/nourish/internal/cli"
	"github.com/julianstephens/nourish/internal/storage/sqlite"
)

var testNow = time.Date(2026, 5, 1, 7, 30, 0, 0, time.Local)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nourish.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := &cli.Context{
		Store: store,
		Now:   func() time.Time { return testNow },
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}
	return ctx, cleanup
}
