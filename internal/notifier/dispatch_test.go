package notifier

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/nourish/internal/models"
)

type recordingSender struct {
	titles []string
	err    error
}

func (s *recordingSender) Notify(_ context.Context, title, _ string) error {
	s.titles = append(s.titles, title)
	return s.err
}

var dispatchNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func seedReminders(t *testing.T, store interface{ AddReminder(models.Reminder) error }) {
	t.Helper()
	for _, r := range []models.Reminder{
		{ID: "stale", Kind: models.ReminderWater, Title: "stale", FireAt: dispatchNow.Add(-30 * time.Minute)},
		{ID: "due", Kind: models.ReminderMeal, Meal: models.MealLunch, Title: "due", FireAt: dispatchNow.Add(-time.Minute)},
		{ID: "later", Kind: models.ReminderWater, Title: "later", FireAt: dispatchNow.Add(time.Hour)},
	} {
		r.CreatedAt = dispatchNow.Add(-2 * time.Hour)
		require.NoError(t, store.AddReminder(r))
	}
}

func pendingIDs(t *testing.T, store DispatchStore) []string {
	t.Helper()
	rs, err := store.GetReminders(false)
	require.NoError(t, err)
	var ids []string
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestDispatchDue(t *testing.T) {
	store := newTestStore(t)
	seedReminders(t, store)
	sender := &recordingSender{}
	d := NewDispatcher(store, sender)
	ctx := context.Background()

	res, err := d.DispatchDue(ctx, dispatchNow)
	require.NoError(t, err)
	assert.Equal(t, Result{Delivered: 1, Stale: 1}, res)
	assert.Equal(t, []string{"due"}, sender.titles)
	assert.Equal(t, []string{"later"}, pendingIDs(t, store))

	res, err = d.DispatchDue(ctx, dispatchNow)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	assert.Len(t, sender.titles, 1)
}

func TestDispatchDueFailureIsNotRetried(t *testing.T) {
	store := newTestStore(t)
	seedReminders(t, store)
	sender := &recordingSender{err: errors.New("tray gone")}

	res, err := NewDispatcher(store, sender).DispatchDue(context.Background(), dispatchNow)
	require.NoError(t, err)
	assert.Equal(t, Result{Failed: 1, Stale: 1}, res)
	assert.Equal(t, []string{"later"}, pendingIDs(t, store))
}

func TestDispatchDueDryRun(t *testing.T) {
	store := newTestStore(t)
	seedReminders(t, store)
	sender := &recordingSender{}
	var out bytes.Buffer

	res, err := NewDispatcher(store, sender, WithDryRun(&out)).DispatchDue(context.Background(), dispatchNow)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Delivered)
	assert.Empty(t, sender.titles)
	assert.Contains(t, out.String(), "[DryRun] due")
	assert.Equal(t, 1, res.Stale)
	assert.Equal(t, []string{"stale", "due", "later"}, pendingIDs(t, store))
}

func TestDispatchDueDisabled(t *testing.T) {
	store := newTestStore(t)
	seedReminders(t, store)
	settings, err := store.GetSettings()
	require.NoError(t, err)
	settings.NotificationsEnabled = false
	require.NoError(t, store.SaveSettings(settings))
	sender := &recordingSender{}

	res, err := NewDispatcher(store, sender).DispatchDue(context.Background(), dispatchNow)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	assert.Len(t, pendingIDs(t, store), 3)
}

func TestWatchStopsOnCancel(t *testing.T) {
	store := newTestStore(t)
	seedReminders(t, store)
	sender := &recordingSender{}
	ctx, cancel := context.WithCancel(context.Background())

	passes := 0
	err := NewDispatcher(store, sender).Watch(ctx, time.Millisecond, func() time.Time { return dispatchNow }, func(Result) {
		passes++
		if passes == 2 {
			cancel()
		}
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, passes, 2)
	assert.Equal(t, []string{"due"}, sender.titles)
}
