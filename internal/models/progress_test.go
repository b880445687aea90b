package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dates(log []HistoryEntry) []string {
	var out []string
	for _, e := range log {
		out = append(out, e.Date)
	}
	return out
}

func TestAppendHistory_DropsOldestPastLimit(t *testing.T) {
	var log []HistoryEntry
	for _, d := range []string{"2026-05-01", "2026-05-02", "2026-05-03", "2026-05-04", "2026-05-05", "2026-05-06", "2026-05-07"} {
		log = AppendHistory(log, HistoryEntry{Date: d, Water: 1}, 7)
	}
	assert.Len(t, log, 7)

	log = AppendHistory(log, HistoryEntry{Date: "2026-05-08", Water: 2, Meals: 3}, 7)

	assert.Equal(t, []string{
		"2026-05-08", "2026-05-07", "2026-05-06", "2026-05-05", "2026-05-04", "2026-05-03", "2026-05-02",
	}, dates(log))
}

func TestAppendHistory_ReplacesSameDate(t *testing.T) {
	log := []HistoryEntry{{Date: "2026-05-02", Water: 1}, {Date: "2026-05-01", Water: 5}}

	log = AppendHistory(log, HistoryEntry{Date: "2026-05-02", Water: 7, Meals: 2}, 7)

	assert.Len(t, log, 2)
	assert.Equal(t, HistoryEntry{Date: "2026-05-02", Water: 7, Meals: 2}, log[0])
}

func TestAppendHistory_OrdersDescending(t *testing.T) {
	log := []HistoryEntry{{Date: "2026-05-05"}, {Date: "2026-05-01"}}

	log = AppendHistory(log, HistoryEntry{Date: "2026-05-03"}, 7)

	assert.Equal(t, []string{"2026-05-05", "2026-05-03", "2026-05-01"}, dates(log))
}

func TestAppendHistory_DoesNotMutateInput(t *testing.T) {
	log := []HistoryEntry{{Date: "2026-05-01", Water: 1}}
	_ = AppendHistory(log, HistoryEntry{Date: "2026-05-01", Water: 9}, 7)
	assert.Equal(t, 1, log[0].Water)
}

func TestStreakCompletedOn(t *testing.T) {
	d := "2026-05-01"
	assert.False(t, Streak{}.CompletedOn(d))
	assert.True(t, Streak{Count: 1, LastDate: &d}.CompletedOn(d))
	assert.False(t, Streak{Count: 1, LastDate: &d}.CompletedOn("2026-05-02"))
}
