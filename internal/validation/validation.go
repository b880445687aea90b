package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/engine"
	"github.com/julianstephens/nourish/internal/models"
	"github.com/julianstephens/nourish/internal/scheduler"
	"github.com/julianstephens/nourish/internal/utils"
)

// ConflictType represents the type of integrity problem found
type ConflictType string

const (
	ConflictMissingSchedule  ConflictType = "missing_schedule"
	ConflictScheduleMismatch ConflictType = "schedule_mismatch"
	ConflictInvalidTime      ConflictType = "invalid_time"
	ConflictLostFollowUp     ConflictType = "lost_follow_up"
	ConflictOrphanReminder   ConflictType = "orphan_reminder"
	ConflictNegativeCount    ConflictType = "negative_count"
	ConflictInvalidDate      ConflictType = "invalid_date"
	ConflictFutureDate       ConflictType = "future_date"
	ConflictHistoryOrder     ConflictType = "history_order"
)

// Conflict is one problem found in the stored day state
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

func (vr *ValidationResult) add(t ConflictType, items []string, format string, args ...any) {
	vr.Conflicts = append(vr.Conflicts, Conflict{Type: t, Description: fmt.Sprintf(format, args...), Items: items})
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}
	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateDay checks the stored day state and reminder rows for consistency.
func (v *Validator) ValidateDay(s engine.Snapshot, reminders []models.Reminder, now time.Time) ValidationResult {
	var result ValidationResult
	v.checkSchedule(&result, s)
	v.checkFollowUps(&result, s, reminders)
	v.checkCounters(&result, s, now)
	v.checkHistory(&result, s.History, now)
	return result
}

func (v *Validator) checkSchedule(result *ValidationResult, s engine.Snapshot) {
	switch {
	case s.WakeUp == nil && s.Schedule == nil:
		return
	case s.WakeUp == nil:
		result.add(ConflictMissingSchedule, nil, "Schedule exists but no wake-up time is stored")
		return
	case s.Schedule == nil:
		result.add(ConflictMissingSchedule, nil, "Wake-up time %s is stored but no schedule was saved", s.WakeUp)
		return
	}

	for _, mt := range scheduler.Derive(s.WakeUp).Meals {
		slot, ok := s.Schedule[mt.Meal]
		if !ok {
			result.add(ConflictMissingSchedule, []string{string(mt.Meal)}, "Schedule has no %s slot", mt.Meal)
			continue
		}
		if !utils.ValidateTimeFormat(slot.Time) {
			result.add(ConflictInvalidTime, []string{string(mt.Meal)}, "Meal %s has invalid time: %q", mt.Meal, slot.Time)
			continue
		}
		if slot.Time != mt.Time.String() {
			result.add(ConflictScheduleMismatch, []string{string(mt.Meal)},
				"Meal %s is at %s but wake-up %s puts it at %s", mt.Meal, slot.Time, s.WakeUp, mt.Time)
		}
	}
}

func (v *Validator) checkFollowUps(result *ValidationResult, s engine.Snapshot, reminders []models.Reminder) {
	byID := make(map[string]models.Reminder, len(reminders))
	for _, r := range reminders {
		byID[r.ID] = r
	}

	referenced := map[string]bool{}
	for _, meal := range models.Meals {
		slot, ok := s.Schedule[meal]
		if !ok || slot.FollowUpID == nil {
			continue
		}
		id := *slot.FollowUpID
		referenced[id] = true
		if _, ok := byID[id]; !ok && !s.Eaten[meal] {
			result.add(ConflictLostFollowUp, []string{string(meal), id}, "Follow-up %s for %s has no reminder row", id, meal)
		}
	}

	for _, r := range reminders {
		if r.Kind == models.ReminderFollowUp && r.Pending() && !referenced[r.ID] {
			result.add(ConflictOrphanReminder, []string{r.ID}, "Pending follow-up %s is not part of the current schedule", r.ID)
		}
	}
}

func (v *Validator) checkCounters(result *ValidationResult, s engine.Snapshot, now time.Time) {
	if s.Water < 0 {
		result.add(ConflictNegativeCount, nil, "Water count is negative: %d", s.Water)
	}
	if s.Streak.Count < 0 {
		result.add(ConflictNegativeCount, nil, "Streak count is negative: %d", s.Streak.Count)
	}
	if s.Streak.LastDate != nil {
		v.checkDate(result, "Streak", *s.Streak.LastDate, now)
	} else if s.Streak.Count > 0 {
		result.add(ConflictInvalidDate, nil, "Streak of %d has no completion date", s.Streak.Count)
	}
}

func (v *Validator) checkHistory(result *ValidationResult, history []models.HistoryEntry, now time.Time) {
	if len(history) > constants.HistoryLimit {
		result.add(ConflictHistoryOrder, nil, "History holds %d entries, limit is %d", len(history), constants.HistoryLimit)
	}

	seen := map[string]bool{}
	for _, e := range history {
		if seen[e.Date] {
			result.add(ConflictHistoryOrder, []string{e.Date}, "History has duplicate date %s", e.Date)
		}
		seen[e.Date] = true
		v.checkDate(result, "History entry", e.Date, now)
		if e.Water < 0 || e.Meals < 0 || e.Meals > len(models.Meals) {
			result.add(ConflictNegativeCount, []string{e.Date}, "History entry %s has out of range counts (water %d, meals %d)", e.Date, e.Water, e.Meals)
		}
	}

	if !sort.SliceIsSorted(history, func(i, j int) bool { return history[i].Date > history[j].Date }) {
		result.add(ConflictHistoryOrder, nil, "History is not ordered newest first")
	}
}

func (v *Validator) checkDate(result *ValidationResult, what, date string, now time.Time) {
	d, err := time.ParseInLocation(constants.DateFormat, date, now.Location())
	if err != nil {
		result.add(ConflictInvalidDate, []string{date}, "%s has invalid date: %q", what, date)
		return
	}
	if d.After(now) {
		result.add(ConflictFutureDate, []string{date}, "%s date %s is in the future", what, date)
	}
}
