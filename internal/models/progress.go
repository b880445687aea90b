package models

import "sort"

// Streak counts days on which all meals were eaten.
type Streak struct {
	Count    int     `json:"count"`
	LastDate *string `json:"lastDate"` // YYYY-MM-DD of the latest completed day
}

// CompletedOn reports whether the streak was already extended on date.
func (s Streak) CompletedOn(date string) bool {
	return s.LastDate != nil && *s.LastDate == date
}

// HistoryEntry summarizes a single archived day.
type HistoryEntry struct {
	Date  string `json:"date"` // YYYY-MM-DD format
	Water int    `json:"water"`
	Meals int    `json:"meals"`
}

// AppendHistory merges entry into log. An entry with the same date is
// replaced, the result is sorted newest first and truncated to limit.
func AppendHistory(log []HistoryEntry, entry HistoryEntry, limit int) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(log)+1)
	out = append(out, entry)
	for _, e := range log {
		if e.Date != entry.Date {
			out = append(out, e)
		}
	}

	// YYYY-MM-DD sorts lexically
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
