package engine

import (
	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/models"
)

// Snapshot is a read-only view of the day state.
type Snapshot struct {
	WakeUp   *models.ClockTime     `json:"wakeUpTime"`
	Schedule models.Schedule       `json:"schedule"`
	Eaten    models.EatenStatus    `json:"eatenStatus"`
	Water    int                   `json:"waterCount"`
	Streak   models.Streak         `json:"streak"`
	History  []models.HistoryEntry `json:"history"`
}

// HasPlan reports whether a schedule exists.
func (s Snapshot) HasPlan() bool {
	return s.Schedule != nil
}

// DoingWell is true on a streak of at least three days or after five glasses.
func (s Snapshot) DoingWell() bool {
	return s.Streak.Count >= constants.DoingWellStreak || s.Water >= constants.DoingWellWater
}

// WaterRemaining is how many glasses are left to reach the daily target.
func (s Snapshot) WaterRemaining() int {
	return max(constants.WaterTarget-s.Water, 0)
}

func (s Snapshot) clone() Snapshot {
	out := s
	if s.WakeUp != nil {
		w := *s.WakeUp
		out.WakeUp = &w
	}
	if s.Schedule != nil {
		out.Schedule = make(models.Schedule, len(s.Schedule))
		for k, v := range s.Schedule {
			if v.FollowUpID != nil {
				id := *v.FollowUpID
				v.FollowUpID = &id
			}
			out.Schedule[k] = v
		}
	}
	out.Eaten = s.Eaten.Clone()
	if s.Streak.LastDate != nil {
		d := *s.Streak.LastDate
		out.Streak.LastDate = &d
	}
	out.History = append([]models.HistoryEntry(nil), s.History...)
	return out
}
