package models

import "time"

type ReminderKind string

const (
	ReminderMeal     ReminderKind = "meal"
	ReminderFollowUp ReminderKind = "follow_up"
	ReminderWater    ReminderKind = "water"
)

// Reminder is a scheduled, not necessarily delivered, notification.
type Reminder struct {
	ID        string       `json:"id"`
	Kind      ReminderKind `json:"kind"`
	Meal      MealID       `json:"meal,omitempty"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	FireAt    time.Time    `json:"fire_at"`
	SentAt    *time.Time   `json:"sent_at,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Pending reports whether the reminder has not been delivered yet.
func (r Reminder) Pending() bool {
	return r.SentAt == nil
}
