package models

import (
	"fmt"
	"time"
)

// ClockTime is a device-local time of day with no date component.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseClockTime parses an HH:MM string into a ClockTime.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time %q (expected HH:MM): %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Validate reports whether the hour and minute are within range.
func (c ClockTime) Validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("hour %d out of range (0-23)", c.Hour)
	}
	if c.Minute < 0 || c.Minute > 59 {
		return fmt.Errorf("minute %d out of range (0-59)", c.Minute)
	}
	return nil
}

// String formats the time as HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On returns the instant at this time of day on the given calendar day,
// in the day's location.
func (c ClockTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

// Add shifts the time of day by d, wrapping around midnight.
func (c ClockTime) Add(d time.Duration) ClockTime {
	const day = 24 * 60
	mins := (c.Hour*60 + c.Minute + int(d/time.Minute)) % day
	if mins < 0 {
		mins += day
	}
	return ClockTime{Hour: mins / 60, Minute: mins % 60}
}
