package models

import "fmt"

type MealID string

const (
	MealBreakfast MealID = "breakfast"
	MealLunch     MealID = "lunch"
	MealDinner    MealID = "dinner"
)

// Meals lists the meal identifiers in the order they occur during the day.
var Meals = []MealID{MealBreakfast, MealLunch, MealDinner}

// ParseMealID validates a meal identifier.
func ParseMealID(s string) (MealID, error) {
	for _, m := range Meals {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown meal %q (expected breakfast, lunch or dinner)", s)
}

// MealSlot is one planned meal of the day.
type MealSlot struct {
	Name       string  `json:"name"`
	Time       string  `json:"time"`                   // HH:MM format
	FollowUpID *string `json:"followUpId,omitempty"` // handle of the pending "forgot to eat" reminder
}

// Schedule maps each meal to its slot. A nil Schedule means no plan yet.
type Schedule map[MealID]MealSlot

// EatenStatus records which meals have been eaten today.
type EatenStatus map[MealID]bool

// Count returns the number of meals marked eaten.
func (e EatenStatus) Count() int {
	n := 0
	for _, m := range Meals {
		if e[m] {
			n++
		}
	}
	return n
}

// AllEaten reports whether every meal is marked eaten.
func (e EatenStatus) AllEaten() bool {
	return e.Count() == len(Meals)
}

// Clone returns a copy that can be mutated independently.
func (e EatenStatus) Clone() EatenStatus {
	out := make(EatenStatus, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
