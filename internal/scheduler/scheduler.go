// Package scheduler derives the day's meal and water times from a wake-up time.
package scheduler

import (
	"time"

	"github.com/julianstephens/nourish/internal/models"
)

// Meal offsets from wake-up.
const (
	BreakfastOffset = 1 * time.Hour
	LunchOffset     = 5 * time.Hour
	DinnerOffset    = 10 * time.Hour
)

// WaterOffsets are the water checks after wake-up.
var WaterOffsets = []time.Duration{2 * time.Hour, 4 * time.Hour, 6 * time.Hour, 8 * time.Hour}

// MealTime pairs a meal with its time of day and offset from wake-up.
type MealTime struct {
	Meal   models.MealID
	Time   models.ClockTime
	Offset time.Duration
}

// Derivation holds everything computed from a single wake-up time.
type Derivation struct {
	Wake  models.ClockTime
	Meals []MealTime
	Water []models.ClockTime
}

// Derive computes meal and water times for the given wake-up. A nil wake-up
// means no plan yet and yields nil.
func Derive(wake *models.ClockTime) *Derivation {
	if wake == nil {
		return nil
	}

	d := &Derivation{Wake: *wake}
	offsets := map[models.MealID]time.Duration{
		models.MealBreakfast: BreakfastOffset,
		models.MealLunch:     LunchOffset,
		models.MealDinner:    DinnerOffset,
	}
	for _, meal := range models.Meals {
		off := offsets[meal]
		d.Meals = append(d.Meals, MealTime{Meal: meal, Time: wake.Add(off), Offset: off})
	}
	for _, off := range WaterOffsets {
		d.Water = append(d.Water, wake.Add(off))
	}
	return d
}

// MealTimeOf returns the derived time for a meal.
func (d *Derivation) MealTimeOf(meal models.MealID) (models.ClockTime, bool) {
	for _, m := range d.Meals {
		if m.Meal == meal {
			return m.Time, true
		}
	}
	return models.ClockTime{}, false
}

// Instant is a derived time anchored to a calendar day.
type Instant struct {
	Meal models.MealID // empty for water checks
	At   time.Time
}

// Anchored is a Derivation resolved to absolute instants.
type Anchored struct {
	Meals []Instant
	Water []time.Time
}

// At anchors the derivation to day's wake-up in day's location. Offsets are
// added to the wake-up instant, so late wake-ups roll into the next day.
func (d *Derivation) At(day time.Time) Anchored {
	start := d.Wake.On(day)
	var a Anchored
	for _, m := range d.Meals {
		a.Meals = append(a.Meals, Instant{Meal: m.Meal, At: start.Add(m.Offset)})
	}
	for _, off := range WaterOffsets {
		a.Water = append(a.Water, start.Add(off))
	}
	return a
}
