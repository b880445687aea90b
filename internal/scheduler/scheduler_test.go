package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/nourish/internal/models"
)

func TestDerive_Nil(t *testing.T) {
	assert.Nil(t, Derive(nil))
}

func TestDerive_SevenAM(t *testing.T) {
	d := Derive(&models.ClockTime{Hour: 7, Minute: 0})
	require.NotNil(t, d)

	var meals []string
	for _, m := range d.Meals {
		meals = append(meals, m.Time.String())
	}
	assert.Equal(t, []string{"08:00", "12:00", "17:00"}, meals)
	assert.Equal(t, models.MealBreakfast, d.Meals[0].Meal)
	assert.Equal(t, models.MealDinner, d.Meals[2].Meal)

	var water []string
	for _, w := range d.Water {
		water = append(water, w.String())
	}
	assert.Equal(t, []string{"09:00", "11:00", "13:00", "15:00"}, water)
}

func TestDerive_OffsetsHoldForEveryTime(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 15, 59} {
			wake := models.ClockTime{Hour: h, Minute: m}
			d := Derive(&wake)

			breakfast, _ := d.MealTimeOf(models.MealBreakfast)
			lunch, _ := d.MealTimeOf(models.MealLunch)
			dinner, _ := d.MealTimeOf(models.MealDinner)

			assert.Equal(t, models.ClockTime{Hour: (h + 1) % 24, Minute: m}, breakfast)
			assert.Equal(t, models.ClockTime{Hour: (h + 5) % 24, Minute: m}, lunch)
			assert.Equal(t, models.ClockTime{Hour: (h + 10) % 24, Minute: m}, dinner)
		}
	}
}

func TestDerive_WrapsPastMidnight(t *testing.T) {
	d := Derive(&models.ClockTime{Hour: 22, Minute: 30})

	dinner, ok := d.MealTimeOf(models.MealDinner)
	require.True(t, ok)
	assert.Equal(t, "08:30", dinner.String())
	assert.Equal(t, "06:30", d.Water[3].String())
}

func TestDerivation_At(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	a := Derive(&models.ClockTime{Hour: 22, Minute: 30}).At(day)

	require.Len(t, a.Meals, 3)
	assert.Equal(t, time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC), a.Meals[0].At)
	assert.Equal(t, time.Date(2026, 3, 15, 3, 30, 0, 0, time.UTC), a.Meals[1].At)
	assert.Equal(t, time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC), a.Meals[2].At)

	require.Len(t, a.Water, 4)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 30, 0, 0, time.UTC), a.Water[0])
}
