package nutrition

import (
	"fmt"
	"slices"
	"time"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

// Recompute derives every food's totals and the meal totals from the raw
// quantities and per unit values. An empty meal has zero totals.
func Recompute(m *Meal) {
	var totals Nutrients
	var microTotals map[string]float64

	for i := range m.Foods {
		food := &m.Foods[i]
		food.Totals = food.PerUnit.Scale(food.Quantity)
		food.MicronutrientTotals = scaleMicronutrients(food.Micronutrients, food.Quantity)

		totals = totals.Add(food.Totals)
		for name, amount := range food.MicronutrientTotals {
			if microTotals == nil {
				microTotals = make(map[string]float64)
			}
			microTotals[name] += amount
		}
	}

	m.Totals = totals
	m.MicronutrientTotals = microTotals
	m.TimeOfDay = TimeOfDayOf(m.Date)
}

func scaleMicronutrients(perUnit map[string]float64, quantity float64) map[string]float64 {
	if len(perUnit) == 0 {
		return nil
	}
	scaled := make(map[string]float64, len(perUnit))
	for name, amount := range perUnit {
		scaled[name] = amount * quantity
	}
	return scaled
}

// TimeOfDayOf labels a meal time by its UTC hour:
// morning [5, 12), afternoon [12, 17), evening [17, 21), night otherwise.
func TimeOfDayOf(t time.Time) TimeOfDay {
	hour := t.UTC().Hour()
	switch {
	case hour >= 5 && hour < 12:
		return TimeOfDayMorning
	case hour >= 12 && hour < 17:
		return TimeOfDayAfternoon
	case hour >= 17 && hour < 21:
		return TimeOfDayEvening
	default:
		return TimeOfDayNight
	}
}

// AddFood validates the item, appends it and recomputes the totals.
// The meal is left untouched when the item is invalid.
func (m *Meal) AddFood(item FoodItem) error {
	if err := ValidateFood(item); err != nil {
		return err
	}
	m.Foods = append(m.Foods, item)
	Recompute(m)
	return nil
}

// RemoveFood removes the food at index and recomputes the totals.
func (m *Meal) RemoveFood(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	m.Foods = slices.Delete(m.Foods, index, index+1)
	Recompute(m)
	return nil
}

// UpdateFoodQuantity sets the quantity of the food at index. The index is
// checked before the quantity.
func (m *Meal) UpdateFoodQuantity(index int, quantity float64) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	m.Foods[index].Quantity = quantity
	Recompute(m)
	return nil
}

func (m *Meal) checkIndex(index int) error {
	if index < 0 || index >= len(m.Foods) {
		return fmt.Errorf("food %d of %d: %w", index, len(m.Foods), apperr.ErrIndexOutOfRange)
	}
	return nil
}
