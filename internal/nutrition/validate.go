package nutrition

import (
	"fmt"
	"math"
	"strings"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

const (
	maxFoodNameLength = 200
	maxNotesLength    = 1000
)

// Validate checks the required fields and domain constraints of a meal
// and of all of its foods.
func Validate(m *Meal) error {
	if strings.TrimSpace(m.OwnerID) == "" {
		return apperr.Invalid("ownerId", "required")
	}
	if m.Date.IsZero() {
		return apperr.Invalid("date", "required")
	}
	if !m.Slot.Valid() {
		return apperr.Invalidf("mealType", "unknown meal type [%s]", m.Slot)
	}
	if len(m.Notes) > maxNotesLength {
		return apperr.Invalidf("notes", "must not exceed %d characters", maxNotesLength)
	}
	if err := validateLevel("hungerBefore", m.HungerBefore); err != nil {
		return err
	}
	if err := validateLevel("fullnessAfter", m.FullnessAfter); err != nil {
		return err
	}
	for i, food := range m.Foods {
		if err := ValidateFood(food); err != nil {
			return apperr.WithFieldPrefix(fmt.Sprintf("foods[%d]", i), err)
		}
	}
	return nil
}

func ValidateFood(f FoodItem) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return apperr.Invalid("name", "required")
	}
	if len(name) > maxFoodNameLength {
		return apperr.Invalidf("name", "must not exceed %d characters", maxFoodNameLength)
	}
	if err := validateQuantity(f.Quantity); err != nil {
		return err
	}
	if !f.Unit.Valid() {
		return apperr.Invalidf("unit", "unknown unit [%s]", f.Unit)
	}
	if err := validateNutrients(f.PerUnit); err != nil {
		return apperr.WithFieldPrefix("perUnit", err)
	}
	for nutrient, amount := range f.Micronutrients {
		if !isNonNegative(amount) {
			return apperr.Invalid("micronutrients."+nutrient, "must be a non negative number")
		}
	}
	return nil
}

func validateQuantity(q float64) error {
	// also rejects NaN
	if !(q > 0) || math.IsInf(q, 0) {
		return apperr.Invalid("quantity", "must be greater than zero")
	}
	return nil
}

func validateNutrients(n Nutrients) error {
	for _, v := range []struct {
		field string
		value float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbs", n.Carbs},
		{"fat", n.Fat},
		{"fiber", n.Fiber},
		{"sugar", n.Sugar},
		{"sodium", n.Sodium},
		{"cholesterol", n.Cholesterol},
	} {
		if !isNonNegative(v.value) {
			return apperr.Invalid(v.field, "must be a non negative number")
		}
	}
	return nil
}

func validateLevel(field string, level *int) error {
	if level == nil {
		return nil
	}
	if *level < 1 || *level > 10 {
		return apperr.Invalid(field, "must be between 1 and 10")
	}
	return nil
}

func isNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
