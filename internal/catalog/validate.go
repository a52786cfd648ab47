package catalog

import (
	"fmt"
	"strings"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

const maxNameLength = 100

func Validate(e *Exercise) error {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return apperr.Invalid("name", "required")
	}
	if len(name) > maxNameLength {
		return apperr.Invalidf("name", "must not exceed %d characters", maxNameLength)
	}
	if !categories[e.Category] {
		return apperr.Invalidf("category", "unknown category [%s]", e.Category)
	}
	switch e.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return apperr.Invalidf("difficulty", "unknown difficulty [%s]", e.Difficulty)
	}
	if len(e.MuscleGroups) == 0 {
		return apperr.Invalid("muscleGroups", "at least one muscle group is required")
	}
	for i, mg := range e.MuscleGroups {
		if !muscleGroups[mg] {
			return apperr.Invalidf(fmt.Sprintf("muscleGroups[%d]", i), "unknown muscle group [%s]", mg)
		}
	}
	if !equipment[e.Equipment] {
		return apperr.Invalidf("equipment", "unknown equipment [%s]", e.Equipment)
	}
	if e.CaloriesPerMinute != nil && !(*e.CaloriesPerMinute >= 0) {
		return apperr.Invalid("caloriesPerMinute", "must be a non negative number")
	}
	return nil
}

// validateSearch checks the set filters and fills in the default limit.
func validateSearch(params *SearchParams) error {
	params.Query = strings.TrimSpace(params.Query)
	if params.Category != "" && !categories[params.Category] {
		return apperr.Invalidf("category", "unknown category [%s]", params.Category)
	}
	switch params.Difficulty {
	case "", DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return apperr.Invalidf("difficulty", "unknown difficulty [%s]", params.Difficulty)
	}
	for i, mg := range params.MuscleGroups {
		if !muscleGroups[mg] {
			return apperr.Invalidf(fmt.Sprintf("muscleGroups[%d]", i), "unknown muscle group [%s]", mg)
		}
	}
	if params.Equipment != "" && !equipment[params.Equipment] {
		return apperr.Invalidf("equipment", "unknown equipment [%s]", params.Equipment)
	}
	if !(params.MinRating >= 0 && params.MinRating <= MaxRating) {
		return apperr.Invalidf("minRating", "must be between 0 and %d", MaxRating)
	}
	return validateLimit(&params.Limit, DefaultListLimit)
}

func validateLimit(limit *int, defaultLimit int) error {
	if *limit == 0 {
		*limit = defaultLimit
	}
	if *limit < 0 || *limit > MaxListLimit {
		return apperr.Invalidf("limit", "must be between 1 and %d", MaxListLimit)
	}
	return nil
}
