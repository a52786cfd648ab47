//go:build integration_test

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daya-2619/fitnesstracking/internal/nutrition"
	"github.com/daya-2619/fitnesstracking/internal/summary"
)

func (s *IntegrationTestSuite) TestMealsAndNutritionSummary() {
	ctx := context.Background()
	t := s.T()
	owner := "meal-owner"
	day := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	var breakfast nutrition.Meal
	s.doRequest(ctx, "POST", "/meals", owner, nutrition.Meal{
		Date: day.Add(-4 * time.Hour),
		Slot: "Snacks",
		Foods: []nutrition.FoodItem{
			{Name: "oats", Quantity: 2, Unit: nutrition.UnitServing, PerUnit: nutrition.Nutrients{Calories: 150, Protein: 5}},
		},
	}, http.StatusCreated, &breakfast)
	assert.Equal(t, nutrition.SlotSnack, breakfast.Slot)
	assert.Equal(t, 300.0, breakfast.Totals.Calories)
	assert.Equal(t, 1, breakfast.Version)

	var updated nutrition.Meal
	s.doRequest(ctx, "POST", fmt.Sprintf("/meals/%d/foods", breakfast.ID), owner, nutrition.FoodItem{
		Name: "milk", Quantity: 200, Unit: nutrition.UnitMilliliter, PerUnit: nutrition.Nutrients{Calories: 0.5, Protein: 0.035},
	}, http.StatusOK, &updated)
	assert.Equal(t, 400.0, updated.Totals.Calories)
	assert.InDelta(t, 17.0, updated.Totals.Protein, 1e-9)
	assert.Equal(t, 2, updated.Version)

	s.doRequest(ctx, "PUT", fmt.Sprintf("/meals/%d/foods/0", breakfast.ID), owner,
		nutrition.UpdateQuantityRequest{Quantity: 1}, http.StatusOK, &updated)
	assert.Equal(t, 250.0, updated.Totals.Calories)

	s.doRequest(ctx, "DELETE", fmt.Sprintf("/meals/%d/foods/5", breakfast.ID), owner, nil, http.StatusBadRequest, nil)

	// other owners do not see the meal
	s.doRequest(ctx, "GET", fmt.Sprintf("/meals/%d", breakfast.ID), "someone-else", nil, http.StatusNotFound, nil)

	var dinner nutrition.Meal
	s.doRequest(ctx, "POST", "/meals", owner, nutrition.Meal{
		Date: day.Add(7 * time.Hour),
		Slot: nutrition.SlotDinner,
		Foods: []nutrition.FoodItem{
			{Name: "pasta", Quantity: 1, Unit: nutrition.UnitServing, PerUnit: nutrition.Nutrients{Calories: 750}},
		},
	}, http.StatusCreated, &dinner)

	var meals []nutrition.Meal
	s.doRequest(ctx, "GET", "/meals?date=2024-03-04", owner, nil, http.StatusOK, &meals)
	require.Len(t, meals, 2)

	var rangeSummary summary.Summary
	s.doRequest(ctx, "GET", "/summary/nutrition?from=2024-03-04&to=2024-03-05", owner, nil, http.StatusOK, &rangeSummary)
	assert.Equal(t, 2, rangeSummary.Count)
	require.NotNil(t, rangeSummary.Nutrition)
	assert.Equal(t, 1000.0, rangeSummary.Nutrition.Calories.Sum)
	assert.Equal(t, 500.0, *rangeSummary.Nutrition.Calories.Mean)

	var daily []summary.DailySummary
	s.doRequest(ctx, "GET", "/summary/nutrition/weekly?start=2024-03-01", owner, nil, http.StatusOK, &daily)
	require.Len(t, daily, 1)
	assert.Equal(t, "2024-03-04", daily[0].Date)

	var deleted nutrition.DeleteMealResponse
	s.doRequest(ctx, "DELETE", fmt.Sprintf("/meals/%d", dinner.ID), owner, nil, http.StatusOK, &deleted)
	assert.Equal(t, dinner.ID, deleted.DeletedID)

	var count int
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM meal WHERE owner_id = $1`, owner).Scan(&count))
	assert.Equal(t, 1, count)
}
