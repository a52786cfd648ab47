//go:build integration_test

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daya-2619/fitnesstracking/internal/catalog"
)

func (s *IntegrationTestSuite) TestCatalogReviewsAndPopularity() {
	ctx := context.Background()
	t := s.T()

	newExercise := func(name string) catalog.Exercise {
		return catalog.Exercise{
			Name:         name,
			Category:     catalog.CategoryStrength,
			Difficulty:   catalog.DifficultyIntermediate,
			MuscleGroups: []string{"chest", "triceps"},
			Equipment:    catalog.EquipmentBarbell,
		}
	}

	var bench, dips catalog.Exercise
	s.doRequest(ctx, "POST", "/exercises", "admin", newExercise("bench press"), http.StatusCreated, &bench)
	s.doRequest(ctx, "POST", "/exercises", "admin", newExercise("dips"), http.StatusCreated, &dips)
	s.doRequest(ctx, "POST", "/exercises", "admin", newExercise("bench press"), http.StatusBadRequest, nil)

	var reviewed catalog.Exercise
	s.doRequest(ctx, "POST", fmt.Sprintf("/exercises/%d/reviews", bench.ID), "user-a",
		catalog.ReviewRequest{Rating: 4}, http.StatusOK, &reviewed)
	s.doRequest(ctx, "POST", fmt.Sprintf("/exercises/%d/reviews", bench.ID), "user-b",
		catalog.ReviewRequest{Rating: 5, Comment: "classic"}, http.StatusOK, &reviewed)
	assert.Equal(t, 4.5, reviewed.Rating.Average)
	assert.Equal(t, 2, reviewed.Rating.Count)

	// a second review of the same reviewer replaces the first one
	s.doRequest(ctx, "POST", fmt.Sprintf("/exercises/%d/reviews", bench.ID), "user-a",
		catalog.ReviewRequest{Rating: 1}, http.StatusOK, &reviewed)
	assert.Equal(t, 3.0, reviewed.Rating.Average)
	assert.Len(t, reviewed.Reviews, 2)

	s.doRequest(ctx, "POST", fmt.Sprintf("/exercises/%d/reviews", bench.ID), "user-c",
		catalog.ReviewRequest{Rating: 6}, http.StatusBadRequest, nil)

	s.doRequest(ctx, "DELETE", fmt.Sprintf("/exercises/%d/reviews", bench.ID), "user-b", nil, http.StatusOK, &reviewed)
	assert.Equal(t, 1.0, reviewed.Rating.Average)
	assert.Equal(t, 1, reviewed.Rating.Count)

	for i := 0; i < 3; i++ {
		s.doRequest(ctx, "GET", fmt.Sprintf("/exercises/%d", dips.ID), "user-a", nil, http.StatusOK, nil)
	}

	var popular []catalog.Exercise
	s.doRequest(ctx, "GET", "/exercises/popular?limit=2", "user-a", nil, http.StatusOK, &popular)
	require.Len(t, popular, 2)
	assert.Equal(t, dips.ID, popular[0].ID)
	assert.Equal(t, 3, popular[0].UsageCount)

	s.doRequest(ctx, "GET", "/exercises/999999", "user-a", nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestCatalogSearchAndCategories() {
	ctx := context.Background()
	t := s.T()

	newExercise := func(name string, difficulty catalog.Difficulty, muscles ...string) catalog.Exercise {
		return catalog.Exercise{
			Name:         name,
			Category:     catalog.CategoryYoga,
			Difficulty:   difficulty,
			MuscleGroups: muscles,
			Equipment:    catalog.EquipmentBodyweight,
			Description:  "yoga flow pose",
		}
	}

	var warrior, crow, pigeon catalog.Exercise
	s.doRequest(ctx, "POST", "/exercises", "admin", newExercise("warrior two", catalog.DifficultyBeginner, "quadriceps", "glutes"), http.StatusCreated, &warrior)
	s.doRequest(ctx, "POST", "/exercises", "admin", newExercise("crow", catalog.DifficultyAdvanced, "core", "forearms"), http.StatusCreated, &crow)
	s.doRequest(ctx, "POST", "/exercises", "admin", newExercise("pigeon", catalog.DifficultyBeginner, "flexibility", "glutes"), http.StatusCreated, &pigeon)

	s.doRequest(ctx, "POST", fmt.Sprintf("/exercises/%d/reviews", crow.ID), "user-a", catalog.ReviewRequest{Rating: 5}, http.StatusOK, nil)
	s.doRequest(ctx, "POST", fmt.Sprintf("/exercises/%d/reviews", pigeon.ID), "user-a", catalog.ReviewRequest{Rating: 3}, http.StatusOK, nil)

	var byCategory []catalog.Exercise
	s.doRequest(ctx, "GET", "/exercises/category/yoga", "user-a", nil, http.StatusOK, &byCategory)
	require.Len(t, byCategory, 3)
	assert.Equal(t, crow.ID, byCategory[0].ID)
	assert.Equal(t, pigeon.ID, byCategory[1].ID)
	assert.Equal(t, warrior.ID, byCategory[2].ID)

	var found []catalog.Exercise
	s.doRequest(ctx, "GET", "/exercises?q=FLOW&category=yoga&muscleGroup=glutes", "user-a", nil, http.StatusOK, &found)
	require.Len(t, found, 2)
	assert.Equal(t, pigeon.ID, found[0].ID)
	assert.Equal(t, warrior.ID, found[1].ID)

	s.doRequest(ctx, "GET", "/exercises?category=yoga&difficulty=beginner&minRating=2.5", "user-a", nil, http.StatusOK, &found)
	require.Len(t, found, 1)
	assert.Equal(t, pigeon.ID, found[0].ID)

	s.doRequest(ctx, "GET", "/exercises?q=crow&muscleGroup=neck", "user-a", nil, http.StatusBadRequest, nil)

	var categories []catalog.Category
	s.doRequest(ctx, "GET", "/exercises/categories", "user-a", nil, http.StatusOK, &categories)
	assert.Contains(t, categories, catalog.CategoryYoga)

	var muscles []string
	s.doRequest(ctx, "GET", "/exercises/muscle-groups", "user-a", nil, http.StatusOK, &muscles)
	assert.Contains(t, muscles, "flexibility")
	assert.Contains(t, muscles, "forearms")
}
