//go:build integration_test

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daya-2619/fitnesstracking/internal/sleep"
	"github.com/daya-2619/fitnesstracking/internal/summary"
)

func (s *IntegrationTestSuite) TestSleepSessionsAndSummary() {
	ctx := context.Background()
	t := s.T()
	owner := "sleep-owner"
	night := time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)

	var first sleep.Session
	s.doRequest(ctx, "POST", "/sleep", owner, sleep.Session{
		StartTime: night,
		EndTime:   night.Add(8 * time.Hour),
		Quality:   8,
	}, http.StatusCreated, &first)
	assert.Equal(t, 8.0, first.Duration)
	assert.Equal(t, sleep.DataSourceManual, first.DataSource)
	assert.Equal(t, 1, first.Version)

	var second sleep.Session
	s.doRequest(ctx, "POST", "/sleep", owner, sleep.Session{
		StartTime: night.Add(24 * time.Hour),
		EndTime:   night.Add(30 * time.Hour),
		Quality:   5,
	}, http.StatusCreated, &second)
	assert.Equal(t, 6.0, second.Duration)

	// end before start
	s.doRequest(ctx, "POST", "/sleep", owner, sleep.Session{
		StartTime: night,
		EndTime:   night.Add(-time.Hour),
		Quality:   5,
	}, http.StatusBadRequest, nil)

	var updated sleep.Session
	s.doRequest(ctx, "PUT", fmt.Sprintf("/sleep/%d/quality", second.ID), owner,
		sleep.UpdateQualityRequest{Quality: 6, Note: "noisy street"}, http.StatusOK, &updated)
	assert.Equal(t, 6, updated.Quality)
	assert.Equal(t, 2, updated.Version)

	var rangeSummary summary.Summary
	s.doRequest(ctx, "GET", "/summary/sleep?from=2024-03-04&to=2024-03-05", owner, nil, http.StatusOK, &rangeSummary)
	assert.Equal(t, 2, rangeSummary.Count)
	require.NotNil(t, rangeSummary.Sleep)
	assert.Equal(t, 14.0, rangeSummary.Sleep.Duration.Sum)
	assert.Equal(t, 7.0, *rangeSummary.Sleep.Duration.Mean)
	assert.Equal(t, 1.0, *rangeSummary.Sleep.DurationStdDev)
	assert.Equal(t, 6, *rangeSummary.Sleep.MinQuality)
	assert.Equal(t, 8, *rangeSummary.Sleep.MaxQuality)

	var daily []summary.DailySummary
	s.doRequest(ctx, "GET", "/summary/sleep/daily?start=2024-03-04&days=3", owner, nil, http.StatusOK, &daily)
	require.Len(t, daily, 2)
	assert.Equal(t, "2024-03-04", daily[0].Date)
	assert.Equal(t, "2024-03-05", daily[1].Date)

	s.doRequest(ctx, "GET", "/summary/sleep/daily?start=2024-03-04&days=367", owner, nil, http.StatusBadRequest, nil)
}
