package userstats

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

// RecordWorkout counts one more workout and adds its deltas. Streaks count
// consecutive UTC days with at least one workout.
func (s *Stats) RecordWorkout(w WorkoutCompletion) error {
	if w.CaloriesBurned != nil && !(*w.CaloriesBurned >= 0) {
		return apperr.Invalid("caloriesBurned", "must be a non negative number")
	}
	if w.Steps != nil && *w.Steps < 0 {
		return apperr.Invalid("steps", "must be a non negative number")
	}
	if w.Distance != nil && !(*w.Distance >= 0) {
		return apperr.Invalid("distance", "must be a non negative number")
	}
	if w.CompletedAt.IsZero() {
		return apperr.Invalid("completedAt", "required")
	}

	s.TotalWorkouts++
	if w.CaloriesBurned != nil {
		s.TotalCaloriesBurned += *w.CaloriesBurned
	}
	if w.Steps != nil {
		s.TotalSteps += *w.Steps
	}
	if w.Distance != nil {
		s.TotalDistance += *w.Distance
	}

	s.updateStreak(w.CompletedAt)
	return nil
}

func (s *Stats) updateStreak(completedAt time.Time) {
	day := completedAt.UTC().Truncate(24 * time.Hour)

	switch {
	case s.LastWorkoutDay == nil:
		s.CurrentStreak = 1
	case !day.After(*s.LastWorkoutDay):
		// same day, or a late report of an earlier day
		return
	case day.Sub(*s.LastWorkoutDay) == 24*time.Hour:
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}

	s.LastWorkoutDay = &day
	s.LongestStreak = max(s.LongestStreak, s.CurrentStreak)
}

// AwardAchievement appends the achievement and adds its points. The level
// goes up by at most one per award, even when the points pass more than
// one level threshold.
func (s *Stats) AwardAchievement(a Achievement) error {
	if !a.Type.Valid() {
		return apperr.Invalidf("type", "unknown achievement type [%s]", a.Type)
	}
	if strings.TrimSpace(a.Name) == "" {
		return apperr.Invalid("name", "required")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.EarnedAt = a.EarnedAt.UTC()

	s.Achievements = append(s.Achievements, a)
	s.Points += achievementPoints
	if s.Points >= s.Level*pointsPerLevel {
		s.Level++
	}
	return nil
}
