package sleep

import (
	"math"
	"time"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

const (
	maxDurationHours = 24

	// consistencyPoints is a flat contribution to every score, it does not
	// look at other sessions of the owner.
	consistencyPoints = 10
)

// Duration returns the supplied duration if present, else end - start, in hours.
func Duration(start, end time.Time, supplied *float64) (float64, error) {
	d := end.Sub(start).Hours()
	if supplied != nil {
		d = *supplied
	}
	if !(d > 0) {
		return 0, apperr.Invalid("duration", "must be greater than zero")
	}
	if d > maxDurationHours {
		return 0, apperr.Invalidf("duration", "must not exceed %d hours", maxDurationHours)
	}
	return d, nil
}

// StagePercentages sets each present stage's share of the total of all
// present stages. With no stage data, or a zero total, all percentages are nil.
func StagePercentages(stages Stages) {
	total := 0.0
	for _, s := range stages.all() {
		if s != nil {
			total += s.Duration
		}
	}
	for _, s := range stages.all() {
		if s == nil {
			continue
		}
		if total > 0 {
			p := s.Duration / total * 100
			s.Percentage = &p
		} else {
			s.Percentage = nil
		}
	}
}

// Efficiency is the share of the session spent asleep, as a percentage.
// It is nil unless deep, light and REM stages are all present.
func Efficiency(stages Stages, duration float64) *float64 {
	if stages.Deep == nil || stages.Light == nil || stages.REM == nil || !(duration > 0) {
		return nil
	}
	e := (stages.Deep.Duration + stages.Light.Duration + stages.REM.Duration) / duration * 100
	return &e
}

// Debt is how many hours the session fell short of the target, nil without a target.
func Debt(targetDuration *float64, duration float64) *float64 {
	if targetDuration == nil {
		return nil
	}
	d := math.Max(0, *targetDuration-duration)
	return &d
}

// Score weighs duration against the target (40), quality (30) and
// efficiency (20), plus the flat consistency points. The result is
// rounded and kept within [0, 100].
func Score(duration float64, targetDuration *float64, quality int, efficiency *float64) int {
	score := 0.0
	if targetDuration != nil && *targetDuration > 0 {
		ratio := duration / *targetDuration
		score += math.Min(ratio, 1.2) * 40
	}
	score += float64(quality) / 10 * 30
	if efficiency != nil {
		score += *efficiency / 100 * 20
	}
	score += consistencyPoints

	rounded := int(math.Round(score))
	return max(0, min(100, rounded))
}

func CategoryOf(score int) Category {
	switch {
	case score >= 90:
		return CategoryExcellent
	case score >= 80:
		return CategoryGood
	case score >= 70:
		return CategoryFair
	case score >= 60:
		return CategoryPoor
	default:
		return CategoryVeryPoor
	}
}

func GoalsAchieved(goals Goals, duration float64, quality int) GoalsAchievement {
	var achieved GoalsAchievement
	if goals.TargetDuration != nil {
		achieved.Duration = duration >= *goals.TargetDuration
	}
	if goals.TargetQuality != nil {
		achieved.Quality = quality >= *goals.TargetQuality
	}
	return achieved
}

// Recompute derives every computed field of the session from its raw fields.
// Only an invalid duration makes it fail, leaving the session untouched.
func Recompute(s *Session) error {
	duration, err := Duration(s.StartTime, s.EndTime, s.SuppliedDuration)
	if err != nil {
		return err
	}

	var targetDuration *float64
	if s.Goals != nil {
		targetDuration = s.Goals.TargetDuration
		s.Goals.Achieved = GoalsAchieved(*s.Goals, duration, s.Quality)
	}

	s.Duration = duration
	StagePercentages(s.Stages)
	s.Efficiency = Efficiency(s.Stages, duration)
	s.Debt = Debt(targetDuration, duration)
	s.Score = Score(duration, targetDuration, s.Quality, s.Efficiency)
	s.Category = CategoryOf(s.Score)
	return nil
}
