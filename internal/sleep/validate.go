package sleep

import (
	"fmt"
	"math"
	"strings"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

const (
	maxNotesLength = 2000

	minHeartRate = 30
	maxHeartRate = 200
)

// Validate checks the raw fields of a session. Duration problems are
// reported by Recompute, which callers run first.
func Validate(s *Session) error {
	if strings.TrimSpace(s.OwnerID) == "" {
		return apperr.Invalid("ownerId", "required")
	}
	if s.StartTime.IsZero() {
		return apperr.Invalid("startTime", "required")
	}
	if s.EndTime.IsZero() {
		return apperr.Invalid("endTime", "required")
	}
	if s.EndTime.Before(s.StartTime) {
		return apperr.Invalid("endTime", "must not be before startTime")
	}
	if err := validateQuality(s.Quality); err != nil {
		return err
	}
	if err := validateStages(s.Stages); err != nil {
		return apperr.WithFieldPrefix("stages", err)
	}
	if s.HeartRate != nil {
		if err := validateHeartRate(*s.HeartRate); err != nil {
			return apperr.WithFieldPrefix("heartRate", err)
		}
	}
	if s.Goals != nil {
		if err := validateGoals(*s.Goals); err != nil {
			return apperr.WithFieldPrefix("goals", err)
		}
	}
	for i, d := range s.Disturbances {
		if err := validateDisturbance(d); err != nil {
			return apperr.WithFieldPrefix(fmt.Sprintf("disturbances[%d]", i), err)
		}
	}
	if len(s.Notes) > maxNotesLength {
		return apperr.Invalidf("notes", "must not exceed %d characters", maxNotesLength)
	}
	if !s.DataSource.Valid() {
		return apperr.Invalidf("dataSource", "unknown data source [%s]", s.DataSource)
	}
	return nil
}

func validateQuality(q int) error {
	if q < 1 || q > 10 {
		return apperr.Invalid("quality", "must be between 1 and 10")
	}
	return nil
}

func validateStages(stages Stages) error {
	for _, st := range []struct {
		field string
		stage *Stage
	}{
		{"deep", stages.Deep},
		{"light", stages.Light},
		{"rem", stages.REM},
		{"awake", stages.Awake},
	} {
		if st.stage == nil {
			continue
		}
		d := st.stage.Duration
		if !(d >= 0) || d > maxDurationHours {
			return apperr.Invalidf(st.field+".duration", "must be between 0 and %d hours", maxDurationHours)
		}
	}
	return nil
}

func validateHeartRate(hr HeartRate) error {
	for _, v := range []struct {
		field string
		value *int
	}{
		{"min", hr.Min},
		{"max", hr.Max},
		{"average", hr.Average},
		{"resting", hr.Resting},
	} {
		if v.value == nil {
			continue
		}
		if *v.value < minHeartRate || *v.value > maxHeartRate {
			return apperr.Invalidf(v.field, "must be between %d and %d", minHeartRate, maxHeartRate)
		}
	}
	if hr.Min != nil && hr.Max != nil && *hr.Min > *hr.Max {
		return apperr.Invalid("min", "must not be greater than max")
	}
	return nil
}

func validateGoals(g Goals) error {
	if g.TargetDuration != nil {
		td := *g.TargetDuration
		if math.IsNaN(td) || td < 6 || td > 10 {
			return apperr.Invalid("targetDuration", "must be between 6 and 10 hours")
		}
	}
	if g.TargetQuality != nil {
		if *g.TargetQuality < 7 || *g.TargetQuality > 10 {
			return apperr.Invalid("targetQuality", "must be between 7 and 10")
		}
	}
	return nil
}

func validateDisturbance(d Disturbance) error {
	if !d.Type.Valid() {
		return apperr.Invalidf("type", "unknown disturbance type [%s]", d.Type)
	}
	if d.Duration != nil && !(*d.Duration >= 0) {
		return apperr.Invalid("duration", "must be a non negative number of minutes")
	}
	return nil
}
