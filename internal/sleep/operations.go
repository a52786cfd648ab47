package sleep

import (
	"time"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

// UpdateStages merges the given stages into the session: present stages
// replace the stored ones, absent stages are kept.
func (s *Session) UpdateStages(update Stages) error {
	if err := validateStages(update); err != nil {
		return apperr.WithFieldPrefix("stages", err)
	}

	merged := s.Stages
	if update.Deep != nil {
		merged.Deep = &Stage{Duration: update.Deep.Duration}
	}
	if update.Light != nil {
		merged.Light = &Stage{Duration: update.Light.Duration}
	}
	if update.REM != nil {
		merged.REM = &Stage{Duration: update.REM.Duration}
	}
	if update.Awake != nil {
		merged.Awake = &Stage{Duration: update.Awake.Duration}
	}

	s.Stages = merged
	return Recompute(s)
}

func (s *Session) AddDisturbance(d Disturbance) error {
	if err := validateDisturbance(d); err != nil {
		return apperr.WithFieldPrefix("disturbance", err)
	}
	if d.Time != nil {
		t := d.Time.UTC()
		d.Time = &t
	}
	s.Disturbances = append(s.Disturbances, d)
	return Recompute(s)
}

// UpdateQuality sets the quality and appends the note, if any, on a new line.
func (s *Session) UpdateQuality(quality int, note string) error {
	if err := validateQuality(quality); err != nil {
		return err
	}
	s.Quality = quality
	if note != "" {
		if s.Notes != "" {
			s.Notes += "\n" + note
		} else {
			s.Notes = note
		}
	}
	return Recompute(s)
}

func (s *Session) UpdateGoals(goals Goals) error {
	if err := validateGoals(goals); err != nil {
		return apperr.WithFieldPrefix("goals", err)
	}
	goals.Achieved = GoalsAchievement{}
	s.Goals = &goals
	return Recompute(s)
}

// Reschedule moves the session. It fails, leaving the session untouched,
// when the new interval does not give a valid duration.
func (s *Session) Reschedule(start, end time.Time, supplied *float64) error {
	if _, err := Duration(start, end, supplied); err != nil {
		return err
	}
	if end.Before(start) {
		return apperr.Invalid("endTime", "must not be before startTime")
	}
	s.StartTime = start.UTC()
	s.EndTime = end.UTC()
	s.SuppliedDuration = supplied
	return Recompute(s)
}
