package sleep

import (
	"context"
	"fmt"
	"time"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/metrics"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sleep_test

type sessionsRepo interface {
	Add(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id int) error
	ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]Session, error)
}

type Service struct {
	repo           sessionsRepo
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo sessionsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Record stores a completed session of the owner with all metrics derived.
func (s *Service) Record(ctx context.Context, ownerID string, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sleep.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session.ID = 0
	session.OwnerID = ownerID
	session.StartTime = session.StartTime.UTC()
	session.EndTime = session.EndTime.UTC()
	if session.DataSource == "" {
		session.DataSource = DataSourceManual
	}
	session.CreatedAt = s.now().UTC()
	// a posted duration is the supplied one unless suppliedDuration is set too
	if session.SuppliedDuration == nil && session.Duration != 0 {
		supplied := session.Duration
		session.SuppliedDuration = &supplied
	}

	if err := Recompute(&session); err != nil {
		return nil, err
	}
	if err := Validate(&session); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("add sleep session: %w", err)
	}
	s.metricsManager.MutationDone("sleep", "record")
	return added, nil
}

func (s *Service) Get(ctx context.Context, ownerID string, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sleep.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, fmt.Errorf("sleep session %d: %w", id, apperr.ErrNotFound)
	}
	return session, nil
}

func (s *Service) UpdateStages(ctx context.Context, ownerID string, id int, stages Stages) (*Session, error) {
	return s.mutate(ctx, ownerID, id, "update_stages", func(session *Session) error {
		return session.UpdateStages(stages)
	})
}

func (s *Service) AddDisturbance(ctx context.Context, ownerID string, id int, d Disturbance) (*Session, error) {
	return s.mutate(ctx, ownerID, id, "add_disturbance", func(session *Session) error {
		return session.AddDisturbance(d)
	})
}

func (s *Service) UpdateQuality(ctx context.Context, ownerID string, id, quality int, note string) (*Session, error) {
	return s.mutate(ctx, ownerID, id, "update_quality", func(session *Session) error {
		return session.UpdateQuality(quality, note)
	})
}

func (s *Service) UpdateGoals(ctx context.Context, ownerID string, id int, goals Goals) (*Session, error) {
	return s.mutate(ctx, ownerID, id, "update_goals", func(session *Session) error {
		return session.UpdateGoals(goals)
	})
}

func (s *Service) Reschedule(ctx context.Context, ownerID string, id int, start, end time.Time, supplied *float64) (*Session, error) {
	return s.mutate(ctx, ownerID, id, "reschedule", func(session *Session) error {
		return session.Reschedule(start, end, supplied)
	})
}

// mutate is a single read-modify-recompute-write cycle, see nutrition.Service.
func (s *Service) mutate(
	ctx context.Context,
	ownerID string,
	id int,
	op string,
	apply func(session *Session) error,
) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sleep."+op)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := apply(session); err != nil {
		return nil, err
	}
	if err := Validate(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}
	s.metricsManager.MutationDone("sleep", op)
	return session, nil
}

func (s *Service) Delete(ctx context.Context, ownerID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sleep.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metricsManager.MutationDone("sleep", "delete")
	return nil
}

// ListRange returns the owner's sessions that started within [from, to].
func (s *Service) ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]Session, error) {
	sessions, err := s.repo.ListRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sleep sessions: %w", err)
	}
	return sessions, nil
}
