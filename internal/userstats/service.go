package userstats

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/metrics"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=userstats_test

type statsRepo interface {
	Get(ctx context.Context, ownerID string) (*Stats, error)
	Insert(ctx context.Context, stats *Stats) error
	Update(ctx context.Context, stats *Stats) error
}

type friendGraph interface {
	AddFriend(ctx context.Context, ownerID, friendID string) error
	RemoveFriend(ctx context.Context, ownerID, friendID string) error
	Friends(ctx context.Context, ownerID string) ([]string, error)
	AreFriends(ctx context.Context, ownerID, friendID string) (bool, error)
}

type Service struct {
	repo           statsRepo
	friends        friendGraph
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo statsRepo, friends friendGraph, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		friends:        friends,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Get returns the stats of the owner. A user without any recorded activity
// gets fresh stats, which are not stored until the first change.
func (s *Service) Get(ctx context.Context, ownerID string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.userstats.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.load(ctx, ownerID)
}

func (s *Service) load(ctx context.Context, ownerID string) (*Stats, error) {
	stats, err := s.repo.Get(ctx, ownerID)
	if errors.Is(err, apperr.ErrNotFound) {
		return NewStats(ownerID), nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Service) RecordWorkout(ctx context.Context, ownerID string, w WorkoutCompletion) (*Stats, error) {
	if w.CompletedAt.IsZero() {
		w.CompletedAt = s.now()
	}
	return s.mutate(ctx, ownerID, "workout", func(stats *Stats) error {
		return stats.RecordWorkout(w)
	})
}

func (s *Service) AwardAchievement(ctx context.Context, ownerID string, a Achievement) (*Stats, error) {
	if a.EarnedAt.IsZero() {
		a.EarnedAt = s.now()
	}
	return s.mutate(ctx, ownerID, "achievement", func(stats *Stats) error {
		return stats.AwardAchievement(a)
	})
}

func (s *Service) mutate(
	ctx context.Context,
	ownerID string,
	op string,
	apply func(stats *Stats) error,
) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.userstats."+op)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stats, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := apply(stats); err != nil {
		return nil, err
	}

	stats.UpdatedAt = s.now().UTC()
	if stats.Version == 0 {
		log.Debugf("first stats of %s", ownerID)
		err = s.repo.Insert(ctx, stats)
	} else {
		err = s.repo.Update(ctx, stats)
	}
	if err != nil {
		return nil, err
	}

	s.metricsManager.MutationDone("stats", op)
	return stats, nil
}

func (s *Service) Friends(ctx context.Context, ownerID string) ([]string, error) {
	return s.friends.Friends(ctx, ownerID)
}

func (s *Service) AreFriends(ctx context.Context, ownerID, friendID string) (bool, error) {
	return s.friends.AreFriends(ctx, ownerID, friendID)
}

// AddFriend adds the friend and returns the resulting friend list.
func (s *Service) AddFriend(ctx context.Context, ownerID, friendID string) ([]string, error) {
	if err := s.friends.AddFriend(ctx, ownerID, friendID); err != nil {
		return nil, err
	}
	s.metricsManager.MutationDone("friend", "add")
	return s.friends.Friends(ctx, ownerID)
}

// RemoveFriend removes the friend and returns the resulting friend list.
func (s *Service) RemoveFriend(ctx context.Context, ownerID, friendID string) ([]string, error) {
	if err := s.friends.RemoveFriend(ctx, ownerID, friendID); err != nil {
		return nil, err
	}
	s.metricsManager.MutationDone("friend", "remove")
	return s.friends.Friends(ctx, ownerID)
}
