package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/metrics"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=catalog_test

const (
	DefaultPopularLimit = 10
	MaxPopularLimit     = 100

	// search and category listings
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	Popular(ctx context.Context, limit int) ([]Exercise, error)
	Search(ctx context.Context, params SearchParams) ([]Exercise, error)
	ByCategory(ctx context.Context, category Category, limit int) ([]Exercise, error)
	Categories(ctx context.Context) ([]Category, error)
	MuscleGroups(ctx context.Context) ([]string, error)
}

type Service struct {
	repo           exercisesRepo
	cache          *Cache
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo exercisesRepo, cache *Cache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) Create(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise.Name = strings.TrimSpace(exercise.Name)
	if err := Validate(&exercise); err != nil {
		return nil, err
	}
	exercise.ID = 0
	exercise.Reviews = []Review{}
	exercise.UsageCount = 0
	exercise.recomputeRating()
	exercise.CreatedAt = s.now().UTC()

	added, err := s.repo.Add(ctx, exercise)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	s.metricsManager.MutationDone("exercise", "create")
	return added, nil
}

// Get returns the exercise and counts the read as one more use of it.
func (s *Service) Get(ctx context.Context, id int) (*Exercise, error) {
	return s.mutate(ctx, id, "use", func(e *Exercise) error {
		e.IncrementUsage()
		return nil
	})
}

func (s *Service) AddReview(ctx context.Context, reviewerID string, id, rating int, comment string) (*Exercise, error) {
	return s.mutate(ctx, id, "review", func(e *Exercise) error {
		return e.AddOrReplaceReview(reviewerID, rating, comment, s.now())
	})
}

func (s *Service) RemoveReview(ctx context.Context, reviewerID string, id int) (*Exercise, error) {
	return s.mutate(ctx, id, "remove_review", func(e *Exercise) error {
		e.RemoveReview(reviewerID)
		return nil
	})
}

func (s *Service) mutate(
	ctx context.Context,
	id int,
	op string,
	apply func(e *Exercise) error,
) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog."+op)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(exercise); err != nil {
		return nil, err
	}

	exercise.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	if op != "use" {
		s.cache.Invalidate()
	}
	s.metricsManager.MutationDone("exercise", op)
	return exercise, nil
}

// Popular lists the most used exercises. The limit defaults to
// DefaultPopularLimit and must not exceed MaxPopularLimit.
func (s *Service) Popular(ctx context.Context, limit int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.popular")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit == 0 {
		limit = DefaultPopularLimit
	}
	if limit < 0 || limit > MaxPopularLimit {
		return nil, apperr.Invalidf("limit", "must be between 1 and %d", MaxPopularLimit)
	}

	if cached, ok := s.cache.Popular(limit); ok {
		log.Tracef("popular exercises, limit %d, found in cache", limit)
		return cached, nil
	}

	generation := s.cache.Generation()
	exercises, err := s.repo.Popular(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get popular exercises: %w", err)
	}
	if exercises == nil {
		exercises = []Exercise{}
	}
	s.cache.SetPopular(generation, limit, exercises)
	return exercises, nil
}

// Search lists the exercises matching the filters, best rated first, then most used.
// The limit defaults to DefaultListLimit.
func (s *Service) Search(ctx context.Context, params SearchParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateSearch(&params); err != nil {
		return nil, err
	}
	exercises, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search exercises: %w", err)
	}
	if exercises == nil {
		exercises = []Exercise{}
	}
	return exercises, nil
}

// ByCategory lists the best rated exercises of a category.
func (s *Service) ByCategory(ctx context.Context, category Category, limit int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.bycategory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !categories[category] {
		return nil, apperr.Invalidf("category", "unknown category [%s]", category)
	}
	if err := validateLimit(&limit, DefaultListLimit); err != nil {
		return nil, err
	}
	exercises, err := s.repo.ByCategory(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("get exercises of %s: %w", category, err)
	}
	if exercises == nil {
		exercises = []Exercise{}
	}
	return exercises, nil
}

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	found, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	if found == nil {
		found = []Category{}
	}
	return found, nil
}

func (s *Service) MuscleGroups(ctx context.Context) ([]string, error) {
	found, err := s.repo.MuscleGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("get muscle groups: %w", err)
	}
	if found == nil {
		found = []string{}
	}
	return found, nil
}
