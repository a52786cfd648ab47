package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/metrics"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=nutrition_test

type mealsRepo interface {
	Add(ctx context.Context, meal Meal) (*Meal, error)
	Get(ctx context.Context, id int) (*Meal, error)
	Update(ctx context.Context, meal *Meal) error
	Delete(ctx context.Context, id int) error
	ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]Meal, error)
}

type Service struct {
	repo           mealsRepo
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo mealsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// LogMeal stores a new meal of the owner with its foods and derived totals.
func (s *Service) LogMeal(ctx context.Context, ownerID string, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.logmeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	meal.ID = 0
	meal.OwnerID = ownerID
	meal.Slot = meal.Slot.Canonical()
	meal.Date = meal.Date.UTC()
	meal.CreatedAt = s.now().UTC()
	Recompute(&meal)
	if err := Validate(&meal); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, meal)
	if err != nil {
		return nil, fmt.Errorf("add meal: %w", err)
	}
	s.metricsManager.MutationDone("meal", "log")
	return added, nil
}

// Get returns the meal if it belongs to the owner.
func (s *Service) Get(ctx context.Context, ownerID string, id int) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	meal, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if meal.OwnerID != ownerID {
		return nil, fmt.Errorf("meal %d: %w", id, apperr.ErrNotFound)
	}
	return meal, nil
}

func (s *Service) AddFood(ctx context.Context, ownerID string, mealID int, item FoodItem) (*Meal, error) {
	return s.mutate(ctx, ownerID, mealID, "add_food", func(m *Meal) error {
		return m.AddFood(item)
	})
}

func (s *Service) RemoveFood(ctx context.Context, ownerID string, mealID, index int) (*Meal, error) {
	return s.mutate(ctx, ownerID, mealID, "remove_food", func(m *Meal) error {
		return m.RemoveFood(index)
	})
}

func (s *Service) UpdateFoodQuantity(ctx context.Context, ownerID string, mealID, index int, quantity float64) (*Meal, error) {
	return s.mutate(ctx, ownerID, mealID, "update_food_quantity", func(m *Meal) error {
		return m.UpdateFoodQuantity(index, quantity)
	})
}

// mutate runs one read-modify-validate-write cycle. A concurrent writer makes
// the write fail with apperr.ErrConflictRetryable, and the caller may retry.
func (s *Service) mutate(
	ctx context.Context,
	ownerID string,
	mealID int,
	op string,
	apply func(m *Meal) error,
) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition."+op)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	meal, err := s.Get(ctx, ownerID, mealID)
	if err != nil {
		return nil, err
	}
	if err := apply(meal); err != nil {
		return nil, err
	}
	if err := Validate(meal); err != nil {
		return nil, err
	}

	meal.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, meal); err != nil {
		return nil, err
	}
	s.metricsManager.MutationDone("meal", op)
	return meal, nil
}

func (s *Service) Delete(ctx context.Context, ownerID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metricsManager.MutationDone("meal", "delete")
	return nil
}

// ListDay returns the owner's meals of the given UTC day, optionally of one slot only.
func (s *Service) ListDay(ctx context.Context, ownerID string, day time.Time, slot Slot) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.listday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from := day.UTC().Truncate(24 * time.Hour)
	to := from.Add(24*time.Hour - time.Nanosecond)
	meals, err := s.repo.ListRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	if slot == "" {
		return meals, nil
	}
	slot = slot.Canonical()
	filtered := make([]Meal, 0, len(meals))
	for _, m := range meals {
		if m.Slot == slot {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// ListRange returns the owner's meals with from <= date <= to.
func (s *Service) ListRange(ctx context.Context, ownerID string, from, to time.Time) ([]Meal, error) {
	meals, err := s.repo.ListRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}
