package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
)

// mealDetails are the optional descriptive fields, stored in one JSONB column.
type mealDetails struct {
	Notes         string   `json:"notes,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	HungerBefore  *int     `json:"hungerBefore,omitempty"`
	FullnessAfter *int     `json:"fullnessAfter,omitempty"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO meal (owner_id, date, slot, foods, totals, micro_totals, details, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $8)
		RETURNING id, version
	`,
		meal.OwnerID,
		meal.Date,
		string(meal.Slot),
		nonNilFoods(meal.Foods),
		meal.Totals,
		nonNilMap(meal.MicronutrientTotals),
		detailsOf(meal),
		meal.CreatedAt,
	).Scan(&meal.ID, &meal.Version)
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}

	meal.UpdatedAt = meal.CreatedAt
	return &meal, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, date, slot, foods, totals, micro_totals, details, version, created_at, updated_at
		FROM meal
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	meals, err := rows2meals(rows)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("meal %d: %w", id, apperr.ErrNotFound)
	}
	return &meals[0], nil
}

// Update writes the meal only if its stored version still equals meal.Version.
// On success meal.Version is set to the new version.
func (r *Repo) Update(ctx context.Context, meal *Meal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", meal.ID))
	span.SetAttributes(attribute.Int("version", meal.Version))

	var newVersion int
	err = r.db.QueryRow(ctx, `
		UPDATE meal
		SET date = $3, slot = $4, foods = $5, totals = $6, micro_totals = $7, details = $8,
		    updated_at = $9, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`,
		meal.ID,
		meal.Version,
		meal.Date,
		string(meal.Slot),
		nonNilFoods(meal.Foods),
		meal.Totals,
		nonNilMap(meal.MicronutrientTotals),
		detailsOf(*meal),
		meal.UpdatedAt,
	).Scan(&newVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.staleOrMissing(ctx, meal.ID)
	}
	if err != nil {
		return fmt.Errorf("update meal %d: %w", meal.ID, err)
	}

	meal.Version = newVersion
	return nil
}

func (r *Repo) staleOrMissing(ctx context.Context, id int) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM meal WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check meal %d exists: %w", id, err)
	}
	if exists {
		return fmt.Errorf("meal %d: %w", id, apperr.ErrConflictRetryable)
	}
	return fmt.Errorf("meal %d: %w", id, apperr.ErrNotFound)
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM meal WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// ListRange returns the owner's meals with from <= date <= to, oldest first.
func (r *Repo) ListRange(ctx context.Context, ownerID string, from, to time.Time) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, date, slot, foods, totals, micro_totals, details, version, created_at, updated_at
		FROM meal
		WHERE owner_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, id
	`, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	return rows2meals(rows)
}

func rows2meals(rows pgx.Rows) ([]Meal, error) {
	defer rows.Close()

	var meals []Meal
	for rows.Next() {
		var (
			m       Meal
			slot    string
			details mealDetails
		)
		if err := rows.Scan(
			&m.ID, &m.OwnerID, &m.Date, &slot,
			&m.Foods, &m.Totals, &m.MicronutrientTotals, &details,
			&m.Version, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		m.Slot = Slot(slot)
		m.Date = m.Date.UTC()
		m.CreatedAt = m.CreatedAt.UTC()
		m.UpdatedAt = m.UpdatedAt.UTC()
		m.Notes = details.Notes
		m.Tags = details.Tags
		m.HungerBefore = details.HungerBefore
		m.FullnessAfter = details.FullnessAfter
		if len(m.MicronutrientTotals) == 0 {
			m.MicronutrientTotals = nil
		}
		m.TimeOfDay = TimeOfDayOf(m.Date)
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}

func detailsOf(m Meal) mealDetails {
	return mealDetails{
		Notes:         m.Notes,
		Tags:          m.Tags,
		HungerBefore:  m.HungerBefore,
		FullnessAfter: m.FullnessAfter,
	}
}

func nonNilFoods(foods []FoodItem) []FoodItem {
	if foods == nil {
		return []FoodItem{}
	}
	return foods
}

func nonNilMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
