package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
	"github.com/daya-2619/fitnesstracking/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO catalog_exercise (name, category, usage_count, rating_average, rating_count, data, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $7)
		RETURNING id, version
	`,
		exercise.Name,
		string(exercise.Category),
		exercise.UsageCount,
		exercise.Rating.Average,
		exercise.Rating.Count,
		exercise,
		exercise.CreatedAt,
	).Scan(&exercise.ID, &exercise.Version)
	if pkg.IsUniqueViolationError(err) {
		return nil, apperr.Invalidf("name", "exercise [%s] already exists", exercise.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	exercise.UpdatedAt = exercise.CreatedAt
	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, usage_count, data, version, created_at, updated_at
		FROM catalog_exercise
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("exercise %d: %w", id, apperr.ErrNotFound)
	}
	return &exercises[0], nil
}

// Update writes the exercise only if its stored version still equals
// exercise.Version, and bumps exercise.Version on success.
func (r *Repo) Update(ctx context.Context, exercise *Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))
	span.SetAttributes(attribute.Int("version", exercise.Version))

	var newVersion int
	err = r.db.QueryRow(ctx, `
		UPDATE catalog_exercise
		SET usage_count = $3, rating_average = $4, rating_count = $5, data = $6,
		    updated_at = $7, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`,
		exercise.ID,
		exercise.Version,
		exercise.UsageCount,
		exercise.Rating.Average,
		exercise.Rating.Count,
		*exercise,
		exercise.UpdatedAt,
	).Scan(&newVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.staleOrMissing(ctx, exercise.ID)
	}
	if err != nil {
		return fmt.Errorf("update exercise %d: %w", exercise.ID, err)
	}

	exercise.Version = newVersion
	return nil
}

func (r *Repo) staleOrMissing(ctx context.Context, id int) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM catalog_exercise WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check exercise %d exists: %w", id, err)
	}
	if exists {
		return fmt.Errorf("exercise %d: %w", id, apperr.ErrConflictRetryable)
	}
	return fmt.Errorf("exercise %d: %w", id, apperr.ErrNotFound)
}

// Popular returns the most used exercises, best rated first among equally used ones.
func (r *Repo) Popular(ctx context.Context, limit int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.popular")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT id, usage_count, data, version, created_at, updated_at
		FROM catalog_exercise
		ORDER BY usage_count DESC, rating_average DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	return rows2exercises(rows)
}

type SearchParams struct {
	// Query matches the name or the description, case insensitive.
	Query      string
	Category   Category
	Difficulty Difficulty
	// MuscleGroups matches exercises working any of the given groups.
	MuscleGroups []string
	Equipment    Equipment
	MinRating    float64
	Limit        int
}

// Search returns the exercises matching all the set filters, best rated first,
// then most used.
func (r *Repo) Search(ctx context.Context, params SearchParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("query", params.Query))
	span.SetAttributes(attribute.String("category", string(params.Category)))
	span.SetAttributes(attribute.String("difficulty", string(params.Difficulty)))
	span.SetAttributes(attribute.StringSlice("muscle_groups", params.MuscleGroups))
	span.SetAttributes(attribute.String("equipment", string(params.Equipment)))
	span.SetAttributes(attribute.Float64("min_rating", params.MinRating))
	span.SetAttributes(attribute.Int("limit", params.Limit))

	muscles := params.MuscleGroups
	if muscles == nil {
		muscles = []string{}
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, usage_count, data, version, created_at, updated_at
		FROM catalog_exercise
		WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%' OR data->>'description' ILIKE '%' || $1 || '%')
			AND ($2::text = '' OR category = $2)
			AND ($3::text = '' OR data->>'difficulty' = $3)
			AND (cardinality($4::text[]) = 0 OR data->'muscleGroups' ?| $4::text[])
			AND ($5::text = '' OR data->>'equipment' = $5)
			AND rating_average >= $6
		ORDER BY rating_average DESC, usage_count DESC, id
		LIMIT $7
	`,
		params.Query,
		string(params.Category),
		string(params.Difficulty),
		muscles,
		string(params.Equipment),
		params.MinRating,
		params.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return rows2exercises(rows)
}

// ByCategory returns the best rated exercises of the category.
func (r *Repo) ByCategory(ctx context.Context, category Category, limit int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.bycategory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", string(category)))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT id, usage_count, data, version, created_at, updated_at
		FROM catalog_exercise
		WHERE category = $1
		ORDER BY rating_average DESC, usage_count DESC, id
		LIMIT $2
	`, string(category), limit)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return rows2exercises(rows)
}

// Categories lists the categories having at least one exercise.
func (r *Repo) Categories(ctx context.Context) (_ []Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.categories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM catalog_exercise ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var found []Category
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		found = append(found, Category(c))
	}
	return found, rows.Err()
}

// MuscleGroups lists the muscle groups worked by at least one exercise.
func (r *Repo) MuscleGroups(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.musclegroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT jsonb_array_elements_text(data->'muscleGroups') AS muscle_group
		FROM catalog_exercise
		ORDER BY muscle_group
	`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		found = append(found, m)
	}
	return found, rows.Err()
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var (
			e          Exercise
			id         int
			usageCount int
			version    int
		)
		if err := rows.Scan(&id, &usageCount, &e, &version, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.ID = id
		e.UsageCount = usageCount
		e.Version = version
		e.CreatedAt = e.CreatedAt.UTC()
		e.UpdatedAt = e.UpdatedAt.UTC()
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
