package userstats

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, ownerID string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.userstats.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner", ownerID))

	var stats Stats
	err = r.db.QueryRow(ctx, `
		SELECT data, version, updated_at
		FROM user_stats
		WHERE owner_id = $1
	`, ownerID).Scan(&stats, &stats.Version, &stats.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("stats of %s: %w", ownerID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get stats of %s: %w", ownerID, err)
	}

	stats.OwnerID = ownerID
	stats.UpdatedAt = stats.UpdatedAt.UTC()
	return &stats, nil
}

// Insert stores the first stats row of a user. Losing the race against
// another first write is reported as a retryable conflict.
func (r *Repo) Insert(ctx context.Context, stats *Stats) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.userstats.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner", stats.OwnerID))

	tag, err := r.db.Exec(ctx, `
		INSERT INTO user_stats (owner_id, data, version, updated_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (owner_id) DO NOTHING
	`, stats.OwnerID, *stats, stats.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert stats of %s: %w", stats.OwnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stats of %s: %w", stats.OwnerID, apperr.ErrConflictRetryable)
	}

	stats.Version = 1
	return nil
}

// Update writes the stats only if the stored version still equals
// stats.Version, and bumps stats.Version on success.
func (r *Repo) Update(ctx context.Context, stats *Stats) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.userstats.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner", stats.OwnerID))
	span.SetAttributes(attribute.Int("version", stats.Version))

	var newVersion int
	err = r.db.QueryRow(ctx, `
		UPDATE user_stats
		SET data = $3, updated_at = $4, version = version + 1
		WHERE owner_id = $1 AND version = $2
		RETURNING version
	`, stats.OwnerID, stats.Version, *stats, stats.UpdatedAt).Scan(&newVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		// rows are never deleted, so a miss means someone else wrote first
		return fmt.Errorf("stats of %s: %w", stats.OwnerID, apperr.ErrConflictRetryable)
	}
	if err != nil {
		return fmt.Errorf("update stats of %s: %w", stats.OwnerID, err)
	}

	stats.Version = newVersion
	return nil
}
