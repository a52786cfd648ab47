package sleep

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

// Repo stores sessions as JSONB documents, with the columns needed for
// ownership, range queries and versioning next to them.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sleep.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO sleep_session (owner_id, start_time, end_time, data, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, $5, $5)
		RETURNING id, version
	`,
		session.OwnerID,
		session.StartTime,
		session.EndTime,
		session,
		session.CreatedAt,
	).Scan(&session.ID, &session.Version)
	if err != nil {
		return nil, fmt.Errorf("insert sleep session: %w", err)
	}

	session.UpdatedAt = session.CreatedAt
	return &session, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sleep.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, start_time, end_time, data, version, created_at, updated_at
		FROM sleep_session
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	sessions, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("sleep session %d: %w", id, apperr.ErrNotFound)
	}
	return &sessions[0], nil
}

// Update writes the session only if its stored version still equals
// session.Version, and bumps session.Version on success.
func (r *Repo) Update(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sleep.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", session.ID))
	span.SetAttributes(attribute.Int("version", session.Version))

	var newVersion int
	err = r.db.QueryRow(ctx, `
		UPDATE sleep_session
		SET start_time = $3, end_time = $4, data = $5, updated_at = $6, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`,
		session.ID,
		session.Version,
		session.StartTime,
		session.EndTime,
		*session,
		session.UpdatedAt,
	).Scan(&newVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.staleOrMissing(ctx, session.ID)
	}
	if err != nil {
		return fmt.Errorf("update sleep session %d: %w", session.ID, err)
	}

	session.Version = newVersion
	return nil
}

func (r *Repo) staleOrMissing(ctx context.Context, id int) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sleep_session WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check sleep session %d exists: %w", id, err)
	}
	if exists {
		return fmt.Errorf("sleep session %d: %w", id, apperr.ErrConflictRetryable)
	}
	return fmt.Errorf("sleep session %d: %w", id, apperr.ErrNotFound)
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sleep.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM sleep_session WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sleep session %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// ListRange returns the owner's sessions with from <= start time <= to, oldest first.
func (r *Repo) ListRange(ctx context.Context, ownerID string, from, to time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sleep.listrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, start_time, end_time, data, version, created_at, updated_at
		FROM sleep_session
		WHERE owner_id = $1 AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time, id
	`, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	return rows2sessions(rows)
}

// rows2sessions decodes the stored documents. The columns are authoritative
// for the fields they duplicate.
func rows2sessions(rows pgx.Rows) ([]Session, error) {
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			s                                Session
			id, version                      int
			ownerID                          string
			start, end, createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &ownerID, &start, &end, &s, &version, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		s.ID = id
		s.OwnerID = ownerID
		s.StartTime = start.UTC()
		s.EndTime = end.UTC()
		s.Version = version
		s.CreatedAt = createdAt.UTC()
		s.UpdatedAt = updatedAt.UTC()
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
