package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// migrations are applied in order, each one exactly once, tracked in schema_migration.
var migrations = []string{
	`
	CREATE TABLE IF NOT EXISTS meal
	(
		id           SERIAL PRIMARY KEY,
		owner_id     VARCHAR     NOT NULL,
		date         TIMESTAMPTZ NOT NULL,
		slot         VARCHAR     NOT NULL,
		foods        JSONB       NOT NULL DEFAULT '[]',
		totals       JSONB       NOT NULL DEFAULT '{}',
		micro_totals JSONB       NOT NULL DEFAULT '{}',
		details      JSONB       NOT NULL DEFAULT '{}',
		version      INTEGER     NOT NULL DEFAULT 1,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS ix_meal_owner_date ON meal (owner_id, date);
	`,
	`
	CREATE TABLE IF NOT EXISTS sleep_session
	(
		id         SERIAL PRIMARY KEY,
		owner_id   VARCHAR     NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time   TIMESTAMPTZ NOT NULL,
		data       JSONB       NOT NULL,
		version    INTEGER     NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS ix_sleep_session_owner_start ON sleep_session (owner_id, start_time);
	`,
	`
	CREATE TABLE IF NOT EXISTS catalog_exercise
	(
		id             SERIAL PRIMARY KEY,
		name           VARCHAR          NOT NULL UNIQUE,
		category       VARCHAR          NOT NULL,
		usage_count    INTEGER          NOT NULL DEFAULT 0,
		rating_average DOUBLE PRECISION NOT NULL DEFAULT 0,
		rating_count   INTEGER          NOT NULL DEFAULT 0,
		data           JSONB            NOT NULL,
		version        INTEGER          NOT NULL DEFAULT 1,
		created_at     TIMESTAMPTZ      NOT NULL,
		updated_at     TIMESTAMPTZ      NOT NULL
	);
	CREATE INDEX IF NOT EXISTS ix_catalog_exercise_usage ON catalog_exercise (usage_count DESC);
	`,
	`
	CREATE TABLE IF NOT EXISTS user_stats
	(
		owner_id   VARCHAR PRIMARY KEY,
		data       JSONB       NOT NULL,
		version    INTEGER     NOT NULL DEFAULT 1,
		updated_at TIMESTAMPTZ NOT NULL
	);
	`,
}

// Migrate brings the schema up to date.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (applied int, err error) {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migration
		(
			version    INTEGER PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return 0, fmt.Errorf("create schema_migration table: %w", err)
	}

	var current int
	if err := pool.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migration`).Scan(&current); err != nil {
		return 0, fmt.Errorf("get current schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		version := i + 1
		tx, err := pool.Begin(ctx)
		if err != nil {
			return applied, fmt.Errorf("begin migration %d: %w", version, err)
		}
		if _, err := tx.Exec(ctx, migrations[i]); err != nil {
			_ = tx.Rollback(ctx)
			return applied, fmt.Errorf("apply migration %d: %w", version, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migration (version) VALUES ($1)`, version); err != nil {
			_ = tx.Rollback(ctx)
			return applied, fmt.Errorf("record migration %d: %w", version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return applied, fmt.Errorf("commit migration %d: %w", version, err)
		}
		log.Debugf("schema migration %d applied", version)
		applied++
	}

	return applied, nil
}
