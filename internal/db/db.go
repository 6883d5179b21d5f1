// Package db provides PostgreSQL access for the course catalog and
// persisted recommendations.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db != nil && db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// schema creates the tables used by the service when they do not exist.
const schema = `
CREATE TABLE IF NOT EXISTS courses (
	id          SERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	platform    TEXT NOT NULL DEFAULT '',
	duration    TEXT NOT NULL DEFAULT '',
	skill_level TEXT NOT NULL DEFAULT '',
	type        TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	url         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS recommendations (
	id          SERIAL PRIMARY KEY,
	user_id     TEXT NOT NULL,
	course_id   TEXT NOT NULL,
	preferences JSONB NOT NULL DEFAULT '{}',
	score       DOUBLE PRECISION NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_recommendations_user ON recommendations(user_id);
`

// EnsureSchema creates the courses and recommendations tables if needed
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
