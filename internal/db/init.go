package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    password_hash BYTEA NOT NULL,
    current_weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
    target_weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
    calorie_goal INTEGER NOT NULL CHECK (calorie_goal > 0)
);

CREATE TABLE IF NOT EXISTS meals (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    meal_name TEXT NOT NULL,
    calories INTEGER NOT NULL CHECK (calories > 0),
    ate_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS meals_user_ate_at ON meals (user_id, ate_at);

CREATE TABLE IF NOT EXISTS weight_entries (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    weight_kg DOUBLE PRECISION NOT NULL CHECK (weight_kg > 0),
    recorded_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS weight_entries_user_recorded ON weight_entries (user_id, recorded_at);

CREATE TABLE IF NOT EXISTS workouts (
    id BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    calories_burn DOUBLE PRECISION NOT NULL CHECK (calories_burn > 0)
);
`

// catalogSeed populates the read-only workout catalog. ON CONFLICT keeps
// the statement idempotent across restarts.
const catalogSeed = `
INSERT INTO workouts (id, name, type, calories_burn) VALUES
    (1, 'Running', 'cardio', 300),
    (2, 'Cycling', 'cardio', 250),
    (3, 'Swimming', 'cardio', 400),
    (4, 'Jump rope', 'cardio', 220),
    (5, 'Brisk walk', 'cardio', 150),
    (6, 'Bench press', 'strength', 180),
    (7, 'Squats', 'strength', 210),
    (8, 'Deadlifts', 'strength', 240),
    (9, 'Push-ups', 'strength', 120),
    (10, 'Yoga', 'mobility', 140)
ON CONFLICT (id) DO NOTHING;
`

// InitPostgres opens a PostgreSQL connection, verifies it, creates the
// schema, and seeds the workout catalog.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if _, err := db.Exec(catalogSeed); err != nil {
		return nil, fmt.Errorf("seed workout catalog: %w", err)
	}

	return db, nil
}
