package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caltrack/caltrack/internal/models"
)

// PostgresWorkoutRepository reads the workout catalog from PostgreSQL.
// The catalog is seeded at startup and treated as read-only at request time.
type PostgresWorkoutRepository struct {
	DB *sql.DB
}

// NewPostgresWorkoutRepository creates a new PostgresWorkoutRepository with
// the given database connection.
func NewPostgresWorkoutRepository(db *sql.DB) *PostgresWorkoutRepository {
	return &PostgresWorkoutRepository{DB: db}
}

// AllWorkouts returns the full catalog in id order. The recommendation
// ranker relies on this order being stable between calls.
func (r *PostgresWorkoutRepository) AllWorkouts(ctx context.Context) ([]models.Workout, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, type, calories_burn FROM workouts ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("all workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Type, &w.CaloriesBurn); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
