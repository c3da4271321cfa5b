package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/caltrack/caltrack/internal/models"
)

// PostgresMealRepository implements meal persistence against PostgreSQL.
type PostgresMealRepository struct {
	DB *sql.DB
}

// NewPostgresMealRepository creates a new PostgresMealRepository with the
// given database connection.
func NewPostgresMealRepository(db *sql.DB) *PostgresMealRepository {
	return &PostgresMealRepository{DB: db}
}

// InsertMeal persists a single meal record.
func (r *PostgresMealRepository) InsertMeal(ctx context.Context, m *models.Meal) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO meals (id, user_id, meal_name, calories, ate_at)
		VALUES ($1, $2, $3, $4, $5)
	`, m.ID, m.UserID, m.Name, m.Calories, m.AteAt)
	if err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

// MealsBetween returns the user's meals with ate_at in [from, to),
// oldest first.
func (r *PostgresMealRepository) MealsBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Meal, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, meal_name, calories, ate_at FROM meals
		WHERE user_id = $1 AND ate_at >= $2 AND ate_at < $3
		ORDER BY ate_at
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("meals between: %w", err)
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Calories, &m.AteAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

// CaloriesBetween returns the calorie sum of the user's meals with ate_at
// in [from, to). No meals sums to zero.
func (r *PostgresMealRepository) CaloriesBetween(ctx context.Context, userID string, from, to time.Time) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(calories), 0) FROM meals
		WHERE user_id = $1 AND ate_at >= $2 AND ate_at < $3
	`, userID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("calories between: %w", err)
	}
	return total, nil
}
