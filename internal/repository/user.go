// Package repository provides persistence implementations for the user,
// meal, weight, and workout stores using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caltrack/caltrack/internal/models"
)

// PostgresUserRepository implements user persistence against PostgreSQL.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the
// given database connection.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// EmailExists checks whether a user with the specified email exists.
func (r *PostgresUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	return exists, err
}

// CreateUser inserts a new user record.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, u *models.User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password_hash, current_weight_kg, target_weight_kg, calorie_goal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, u.ID, u.Email, u.Name, u.PasswordHash, u.CurrentWeightKg, u.TargetWeightKg, u.CalorieGoal)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUserByEmail fetches a user by email. Returns (nil, nil) when no user
// with that email exists, so callers can tell absence from a store failure.
func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, `
		SELECT id, email, name, password_hash, current_weight_kg, target_weight_kg, calorie_goal
		FROM users WHERE email = $1
	`, email)
}

// GetUserByID fetches a user by id. Returns (nil, nil) when absent.
func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUser(ctx, `
		SELECT id, email, name, password_hash, current_weight_kg, target_weight_kg, calorie_goal
		FROM users WHERE id = $1
	`, id)
}

func (r *PostgresUserRepository) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash,
		&u.CurrentWeightKg, &u.TargetWeightKg, &u.CalorieGoal,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UpdateCurrentWeight sets the user's denormalized current weight.
func (r *PostgresUserRepository) UpdateCurrentWeight(ctx context.Context, userID string, weightKg float64) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE users SET current_weight_kg = $1 WHERE id = $2`,
		weightKg, userID,
	)
	if err != nil {
		return fmt.Errorf("update current weight: %w", err)
	}
	return nil
}
