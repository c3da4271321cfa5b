package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caltrack/caltrack/internal/models"
)

// PostgresWeightRepository implements weight-entry persistence against
// PostgreSQL.
type PostgresWeightRepository struct {
	DB *sql.DB
}

// NewPostgresWeightRepository creates a new PostgresWeightRepository with
// the given database connection.
func NewPostgresWeightRepository(db *sql.DB) *PostgresWeightRepository {
	return &PostgresWeightRepository{DB: db}
}

// InsertEntry persists a single weight measurement.
func (r *PostgresWeightRepository) InsertEntry(ctx context.Context, e *models.WeightEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO weight_entries (id, user_id, weight_kg, recorded_at)
		VALUES ($1, $2, $3, $4)
	`, e.ID, e.UserID, e.WeightKg, e.RecordedAt)
	if err != nil {
		return fmt.Errorf("insert weight entry: %w", err)
	}
	return nil
}

// RecentEntries returns up to limit of the user's most recent weight
// measurements, newest first.
func (r *PostgresWeightRepository) RecentEntries(ctx context.Context, userID string, limit int) ([]models.WeightEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, weight_kg, recorded_at FROM weight_entries
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent entries: %w", err)
	}
	defer rows.Close()

	var entries []models.WeightEntry
	for rows.Next() {
		var e models.WeightEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.WeightKg, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
