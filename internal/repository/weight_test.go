package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/caltrack/caltrack/internal/models"
)

func setupWeightMock(t *testing.T) (*PostgresWeightRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresWeightRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestInsertEntry(t *testing.T) {
	repo, mock, cleanup := setupWeightMock(t)
	defer cleanup()

	e := &models.WeightEntry{
		ID:         "w1",
		UserID:     "user-1",
		WeightKg:   79.4,
		RecordedAt: time.Date(2025, 3, 1, 7, 30, 0, 0, time.UTC),
	}
	mock.ExpectExec("INSERT INTO weight_entries").
		WithArgs(e.ID, e.UserID, e.WeightKg, e.RecordedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.InsertEntry(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestRecentEntries(t *testing.T) {
	repo, mock, cleanup := setupWeightMock(t)
	defer cleanup()

	now := time.Date(2025, 3, 1, 7, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "weight_kg", "recorded_at"}).
		AddRow("w2", "user-1", 79.4, now).
		AddRow("w1", "user-1", 80.1, now.Add(-24*time.Hour))
	mock.ExpectQuery("SELECT id, user_id, weight_kg, recorded_at FROM weight_entries").
		WithArgs("user-1", 30).
		WillReturnRows(rows)

	entries, err := repo.RecentEntries(context.Background(), "user-1", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].WeightKg != 79.4 {
		t.Errorf("expected newest entry first, got %+v", entries[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
