package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caltrack/caltrack/internal/models"
)

type mockMealRepo struct {
	InsertMealFunc   func(ctx context.Context, m *models.Meal) error
	MealsBetweenFunc func(ctx context.Context, userID string, from, to time.Time) ([]models.Meal, error)
}

func (m *mockMealRepo) InsertMeal(ctx context.Context, meal *models.Meal) error {
	return m.InsertMealFunc(ctx, meal)
}
func (m *mockMealRepo) MealsBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Meal, error) {
	return m.MealsBetweenFunc(ctx, userID, from, to)
}

type mockWeightRepo struct {
	InsertEntryFunc   func(ctx context.Context, e *models.WeightEntry) error
	RecentEntriesFunc func(ctx context.Context, userID string, limit int) ([]models.WeightEntry, error)
}

func (m *mockWeightRepo) InsertEntry(ctx context.Context, e *models.WeightEntry) error {
	return m.InsertEntryFunc(ctx, e)
}
func (m *mockWeightRepo) RecentEntries(ctx context.Context, userID string, limit int) ([]models.WeightEntry, error) {
	return m.RecentEntriesFunc(ctx, userID, limit)
}

type mockWeightUpdater struct {
	UpdateCurrentWeightFunc func(ctx context.Context, userID string, weightKg float64) error
}

func (m *mockWeightUpdater) UpdateCurrentWeight(ctx context.Context, userID string, weightKg float64) error {
	return m.UpdateCurrentWeightFunc(ctx, userID, weightKg)
}

func TestLogMeal(t *testing.T) {
	var inserted *models.Meal
	meals := &mockMealRepo{
		InsertMealFunc: func(ctx context.Context, m *models.Meal) error {
			inserted = m
			return nil
		},
	}
	svc := NewTrackerService(meals, &mockWeightRepo{}, &mockWeightUpdater{}, 2*time.Hour)

	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	meal, err := svc.LogMeal(context.Background(), "user-1", "Oatmeal", 350, now)
	if err != nil {
		t.Fatalf("LogMeal returned error: %v", err)
	}
	if inserted == nil {
		t.Fatal("expected InsertMeal to be called on repo")
	}
	if meal.ID == "" || meal.UserID != "user-1" || meal.Calories != 350 {
		t.Errorf("unexpected meal: %+v", meal)
	}
	if !meal.AteAt.Equal(now) {
		t.Errorf("AteAt = %v; want %v", meal.AteAt, now)
	}
}

func TestMealsForDay_UsesBoundaryWindow(t *testing.T) {
	var gotFrom, gotTo time.Time
	meals := &mockMealRepo{
		MealsBetweenFunc: func(ctx context.Context, userID string, from, to time.Time) ([]models.Meal, error) {
			gotFrom, gotTo = from, to
			return nil, nil
		},
	}
	svc := NewTrackerService(meals, &mockWeightRepo{}, &mockWeightUpdater{}, 2*time.Hour)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	if _, err := svc.MealsForDay(context.Background(), "user-1", now); err != nil {
		t.Fatalf("MealsForDay returned error: %v", err)
	}

	wantFrom := time.Date(2025, 2, 28, 22, 0, 0, 0, time.UTC)
	if !gotFrom.Equal(wantFrom) || !gotTo.Equal(wantFrom.Add(24*time.Hour)) {
		t.Errorf("window = [%v, %v); want same window as the state aggregator", gotFrom, gotTo)
	}
}

func TestRecordWeight(t *testing.T) {
	var entrySaved bool
	var profileWeight float64
	weights := &mockWeightRepo{
		InsertEntryFunc: func(ctx context.Context, e *models.WeightEntry) error {
			entrySaved = true
			return nil
		},
	}
	users := &mockWeightUpdater{
		UpdateCurrentWeightFunc: func(ctx context.Context, userID string, weightKg float64) error {
			profileWeight = weightKg
			return nil
		},
	}
	svc := NewTrackerService(&mockMealRepo{}, weights, users, 2*time.Hour)

	entry, err := svc.RecordWeight(context.Background(), "user-1", 78.5, time.Now())
	if err != nil {
		t.Fatalf("RecordWeight returned error: %v", err)
	}
	if !entrySaved {
		t.Error("expected InsertEntry to be called on repo")
	}
	if profileWeight != 78.5 {
		t.Errorf("profile weight = %v; want 78.5", profileWeight)
	}
	if entry.WeightKg != 78.5 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestRecordWeight_InsertError(t *testing.T) {
	wantErr := errors.New("insert failed")
	weights := &mockWeightRepo{
		InsertEntryFunc: func(ctx context.Context, e *models.WeightEntry) error {
			return wantErr
		},
	}
	users := &mockWeightUpdater{
		UpdateCurrentWeightFunc: func(ctx context.Context, userID string, weightKg float64) error {
			t.Fatal("profile must not be updated when the entry insert fails")
			return nil
		},
	}
	svc := NewTrackerService(&mockMealRepo{}, weights, users, 2*time.Hour)

	if _, err := svc.RecordWeight(context.Background(), "user-1", 78.5, time.Now()); !errors.Is(err, wantErr) {
		t.Fatalf("RecordWeight error = %v; want %v", err, wantErr)
	}
}

func TestWeightHistory(t *testing.T) {
	weights := &mockWeightRepo{
		RecentEntriesFunc: func(ctx context.Context, userID string, limit int) ([]models.WeightEntry, error) {
			if limit != WeightHistoryLimit {
				t.Errorf("limit = %d; want %d", limit, WeightHistoryLimit)
			}
			return []models.WeightEntry{{ID: "w1", WeightKg: 79.4}}, nil
		},
	}
	svc := NewTrackerService(&mockMealRepo{}, weights, &mockWeightUpdater{}, 2*time.Hour)

	entries, err := svc.WeightHistory(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("WeightHistory returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "w1" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}
