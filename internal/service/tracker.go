package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caltrack/caltrack/internal/models"
)

// MealRepository defines the meal persistence operations needed by the
// tracker service.
type MealRepository interface {
	InsertMeal(ctx context.Context, m *models.Meal) error
	MealsBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Meal, error)
}

// WeightRepository defines the weight persistence operations needed by the
// tracker service.
type WeightRepository interface {
	InsertEntry(ctx context.Context, e *models.WeightEntry) error
	RecentEntries(ctx context.Context, userID string, limit int) ([]models.WeightEntry, error)
}

// WeightUpdater mirrors a new measurement onto the user's profile.
type WeightUpdater interface {
	UpdateCurrentWeight(ctx context.Context, userID string, weightKg float64) error
}

// WeightHistoryLimit bounds the entries returned by WeightHistory.
const WeightHistoryLimit = 30

// TrackerService implements meal and weight logging.
type TrackerService struct {
	meals          MealRepository
	weights        WeightRepository
	users          WeightUpdater
	boundaryOffset time.Duration
}

// NewTrackerService constructs a TrackerService. boundaryOffset must match
// the one used by the state aggregator so "today's meals" agree.
func NewTrackerService(meals MealRepository, weights WeightRepository, users WeightUpdater, boundaryOffset time.Duration) *TrackerService {
	return &TrackerService{meals: meals, weights: weights, users: users, boundaryOffset: boundaryOffset}
}

// LogMeal records a meal eaten now.
func (s *TrackerService) LogMeal(ctx context.Context, userID, name string, calories int, now time.Time) (*models.Meal, error) {
	meal := &models.Meal{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Calories: calories,
		AteAt:    now.UTC(),
	}
	if err := s.meals.InsertMeal(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// MealsForDay returns the meals logged within the current calendar day.
func (s *TrackerService) MealsForDay(ctx context.Context, userID string, now time.Time) ([]models.Meal, error) {
	from, to := dayWindow(now, s.boundaryOffset)
	return s.meals.MealsBetween(ctx, userID, from, to)
}

// RecordWeight stores a new measurement and updates the user's current
// weight. The entry insert wins: if the profile update fails the entry
// stays and the error surfaces.
func (s *TrackerService) RecordWeight(ctx context.Context, userID string, weightKg float64, now time.Time) (*models.WeightEntry, error) {
	entry := &models.WeightEntry{
		ID:         uuid.NewString(),
		UserID:     userID,
		WeightKg:   weightKg,
		RecordedAt: now.UTC(),
	}
	if err := s.weights.InsertEntry(ctx, entry); err != nil {
		return nil, err
	}
	if err := s.users.UpdateCurrentWeight(ctx, userID, weightKg); err != nil {
		return nil, fmt.Errorf("update profile weight: %w", err)
	}
	return entry, nil
}

// WeightHistory returns the user's most recent measurements, newest first.
func (s *TrackerService) WeightHistory(ctx context.Context, userID string) ([]models.WeightEntry, error) {
	return s.weights.RecentEntries(ctx, userID, WeightHistoryLimit)
}
