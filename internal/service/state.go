package service

import (
	"context"
	"fmt"
	"time"

	"github.com/caltrack/caltrack/internal/models"
)

// UserReader fetches user records for the state aggregator.
type UserReader interface {
	// GetUserByID fetches a user by id, returning (nil, nil) when absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// MealReader sums logged calories for the state aggregator.
type MealReader interface {
	CaloriesBetween(ctx context.Context, userID string, from, to time.Time) (int, error)
}

// StateService derives a user's daily physiological state from the store.
// The state is recomputed on every call and never cached; a ranking based
// on slightly stale concurrent writes is acceptable.
type StateService struct {
	users          UserReader
	meals          MealReader
	boundaryOffset time.Duration
}

// NewStateService constructs a StateService. boundaryOffset shifts the
// day boundary used for calorie aggregation away from UTC midnight.
func NewStateService(users UserReader, meals MealReader, boundaryOffset time.Duration) *StateService {
	return &StateService{users: users, meals: meals, boundaryOffset: boundaryOffset}
}

// DailyState returns the user's calorie goal, today's consumed calories,
// the remaining budget (which may be negative), and the weight delta
// versus target. Returns ErrUserNotFound if the user id resolves to no
// record.
func (s *StateService) DailyState(ctx context.Context, userID string, now time.Time) (*models.DailyState, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	from, to := dayWindow(now, s.boundaryOffset)
	consumed, err := s.meals.CaloriesBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum calories: %w", err)
	}

	return &models.DailyState{
		CalorieGoal: user.CalorieGoal,
		Consumed:    consumed,
		Remaining:   user.CalorieGoal - consumed,
		WeightDelta: user.CurrentWeightKg - user.TargetWeightKg,
	}, nil
}

// dayWindow returns the [start, end) interval of the calendar day that
// contains now, with midnight shifted by offset from UTC.
func dayWindow(now time.Time, offset time.Duration) (time.Time, time.Time) {
	shifted := now.UTC().Add(offset)
	start := time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC).Add(-offset)
	return start, start.Add(24 * time.Hour)
}
