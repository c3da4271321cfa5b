package service

import (
	"context"
	"fmt"
	"time"

	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/internal/recommend"
)

// StateProvider supplies the daily state that drives scoring.
type StateProvider interface {
	DailyState(ctx context.Context, userID string, now time.Time) (*models.DailyState, error)
}

// WorkoutCatalog reads the full workout catalog.
type WorkoutCatalog interface {
	AllWorkouts(ctx context.Context) ([]models.Workout, error)
}

// RecommendationService orchestrates the daily state, the workout catalog,
// and the scoring engine into a bounded, ordered recommendation list.
type RecommendationService struct {
	state    StateProvider
	workouts WorkoutCatalog
}

// NewRecommendationService constructs a RecommendationService.
func NewRecommendationService(state StateProvider, workouts WorkoutCatalog) *RecommendationService {
	return &RecommendationService{state: state, workouts: workouts}
}

// Recommend returns up to recommend.MaxRecommendations workouts ranked by
// suitability for the user's current state. A state failure fails the whole
// operation; an empty catalog yields an empty list.
func (s *RecommendationService) Recommend(ctx context.Context, userID string, now time.Time) ([]models.ScoredWorkout, error) {
	state, err := s.state.DailyState(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	catalog, err := s.workouts.AllWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return recommend.Rank(catalog, state, recommend.MaxRecommendations), nil
}
