// Package recommend implements the workout recommendation pipeline: a fixed
// linear scoring function over three features, and a ranker that orders the
// catalog by score.
package recommend

import "github.com/caltrack/caltrack/internal/models"

// Feature weights of the scoring formula. Fixed constants of the design,
// not tunable per call.
const (
	calorieFitWeight    = 0.5
	goalAlignmentWeight = 0.3
	intensityWeight     = 0.2

	// intensityThreshold separates high-intensity workouts (score 1)
	// from the rest (score 0.5). Strictly greater-than.
	intensityThreshold = 200.0
)

// Score computes the suitability of a workout for a user with the given
// remaining calorie budget and weight delta (current minus target).
// Pure and deterministic; no I/O.
//
// Calorie fit is the ratio of the workout's burn to the remaining budget,
// zero when the budget is spent or exceeded. The ratio is deliberately
// unbounded above: the score is a relative ranking signal, not a
// probability. Goal alignment rewards cardio when the user is above target
// weight and strength when below. Intensity favors burns above the
// threshold.
func Score(w models.Workout, remainingCalories int, weightDelta float64) float64 {
	var calorieFit float64
	if remainingCalories > 0 {
		calorieFit = w.CaloriesBurn / float64(remainingCalories)
	}

	var goalAlignment float64
	if (weightDelta > 0 && w.Type == models.WorkoutCardio) ||
		(weightDelta < 0 && w.Type == models.WorkoutStrength) {
		goalAlignment = 1
	}

	intensity := 0.5
	if w.CaloriesBurn > intensityThreshold {
		intensity = 1
	}

	return calorieFitWeight*calorieFit +
		goalAlignmentWeight*goalAlignment +
		intensityWeight*intensity
}
