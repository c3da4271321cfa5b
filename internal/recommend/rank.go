package recommend

import (
	"sort"

	"github.com/caltrack/caltrack/internal/models"
)

// MaxRecommendations bounds the length of a recommendation list.
const MaxRecommendations = 3

// Rank scores every catalog workout against the given daily state and
// returns at most limit entries, ordered by descending score. Ties keep
// catalog order (stable sort). An empty catalog yields an empty list.
func Rank(catalog []models.Workout, state *models.DailyState, limit int) []models.ScoredWorkout {
	scored := make([]models.ScoredWorkout, 0, len(catalog))
	for _, w := range catalog {
		scored = append(scored, models.ScoredWorkout{
			Workout: w,
			Score:   Score(w, state.Remaining, state.WeightDelta),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
