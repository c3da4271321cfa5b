package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/caltrack/caltrack/internal/middleware"
	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/internal/service"
)

// Recommender produces a ranked workout list for a user.
type Recommender interface {
	Recommend(ctx context.Context, userID string, now time.Time) ([]models.ScoredWorkout, error)
}

// RecommendHandler handles the workout recommendation endpoint.
type RecommendHandler struct {
	Recommender Recommender
	// Now supplies the current time; nil means time.Now.
	Now func() time.Time
}

// Recommend handles GET /api/workouts/recommend for the authenticated
// user. The body is an ordered array of at most three scored workouts; an
// empty catalog yields an empty array.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	recs, err := h.Recommender.Recommend(r.Context(), userID, h.now())
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

func (h *RecommendHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
