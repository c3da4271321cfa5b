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

// StateService supplies the daily calorie summary.
type StateService interface {
	DailyState(ctx context.Context, userID string, now time.Time) (*models.DailyState, error)
}

// SummaryHandler handles the daily calorie summary endpoint.
type SummaryHandler struct {
	StateService StateService
	// Now supplies the current time; nil means time.Now. Tests pin it.
	Now func() time.Time
}

// summaryResponse is the body of GET /api/summary.
type summaryResponse struct {
	CalorieGoal int `json:"calorie_goal"`
	Consumed    int `json:"consumed"`
	Remaining   int `json:"remaining"`
}

// Summary handles GET /api/summary for the authenticated user.
// A vanished user responds 404; any other aggregate failure responds 500.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	state, err := h.StateService.DailyState(r.Context(), userID, h.now())
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		CalorieGoal: state.CalorieGoal,
		Consumed:    state.Consumed,
		Remaining:   state.Remaining,
	})
}

func (h *SummaryHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
