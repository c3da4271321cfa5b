package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/caltrack/caltrack/internal/middleware"
	"github.com/caltrack/caltrack/internal/models"
)

// TrackerService defines the meal and weight logging operations required
// by the HTTP handlers.
type TrackerService interface {
	LogMeal(ctx context.Context, userID, name string, calories int, now time.Time) (*models.Meal, error)
	MealsForDay(ctx context.Context, userID string, now time.Time) ([]models.Meal, error)
	RecordWeight(ctx context.Context, userID string, weightKg float64, now time.Time) (*models.WeightEntry, error)
	WeightHistory(ctx context.Context, userID string) ([]models.WeightEntry, error)
}

// TrackerHandler handles the meal and weight log endpoints.
type TrackerHandler struct {
	Tracker TrackerService
	// Now supplies the current time; nil means time.Now.
	Now func() time.Time
}

// mealRequest is the JSON payload for logging a meal.
type mealRequest struct {
	Name     string `json:"meal_name"`
	Calories int    `json:"calories"`
}

// weightRequest is the JSON payload for recording a weight measurement.
type weightRequest struct {
	WeightKg float64 `json:"weight_kg"`
}

// ListMeals handles GET /api/meals: the authenticated user's meals for the
// current day, oldest first.
func (h *TrackerHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	meals, err := h.Tracker.MealsForDay(r.Context(), userID, h.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	writeJSON(w, http.StatusOK, meals)
}

// CreateMeal handles POST /api/meals. Name must be non-empty and calories
// positive.
func (h *TrackerHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Name == "" || req.Calories <= 0 {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())
	meal, err := h.Tracker.LogMeal(r.Context(), userID, req.Name, req.Calories, h.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, meal)
}

// ListWeight handles GET /api/weight: recent measurements, newest first.
func (h *TrackerHandler) ListWeight(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	entries, err := h.Tracker.WeightHistory(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if entries == nil {
		entries = []models.WeightEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// CreateWeight handles POST /api/weight. The weight must be positive.
func (h *TrackerHandler) CreateWeight(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WeightKg <= 0 {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())
	entry, err := h.Tracker.RecordWeight(r.Context(), userID, req.WeightKg, h.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *TrackerHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
