// Package models defines the core data structures for users, meals,
// weight entries, and workouts.
package models

import "time"

// User represents an application user with credentials and profile state.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Email is the unique login email, stored lowercase.
	Email string `json:"email"`
	// Name is the display name chosen at registration.
	Name string `json:"name"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte `json:"-"`
	// CurrentWeightKg is the most recently logged body weight.
	CurrentWeightKg float64 `json:"current_weight_kg"`
	// TargetWeightKg is the weight the user is working toward.
	TargetWeightKg float64 `json:"target_weight_kg"`
	// CalorieGoal is the daily calorie budget in kcal. Always positive.
	CalorieGoal int `json:"calorie_goal"`
}

// Meal is a single logged meal.
type Meal struct {
	ID       string    `json:"id"`
	UserID   string    `json:"-"`
	Name     string    `json:"meal_name"`
	Calories int       `json:"calories"`
	AteAt    time.Time `json:"ate_at"`
}

// WeightEntry is a single body-weight measurement.
type WeightEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	WeightKg   float64   `json:"weight_kg"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Workout is one entry of the read-only workout catalog.
type Workout struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	CaloriesBurn float64 `json:"calories_burn"`
}

// Workout types with recommendation semantics. The catalog may carry
// other types; they simply never earn the goal-alignment bonus.
const (
	WorkoutCardio   = "cardio"
	WorkoutStrength = "strength"
)

// DailyState is the user's physiological state for the current day,
// derived on every request and never persisted.
type DailyState struct {
	// CalorieGoal is the configured daily budget.
	CalorieGoal int
	// Consumed is the calorie sum of meals logged today.
	Consumed int
	// Remaining is CalorieGoal - Consumed. May be negative.
	Remaining int
	// WeightDelta is current weight minus target weight. Positive means
	// the user is above target.
	WeightDelta float64
}

// ScoredWorkout pairs a catalog workout with its suitability score for
// one recommendation request.
type ScoredWorkout struct {
	Workout
	Score float64 `json:"score"`
}
