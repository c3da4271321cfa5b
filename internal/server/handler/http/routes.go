package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/caltrack/caltrack/internal/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// CalTrack API. It applies CORS for the dashboard SPA, JSON content-type
// enforcement, and request logging, and mounts the public auth endpoints
// and the bearer-token-protected tracking and recommendation endpoints
// under /api.
//
// Routes:
//
//	POST /api/auth/register        → authHandler.Register
//	POST /api/auth/login           → authHandler.Login
//	GET  /api/summary              → summaryHandler.Summary      (auth)
//	GET  /api/workouts/recommend   → recommendHandler.Recommend  (auth)
//	GET  /api/meals                → trackerHandler.ListMeals    (auth)
//	POST /api/meals                → trackerHandler.CreateMeal   (auth)
//	GET  /api/weight               → trackerHandler.ListWeight   (auth)
//	POST /api/weight               → trackerHandler.CreateWeight (auth)
func NewRouter(
	authHandler *AuthHandler,
	summaryHandler *SummaryHandler,
	recommendHandler *RecommendHandler,
	trackerHandler *TrackerHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
	corsOrigin string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(verifier))

			r.Get("/summary", summaryHandler.Summary)
			r.Get("/workouts/recommend", recommendHandler.Recommend)
			r.Get("/meals", trackerHandler.ListMeals)
			r.Post("/meals", trackerHandler.CreateMeal)
			r.Get("/weight", trackerHandler.ListWeight)
			r.Post("/weight", trackerHandler.CreateWeight)
		})
	})

	return r
}
