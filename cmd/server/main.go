// Package main initializes and starts the CalTrack API server, setting up
// configuration, logging, the database connection, repositories, services,
// and HTTP handlers.
package main

import (
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/caltrack/caltrack/internal/config"
	"github.com/caltrack/caltrack/internal/db"
	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/repository"
	"github.com/caltrack/caltrack/internal/server/handler/http"
	"github.com/caltrack/caltrack/internal/service"
	"github.com/caltrack/caltrack/internal/token"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", orDefault(version, "N/A"))
	fmt.Printf("Build date: %s\n", orDefault(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// The signing secret is a startup requirement, not a per-request
	// concern.
	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET must be set")
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Trim old weight measurements in the background.
	db.StartWeightHistoryPruner(context.Background(), postgresDB,
		time.Hour,        // interval
		365*24*time.Hour, // retention: 1 year
		zapLogger,
	)

	// Initialize repositories.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	mealRepo := repository.NewPostgresMealRepository(postgresDB)
	weightRepo := repository.NewPostgresWeightRepository(postgresDB)
	workoutRepo := repository.NewPostgresWorkoutRepository(postgresDB)

	// Session token codec with the process-wide secret.
	tokens := token.NewManager(options.JWTSecret, options.TokenTTL, nil)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, tokens)
	stateService := service.NewStateService(userRepo, mealRepo, options.DayBoundaryOffset)
	trackerService := service.NewTrackerService(mealRepo, weightRepo, userRepo, options.DayBoundaryOffset)
	recommendService := service.NewRecommendationService(stateService, workoutRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	summaryHandler := &http.SummaryHandler{StateService: stateService}
	recommendHandler := &http.RecommendHandler{Recommender: recommendService}
	trackerHandler := &http.TrackerHandler{Tracker: trackerService}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		authHandler,
		summaryHandler,
		recommendHandler,
		trackerHandler,
		tokens,
		zapLogger,
		options.CORSOrigin,
	)

	server := &nethttp.Server{
		Addr:         options.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}

// orDefault returns s if it is non-empty, otherwise def.
func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
