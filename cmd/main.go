package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kulhunter/eventis-backend/internal/ai"
	"github.com/kulhunter/eventis-backend/internal/api"
	"github.com/kulhunter/eventis-backend/internal/config"
	"github.com/kulhunter/eventis-backend/internal/logger"
	"github.com/kulhunter/eventis-backend/internal/middleware"
	"github.com/kulhunter/eventis-backend/internal/models"
	"github.com/kulhunter/eventis-backend/internal/scraper"
	"github.com/kulhunter/eventis-backend/internal/sources"
	"github.com/kulhunter/eventis-backend/internal/storage"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Str("model", cfg.GeminiModel).Msg("Starting Eventis backend...")

	// One gate paces every model call, scrape and chatbot alike.
	gate := ai.NewGate(ai.RequestInterval)

	var gemini *ai.GeminiClient
	if cfg.GeminiAPIKey != "" {
		gemini = ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, gate)
	}

	var classifier scraper.EventClassifier
	var recommender api.EventRecommender
	if gemini != nil {
		classifier = ai.NewClassifier(gemini)
		recommender = ai.NewRecommender(gemini)
	} else {
		classifier = rejectAll{}
	}

	var store api.Store
	if cfg.StoreConfigured() {
		store = storage.NewClient(cfg.JSONBinAPIKey, cfg.JSONBinBinID)
	}

	scrapeService := scraper.New(cfg.EventbriteToken, classifier, sources.Registry)

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	handlers := api.NewHandlers(cfg, store, scrapeService, recommender)
	api.SetupRoutes(app, handlers)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// rejectAll stands in for the classifier when no model key is configured;
// every candidate is dropped as a non-event.
type rejectAll struct{}

func (rejectAll) Classify(context.Context, models.RawCandidate) (*models.Event, error) {
	return nil, nil
}
