// @title         AIFolio API
// @version       1.0
// @description   Extracts structured data from uploaded resumes via an LLM and publishes static portfolio sites from the result.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/jain881/AIFolio/docs"

	apihttp "github.com/jain881/AIFolio/api/http"
	"github.com/jain881/AIFolio/api/http/handlers"
	"github.com/jain881/AIFolio/pkg/config"
	"github.com/jain881/AIFolio/pkg/cv"
	"github.com/jain881/AIFolio/pkg/health"
	"github.com/jain881/AIFolio/pkg/health/checkers"
	"github.com/jain881/AIFolio/pkg/llm"
	"github.com/jain881/AIFolio/pkg/llm/gemini"
	"github.com/jain881/AIFolio/pkg/llm/openrouter"
	"github.com/jain881/AIFolio/pkg/portfolio"
	"github.com/jain881/AIFolio/pkg/store"
	pgstore "github.com/jain881/AIFolio/pkg/store/postgres"
	"github.com/jain881/AIFolio/pkg/store/sqlite"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 16 << 20,
	})

	// Load configuration from env/.env
	cfg := config.Load()

	// Key-value store: Postgres when configured, embedded sqlite otherwise.
	var kv store.KV
	if cfg.DatabaseURL != "" {
		s, err := pgstore.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		kv = s
	} else {
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("sqlite open: %v", err)
		}
		kv = s
	}
	defer kv.Close()

	// Model gateway
	timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
	var model llm.Client
	var modelName string
	switch cfg.LLMProvider {
	case "gemini":
		model = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, timeout)
		modelName = cfg.GeminiModel
	default:
		model = openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
			timeout,
		)
		modelName = cfg.OpenRouterModel
	}

	// Wire dependencies
	cvSvc := cv.NewService(model, cfg.MinExtractChars, cfg.MaxPromptChars)
	artifacts := portfolio.NewArtifacts(cfg.TemplateDir, cfg.ArtifactsDir)
	publisher := portfolio.NewPublisher(kv, artifacts, cfg.BaseHost)
	tracker := portfolio.NewTracker(kv)

	readiness := health.NewService(checkers.NewStoreChecker(kv))

	healthHandler := handlers.NewHealthHandler(readiness)
	cvHandler := handlers.NewCVHandler(cvSvc, modelName, cfg.UploadsDir)
	portfolioHandler := handlers.NewPortfolioHandler(publisher, tracker)
	artifactHandler := handlers.NewArtifactHandler(publisher, tracker)

	// Register routes
	apihttp.Register(app, healthHandler, cvHandler, portfolioHandler, artifactHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Printf("HTTP server listening on :%s (llm=%s, model=%s)", cfg.Port, cfg.LLMProvider, modelName)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
