package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/jain881/AIFolio/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, cvh *handlers.CVHandler, pf *handlers.PortfolioHandler, art *handlers.ArtifactHandler) {
	app.Use(cors.New())

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// CV extraction
	cg := v1.Group("/cv")
	cg.Post("/extract", cvh.Extract)

	// Portfolio publishing and stats
	pg := v1.Group("/portfolio")
	pg.Post("/publish", pf.Publish)
	pg.Get("/:id/views", pf.Views)

	// Published artifacts (public)
	app.Get("/p/:id", art.Serve)
	app.Get("/p/:id/*", art.Serve)
}
