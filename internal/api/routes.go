package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kulhunter/eventis-backend/internal/middleware"
)

// SetupRoutes configures all the routes for the application. CORS is open:
// the consumers are static browser frontends on other origins.
func SetupRoutes(app *fiber.App, h *Handlers) {
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger())

	app.Get("/", h.Banner)
	app.Get("/events", h.GetEvents)
	app.Get("/run-scrape", h.RunScrape)
	app.Post("/recommend-event-ai", h.RecommendEvent)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
