package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/kulhunter/eventis-backend/internal/ai"
	"github.com/kulhunter/eventis-backend/internal/config"
	"github.com/kulhunter/eventis-backend/internal/logger"
	"github.com/kulhunter/eventis-backend/internal/models"
)

// Store is the remote document store surface the handlers need.
type Store interface {
	ReadLatest(ctx context.Context) ([]models.Event, error)
	Publish(ctx context.Context, events []models.Event) error
}

// ScrapeRunner executes one full harvest-and-curate run.
type ScrapeRunner interface {
	Run(ctx context.Context) []models.Event
}

// EventRecommender answers a question over the caller's event list.
type EventRecommender interface {
	Recommend(ctx context.Context, question string, events []models.Event) (string, error)
}

type Handlers struct {
	config      *config.Config
	store       Store
	scraper     ScrapeRunner
	recommender EventRecommender
	validate    *validator.Validate
}

// NewHandlers wires the request handlers. store and recommender may be nil
// when their configuration is missing; the affected endpoints answer 500.
func NewHandlers(cfg *config.Config, store Store, scraper ScrapeRunner, recommender EventRecommender) *Handlers {
	return &Handlers{
		config:      cfg,
		store:       store,
		scraper:     scraper,
		recommender: recommender,
		validate:    validator.New(),
	}
}

// Banner handles GET /
func (h *Handlers) Banner(c *fiber.Ctx) error {
	return c.SendString("Motor de Eventis funcionando (scraping + curaduría IA + chatbot).")
}

// GetEvents handles GET /events: a read-through to the remote store.
func (h *Handlers) GetEvents(c *fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "El servidor no está configurado correctamente (JSONBin API Key/ID faltantes).",
		})
	}

	events, err := h.store.ReadLatest(c.UserContext())
	if err != nil {
		logger.Get().Error().Err(err).Msg("reading published events failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "No se pudo obtener la lista de eventos de la bodega.",
		})
	}

	if events == nil {
		events = []models.Event{}
	}
	return c.JSON(events)
}

// RunScrape handles GET /run-scrape. The key check happens before any
// outbound call; a mismatch causes no fetch, no model call and no publish.
func (h *Handlers) RunScrape(c *fiber.Ctx) error {
	key := c.Query("key")
	if h.config.ScrapeSecretKey == "" || key != h.config.ScrapeSecretKey {
		return c.Status(fiber.StatusUnauthorized).
			SendString("Clave secreta inválida. Acceso no autorizado.")
	}

	logger.Get().Info().Msg("scrape triggered")
	events := h.scraper.Run(c.UserContext())

	if h.store == nil {
		return c.Status(fiber.StatusInternalServerError).
			SendString("Error al guardar los eventos en la bodega. Revisa los logs.")
	}
	if err := h.store.Publish(c.UserContext(), events); err != nil {
		logger.Get().Error().Err(err).Msg("publishing events failed")
		return c.Status(fiber.StatusInternalServerError).
			SendString("Error al guardar los eventos en la bodega. Revisa los logs.")
	}

	return c.SendString(fmt.Sprintf("Scraping completado. %d eventos de calidad guardados en JSONBin.", len(events)))
}

type recommendRequest struct {
	Question      string         `json:"question" validate:"required"`
	CurrentEvents []models.Event `json:"currentEvents"`
}

// RecommendEvent handles POST /recommend-event-ai.
func (h *Handlers) RecommendEvent(c *fiber.Ctx) error {
	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body: " + err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "La pregunta es obligatoria.",
		})
	}

	if h.recommender == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "El modelo de IA para el chatbot no está inicializado. Verifica GEMINI_API_KEY.",
		})
	}

	recommendation, err := h.recommender.Recommend(c.UserContext(), req.Question, req.CurrentEvents)
	if err != nil {
		logger.Get().Error().Err(err).Msg("recommendation failed")
		if errors.Is(err, ai.ErrQuotaExceeded) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Lo siento, el asistente está muy ocupado. Por favor, intenta de nuevo en un minuto.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Lo siento, no se pudo generar una recomendación en este momento. Intenta de nuevo más tarde.",
		})
	}

	return c.JSON(fiber.Map{"recommendation": recommendation})
}
