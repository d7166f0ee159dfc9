package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/shoppingassistantservice/internal/application/assistant"
	"github.com/jhoicas/shoppingassistantservice/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecommendUC *assistant.RecommendUseCase
	CatalogUC   *assistant.CatalogUseCase
	Log         *logger.Logger
	ServiceName string
}

// Router registra las rutas del servicio. No hay autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestIDMiddleware())
	if deps.Log != nil {
		app.Use(LoggingMiddleware(deps.Log))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	app.Get("/catalog", catalogHandler.List)

	assistantHandler := NewAssistantHandler(deps.RecommendUC, deps.Log)
	app.Post("/", assistantHandler.Recommend)
}
