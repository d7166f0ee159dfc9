package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/shoppingassistantservice/docs"
	"github.com/jhoicas/shoppingassistantservice/internal/application/assistant"
	"github.com/jhoicas/shoppingassistantservice/internal/domain/catalog"
	infraai "github.com/jhoicas/shoppingassistantservice/internal/infrastructure/ai"
	httpRouter "github.com/jhoicas/shoppingassistantservice/internal/interfaces/http"
	"github.com/jhoicas/shoppingassistantservice/pkg/config"
	"github.com/jhoicas/shoppingassistantservice/pkg/logger"
)

// @title        Shopping Assistant API
// @version      1.0
// @description  Asistente de compras: recomienda productos del catálogo a partir de la foto de una habitación.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("openai_api_base", cfg.LLM.BaseURL).
		Str("model", cfg.LLM.Model).
		Msg("iniciando aplicación")

	if err := catalog.Validate(); err != nil {
		log.Fatal().Err(err).Msg("catálogo")
	}

	inference := infraai.NewInstrumentedService(infraai.NewOpenAIService(infraai.OpenAIConfig{
		BaseURL:    cfg.LLM.BaseURL,
		APIKey:     cfg.LLM.APIKey,
		Model:      cfg.LLM.Model,
		MaxRetries: cfg.LLM.MaxRetries,
		Timeout:    cfg.LLM.Timeout,
	}))
	recommendUC := assistant.NewRecommendUseCase(inference, log, assistant.WithStepTimeout(cfg.LLM.StepTimeout))
	catalogUC := assistant.NewCatalogUseCase()

	// Sin WriteTimeout: la cadena de dos llamadas al modelo puede tardar minutos.
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ReadTimeout:           time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: cfg.App.Env != "development",
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs (solo si existe el swagger.json)
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecommendUC: recommendUC,
		CatalogUC:   catalogUC,
		Log:         log,
		ServiceName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
