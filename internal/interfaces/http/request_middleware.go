package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/shoppingassistantservice/pkg/logger"
)

// Locals keys para el id de petición y el logger asociado.
const (
	LocalRequestID = "request_id"
	LocalLogger    = "logger"
)

// RequestIDMiddleware asigna un UUID a cada petición (cabecera X-Request-ID) y lo guarda en c.Locals.
// Si el cliente envía X-Request-ID se respeta.
func RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	})
}

// LoggingMiddleware registra una línea por petición y deja en c.Locals un sublogger con el request_id.
// Debe usarse DESPUÉS de RequestIDMiddleware.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqLog := log.WithRequestID(GetRequestID(c))
		c.Locals(LocalLogger, reqLog)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// GetRequestID devuelve el id de petición (después de RequestIDMiddleware).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetLogger devuelve el logger de la petición o fallback si el middleware no corrió.
func GetLogger(c *fiber.Ctx, fallback *logger.Logger) *logger.Logger {
	if l, ok := c.Locals(LocalLogger).(*logger.Logger); ok && l != nil {
		return l
	}
	return fallback
}
