package http

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shoppingassistantservice/internal/application/assistant"
	"github.com/jhoicas/shoppingassistantservice/internal/application/dto"
	"github.com/jhoicas/shoppingassistantservice/internal/domain"
	"github.com/jhoicas/shoppingassistantservice/internal/infrastructure/metrics"
	"github.com/jhoicas/shoppingassistantservice/pkg/logger"
)

var recommendationSchema = mustBodySchema(&dto.RecommendationRequest{})

// AssistantHandler maneja el endpoint de recomendación de productos a partir de una foto.
type AssistantHandler struct {
	uc  *assistant.RecommendUseCase
	log *logger.Logger
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *assistant.RecommendUseCase, log *logger.Logger) *AssistantHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AssistantHandler{uc: uc, log: log}
}

// Recommend godoc
// @Summary      Recomendar productos para una habitación
// @Description  Describe el estilo de la habitación de la foto con un modelo de visión y recomienda
// @Description  hasta tres productos del catálogo según esa descripción y la petición del cliente.
// @Description  La respuesta termina, por convención del prompt, con "[id1], [id2], [id3]".
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecommendationRequest  true  "image (URL) y message (codificado con porcentajes)"
// @Success      200   {object}  dto.RecommendationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       / [post]
func (h *AssistantHandler) Recommend(c *fiber.Ctx) error {
	log := GetLogger(c, h.log)

	if err := recommendationSchema.Validate(c.Body()); err != nil {
		if errors.Is(err, errMalformedBody) {
			return h.fail(c, fiber.StatusBadRequest, "INVALID_BODY", errMalformedBody.Error())
		}
		return h.fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}

	var req dto.RecommendationRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "INVALID_BODY", errMalformedBody.Error())
	}

	out, err := h.uc.RecommendWithLogger(c.Context(), log, req)
	if err != nil {
		log.Error().Err(err).Msg("recomendación fallida")
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return h.fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
		case errors.Is(err, domain.ErrInferenceTimeout):
			return h.fail(c, fiber.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "el servicio de inferencia tardó demasiado; intenta de nuevo")
		case errors.Is(err, domain.ErrInferenceFailed), errors.Is(err, domain.ErrEmptyCompletion):
			return h.fail(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "el servicio de inferencia no respondió correctamente")
		default:
			return h.fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
		}
	}

	metrics.Recommendations.WithLabelValues(strconv.Itoa(fiber.StatusOK)).Inc()
	return c.JSON(out)
}

func (h *AssistantHandler) fail(c *fiber.Ctx, status int, code, message string) error {
	metrics.Recommendations.WithLabelValues(strconv.Itoa(status)).Inc()
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}
