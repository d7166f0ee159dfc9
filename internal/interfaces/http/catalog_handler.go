package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shoppingassistantservice/internal/application/assistant"
)

// CatalogHandler expone el catálogo fijo en solo lectura.
type CatalogHandler struct {
	uc *assistant.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *assistant.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar el catálogo usado en las recomendaciones
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
