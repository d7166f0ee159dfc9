package assistant

import (
	"github.com/samber/lo"

	"github.com/jhoicas/shoppingassistantservice/internal/application/dto"
	"github.com/jhoicas/shoppingassistantservice/internal/domain/catalog"
	"github.com/jhoicas/shoppingassistantservice/internal/domain/entity"
)

// CatalogUseCase expone en solo lectura el catálogo fijo que se envía al modelo.
type CatalogUseCase struct{}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

// List devuelve todos los productos en el orden del catálogo.
func (uc *CatalogUseCase) List() *dto.CatalogListResponse {
	items := lo.Map(catalog.Products(), func(p entity.CatalogEntry, _ int) dto.CatalogItemResponse {
		return dto.CatalogItemResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Picture:     p.Picture,
			Price:       p.PriceUSD.String(),
			Categories:  p.Categories,
		}
	})
	return &dto.CatalogListResponse{Items: items, Total: len(items)}
}
