package dto

// RecommendationRequest entrada del endpoint de recomendación.
// Message llega codificado con porcentajes (p. ej. "hello%20world").
type RecommendationRequest struct {
	Image   string `json:"image" jsonschema:"minLength=1,description=URL pública de la foto de la habitación"`
	Message string `json:"message" jsonschema:"minLength=1,description=Petición del cliente codificada con porcentajes"`
}

// RecommendationResponse salida del endpoint: texto del modelo sin postprocesar.
type RecommendationResponse struct {
	Content string `json:"content"`
}

// CatalogItemResponse producto del catálogo fijo con su precio formateado.
type CatalogItemResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	Price       string   `json:"price"`
	Categories  []string `json:"categories"`
}

// CatalogListResponse listado completo del catálogo.
type CatalogListResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Total int                   `json:"total"`
}
