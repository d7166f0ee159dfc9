package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInferenceFailed  = errors.New("fallo en el servicio de inferencia")
	ErrInferenceTimeout = errors.New("el servicio de inferencia excedió el tiempo límite")
	ErrEmptyCompletion  = errors.New("el modelo devolvió una respuesta vacía")
	ErrInvalidCatalog   = errors.New("catálogo inválido")
)
