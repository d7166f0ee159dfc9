package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/shoppingassistantservice/internal/application/dto"
	"github.com/jhoicas/shoppingassistantservice/internal/application/ports"
	"github.com/jhoicas/shoppingassistantservice/internal/domain"
	"github.com/jhoicas/shoppingassistantservice/internal/domain/catalog"
	"github.com/jhoicas/shoppingassistantservice/pkg/logger"
)

// DefaultStepTimeout tiempo máximo de cada paso (incluye los reintentos del cliente).
const DefaultStepTimeout = 3 * time.Minute

// RecommendUseCase encadena las dos llamadas al modelo:
// (1) descripción del estilo de la habitación a partir de la foto y
// (2) recomendación de productos del catálogo según esa descripción y la petición del cliente.
// El paso 2 no empieza hasta tener la respuesta completa del paso 1.
type RecommendUseCase struct {
	llm         ports.InferenceService
	log         *logger.Logger
	stepTimeout time.Duration
}

// Option configura el caso de uso.
type Option func(*RecommendUseCase)

// WithStepTimeout fija el timeout de cada llamada al modelo. Valores <= 0 se ignoran.
func WithStepTimeout(d time.Duration) Option {
	return func(uc *RecommendUseCase) {
		if d > 0 {
			uc.stepTimeout = d
		}
	}
}

// NewRecommendUseCase construye el caso de uso inyectando el puerto InferenceService.
func NewRecommendUseCase(llm ports.InferenceService, log *logger.Logger, opts ...Option) *RecommendUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &RecommendUseCase{llm: llm, log: log, stepTimeout: DefaultStepTimeout}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Recommend valida la entrada y ejecuta la cadena de dos pasos.
// El texto del paso 2 se devuelve sin modificaciones: no se valida ni se recorta
// la lista de IDs entre corchetes que el prompt le pide al modelo.
func (uc *RecommendUseCase) Recommend(ctx context.Context, req dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	return uc.recommend(ctx, uc.log, req)
}

// RecommendWithLogger igual que Recommend pero registrando con el logger de la petición.
func (uc *RecommendUseCase) RecommendWithLogger(ctx context.Context, log *logger.Logger, req dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	if log == nil {
		log = uc.log
	}
	return uc.recommend(ctx, log, req)
}

func (uc *RecommendUseCase) recommend(ctx context.Context, log *logger.Logger, req dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	message := DecodeMessage(req.Message)
	log.Info().Str("image", req.Image).Msg("iniciando recomendación")

	description, err := uc.describe(ctx, req.Image)
	if err != nil {
		return nil, fmt.Errorf("descripción de la habitación: %w", err)
	}
	log.Debug().Str("description", description).Msg("paso de descripción completado")

	prompt := BuildDesignPrompt(description, catalog.Render(), message)
	log.Debug().Str("prompt", prompt).Msg("prompt final de diseño")

	content, err := uc.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("recomendación: %w", err)
	}

	log.Info().Int("content_len", len(content)).Msg("recomendación generada")
	return &dto.RecommendationResponse{Content: content}, nil
}

func (uc *RecommendUseCase) describe(ctx context.Context, imageURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.stepTimeout)
	defer cancel()
	return uc.llm.DescribeImage(ctx, VisionInstruction, imageURL)
}

func (uc *RecommendUseCase) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.stepTimeout)
	defer cancel()
	return uc.llm.Complete(ctx, prompt)
}

func validate(req dto.RecommendationRequest) error {
	var missing []string
	if strings.TrimSpace(req.Image) == "" {
		missing = append(missing, "image")
	}
	if strings.TrimSpace(req.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, strings.Join(missing, " y "))
	}
	return nil
}
