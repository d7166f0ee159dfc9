package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/jhoicas/shoppingassistantservice/internal/application/ports"
	"github.com/jhoicas/shoppingassistantservice/internal/domain"
)

// Verificar en tiempo de compilación que OpenAIService implementa InferenceService.
var _ ports.InferenceService = (*OpenAIService)(nil)

const (
	// DefaultModel modelo de visión/lenguaje que debe servir el endpoint.
	DefaultModel = "google/gemma-3-4b-it"
	// PlaceholderAPIKey el endpoint no exige autenticación pero el cliente envía siempre una credencial.
	PlaceholderAPIKey = "no-api-key"
	DefaultMaxRetries = 2
	DefaultTimeout    = 60 * time.Second
)

// OpenAIConfig parámetros del cliente hacia el endpoint compatible con OpenAI.
type OpenAIConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxRetries int
	Timeout    time.Duration // por intento
}

// OpenAIService adaptador que implementa InferenceService con el SDK openai-go.
// Temperatura 0 (decodificación determinista) y sin límite explícito de tokens de salida.
type OpenAIService struct {
	client openai.Client
	model  shared.ChatModel
}

// NewOpenAIService construye el adaptador. Los campos vacíos toman los valores por defecto.
func NewOpenAIService(cfg OpenAIConfig) *OpenAIService {
	if cfg.APIKey == "" {
		cfg.APIKey = PlaceholderAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := openai.NewClient(
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
		option.WithRequestTimeout(cfg.Timeout),
	)
	return &OpenAIService{client: client, model: shared.ChatModel(cfg.Model)}
}

// DescribeImage envía un único mensaje de usuario con una parte de texto y una parte image_url.
func (s *OpenAIService) DescribeImage(ctx context.Context, instruction, imageURL string) (string, error) {
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(instruction),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: imageURL}),
	}
	return s.chat(ctx, openai.UserMessage(parts))
}

// Complete envía el prompt como mensaje de usuario de solo texto.
func (s *OpenAIService) Complete(ctx context.Context, prompt string) (string, error) {
	return s.chat(ctx, openai.UserMessage(prompt))
}

func (s *OpenAIService) chat(ctx context.Context, msg openai.ChatCompletionMessageParamUnion) (string, error) {
	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       s.model,
		Messages:    []openai.ChatCompletionMessageParamUnion{msg},
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", classifyError(ctx, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("AI: %w (sin choices)", domain.ErrEmptyCompletion)
	}
	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("AI: %w", domain.ErrEmptyCompletion)
	}
	return content, nil
}

// classifyError traduce los errores del SDK a errores de dominio conservando la causa.
func classifyError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("AI: %w: %v", domain.ErrInferenceTimeout, err)
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("AI: %w: HTTP %d: %v", domain.ErrInferenceFailed, apiErr.StatusCode, err)
	}
	return fmt.Errorf("AI: %w: %v", domain.ErrInferenceFailed, err)
}
