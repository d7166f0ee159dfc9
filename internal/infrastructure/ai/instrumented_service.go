package ai

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/shoppingassistantservice/internal/application/ports"
	"github.com/jhoicas/shoppingassistantservice/internal/domain"
	"github.com/jhoicas/shoppingassistantservice/internal/infrastructure/metrics"
)

var _ ports.InferenceService = (*InstrumentedService)(nil)

// InstrumentedService decorador que registra métricas Prometheus de cada llamada.
type InstrumentedService struct {
	next ports.InferenceService
}

// NewInstrumentedService envuelve cualquier implementación de InferenceService.
func NewInstrumentedService(next ports.InferenceService) *InstrumentedService {
	return &InstrumentedService{next: next}
}

func (s *InstrumentedService) DescribeImage(ctx context.Context, instruction, imageURL string) (string, error) {
	start := time.Now()
	out, err := s.next.DescribeImage(ctx, instruction, imageURL)
	observe(metrics.OperationDescribeImage, start, err)
	return out, err
}

func (s *InstrumentedService) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := s.next.Complete(ctx, prompt)
	observe(metrics.OperationComplete, start, err)
	return out, err
}

func observe(operation string, start time.Time, err error) {
	metrics.InferenceDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.InferenceRequests.WithLabelValues(operation, statusOf(err)).Inc()
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInferenceTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrEmptyCompletion):
		return "empty"
	default:
		return "error"
	}
}
