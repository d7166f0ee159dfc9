// Package metrics define los colectores Prometheus del servicio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operaciones contra el endpoint de inferencia.
const (
	OperationDescribeImage = "describe_image"
	OperationComplete      = "complete"
)

var (
	InferenceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_inference_requests_total",
			Help: "Total de llamadas al endpoint de inferencia por operación y resultado",
		},
		[]string{"operation", "status"},
	)

	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_inference_duration_seconds",
			Help:    "Duración de las llamadas al endpoint de inferencia (incluye reintentos)",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
		},
		[]string{"operation"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_recommendations_total",
			Help: "Peticiones de recomendación atendidas por código de resultado",
		},
		[]string{"status"},
	)
)
