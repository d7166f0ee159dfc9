package ports

import "context"

// InferenceService define el puerto de salida hacia el endpoint de inferencia
// compatible con la API de chat completions de OpenAI.
// Cualquier adaptador (openai-go, mock de pruebas) debe implementar esta interfaz;
// la capa de aplicación solo conoce este contrato.
type InferenceService interface {
	// DescribeImage envía un mensaje de visión (instrucción de texto + URL de imagen)
	// y devuelve el texto generado por el modelo.
	DescribeImage(ctx context.Context, instruction, imageURL string) (string, error)

	// Complete envía un prompt de solo texto y devuelve el texto generado.
	Complete(ctx context.Context, prompt string) (string, error)
}
