package ports

import (
	"context"

	"github.com/jortizdev/stockvista-api/internal/application/dto"
)

// LLMService define el puerto de salida hacia el colaborador de narrativa.
// Cualquier adaptador (Groq, OpenAI, Ollama, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato (DIP).
type LLMService interface {
	// GenerateInventoryInsights recibe el resumen estructurado del inventario
	// y devuelve recomendaciones en prosa libre. Una sola llamada, sin
	// streaming ni reintentos; el contexto debe llevar timeout.
	GenerateInventoryInsights(ctx context.Context, req dto.InsightRequest) (string, error)
}
