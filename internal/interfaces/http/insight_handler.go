package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jortizdev/stockvista-api/internal/application/dto"
	"github.com/jortizdev/stockvista-api/internal/application/usecase"
	"github.com/jortizdev/stockvista-api/internal/domain"
)

// InsightHandler maneja el endpoint de análisis de inventario asistido por IA.
type InsightHandler struct {
	uc *usecase.InsightUseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *usecase.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Generate godoc
// @Summary      Insights de inventario con IA
// @Description  Serializa el snapshot del inventario, lo envía al LLM y devuelve
//               recomendaciones en prosa. Sin reintentos automáticos: reintentar
//               es volver a invocar. Timeout interno de 15 s.
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InsightResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      408  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ai/insights [post]
func (h *InsightHandler) Generate(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoProducts) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code: "NO_PRODUCTS", Message: "no hay productos que analizar",
			})
		}
		if errors.Is(err, domain.ErrNoInsight) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "EMPTY_INSIGHT", Message: "el modelo respondió sin contenido; intenta de nuevo",
			})
		}
		// Timeout del contexto → 408 Request Timeout
		if isTimeout(err) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
				Code: "TIMEOUT", Message: "el servicio de IA tardó demasiado; intenta de nuevo",
			})
		}
		// API key no configurada
		if strings.Contains(err.Error(), "GROQ_API_KEY") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AI_UNAVAILABLE", Message: "el servicio de insights IA no está configurado",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "AI_UPSTREAM", Message: err.Error(),
		})
	}
	return c.JSON(out)
}

// isTimeout detecta errores de timeout/cancelación de contexto en el mensaje de error.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "cancelación")
}
