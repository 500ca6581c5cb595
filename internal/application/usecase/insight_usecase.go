package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jortizdev/stockvista-api/internal/application/dto"
	"github.com/jortizdev/stockvista-api/internal/application/ports"
	"github.com/jortizdev/stockvista-api/internal/domain"
	"github.com/jortizdev/stockvista-api/internal/domain/stock"
)

// insightTimeout tope para la llamada al LLM. El modelo suele responder en
// 5-10 s; por encima de eso se cancela y el usuario puede reintentar a mano.
const insightTimeout = 15 * time.Second

// InsightUseCase arma el resumen estructurado del inventario y delega la
// narrativa al colaborador externo. Nunca reintenta automáticamente: el
// reintento es una re-invocación del usuario. Las derivaciones locales
// (clasificación, agregados) no dependen de esta llamada y siguen
// disponibles aunque el LLM esté caído.
type InsightUseCase struct {
	products   *ProductUseCase
	llm        ports.LLMService
	windowDays int
}

// NewInsightUseCase construye el caso de uso inyectando el puerto LLMService.
func NewInsightUseCase(products *ProductUseCase, llm ports.LLMService, windowDays int) *InsightUseCase {
	if windowDays <= 0 {
		windowDays = stock.DefaultDeadStockWindowDays
	}
	return &InsightUseCase{products: products, llm: llm, windowDays: windowDays}
}

// Generate produce recomendaciones en prosa sobre el inventario actual.
// Errores distinguibles para el caller:
//   - domain.ErrNoProducts: no hay nada que analizar.
//   - domain.ErrNoInsight: el LLM respondió pero sin narrativa.
//   - cualquier otro: fallo de transporte/upstream, con el mensaje original.
func (uc *InsightUseCase) Generate(ctx context.Context) (*dto.InsightResponse, error) {
	req, err := uc.BuildRequest(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()

	text, err := uc.llm.GenerateInventoryInsights(ctx, *req)
	if err != nil {
		return nil, fmt.Errorf("generar insights: %w", err)
	}
	if text == "" {
		return nil, domain.ErrNoInsight
	}
	return &dto.InsightResponse{Insights: text}, nil
}

// BuildRequest arma el payload compacto para una sola llamada al LLM:
// una línea por producto más los KPIs agregados. Sin chunking ni streaming.
func (uc *InsightUseCase) BuildRequest(ctx context.Context) (*dto.InsightRequest, error) {
	products, err := uc.products.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNoProducts
	}

	now := time.Now()
	req := &dto.InsightRequest{
		Products: make([]dto.InsightProductLine, 0, len(products)),
		Stats:    *uc.products.buildStats(products, now),
	}
	for _, p := range products {
		line := dto.InsightProductLine{
			Name:         p.Name,
			SKU:          p.SKU,
			Quantity:     p.Quantity,
			Price:        p.Price,
			ReorderLevel: p.ReorderLevel,
			Status:       string(stock.Classify(p.Quantity, p.ReorderLevel)),
		}
		if days, never := stock.DaysSinceLastSale(p.LastSoldAt, now); !never {
			d := days
			line.DaysSinceLastSale = &d
		}
		req.Products = append(req.Products, line)
	}
	return req, nil
}
