package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jortizdev/stockvista-api/internal/application/dto"
	"github.com/jortizdev/stockvista-api/internal/domain/entity"
	"github.com/jortizdev/stockvista-api/internal/domain/repository"
	"github.com/jortizdev/stockvista-api/internal/domain/stock"
)

// AlertUseCase deriva alertas accionables del estado actual del inventario.
// La generación es idempotente y sin efectos secundarios; el único estado
// mutable es el acknowledge, delegado al AlertAckStore por ID de alerta.
type AlertUseCase struct {
	productRepo repository.ProductRepository
	ackStore    repository.AlertAckStore
	windowDays  int
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(productRepo repository.ProductRepository, ackStore repository.AlertAckStore, windowDays int) *AlertUseCase {
	if windowDays <= 0 {
		windowDays = stock.DefaultDeadStockWindowDays
	}
	return &AlertUseCase{productRepo: productRepo, ackStore: ackStore, windowDays: windowDays}
}

// List recalcula las alertas activas y filtra las ya reconocidas.
func (uc *AlertUseCase) List(ctx context.Context) (*dto.AlertListResponse, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	alerts := GenerateAlerts(products, time.Now(), uc.windowDays)

	ids := make([]string, len(alerts))
	for i, a := range alerts {
		ids[i] = a.ID
	}
	acked, err := uc.ackStore.Filter(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("consultar acknowledges: %w", err)
	}

	resp := &dto.AlertListResponse{Alerts: []dto.AlertDTO{}}
	for _, a := range alerts {
		if acked[a.ID] {
			continue
		}
		resp.Alerts = append(resp.Alerts, dto.AlertDTO{
			ID:        a.ID,
			Type:      a.Type,
			Category:  a.Category,
			Title:     a.Title,
			Message:   a.Message,
			Timestamp: a.Timestamp,
			ProductID: a.ProductID,
		})
		switch a.Type {
		case entity.AlertCritical:
			resp.CriticalCount++
		case entity.AlertWarning:
			resp.WarningCount++
		}
	}
	return resp, nil
}

// Acknowledge marca una alerta como atendida; desaparece de los próximos
// listados hasta que el store la expire. No muta el producto.
func (uc *AlertUseCase) Acknowledge(ctx context.Context, alertID string) error {
	return uc.ackStore.Acknowledge(ctx, alertID)
}

// GenerateAlerts deriva la lista de alertas por producto, en el orden en que
// se reciben los productos; ningún ordenamiento implícito por severidad.
// Un producto puede portar a la vez una alerta de nivel de stock y una de
// stock muerto. El ID es determinista (productID:categoría) para que el
// acknowledge sobreviva recomputaciones.
func GenerateAlerts(products []*entity.Product, now time.Time, windowDays int) []*entity.Alert {
	var alerts []*entity.Alert
	for _, p := range products {
		switch status := stock.Classify(p.Quantity, p.ReorderLevel); {
		case status == stock.StatusOutOfStock:
			alerts = append(alerts, &entity.Alert{
				ID:        alertID(p.ID, entity.CategoryOutOfStock),
				Type:      entity.AlertCritical,
				Category:  entity.CategoryOutOfStock,
				Title:     "Out of Stock",
				Message:   fmt.Sprintf("%s (%s) is out of stock. Restock immediately to avoid lost sales.", p.Name, p.SKU),
				Timestamp: now,
				ProductID: p.ID,
			})
		case stock.IsUnderStocked(status):
			alerts = append(alerts, &entity.Alert{
				ID:        alertID(p.ID, entity.CategoryLowStock),
				Type:      entity.AlertWarning,
				Category:  entity.CategoryLowStock,
				Title:     "Low Stock",
				Message:   fmt.Sprintf("%s (%s) has %d units left, at or below its reorder level of %d.", p.Name, p.SKU, p.Quantity, p.ReorderLevel),
				Timestamp: now,
				ProductID: p.ID,
			})
		}

		if stock.IsDeadStock(p.LastSoldAt, now, windowDays) {
			msg := fmt.Sprintf("%s (%s) has had no sales in the last %d days. Consider discounting or discontinuing.", p.Name, p.SKU, windowDays)
			if p.LastSoldAt == nil {
				msg = fmt.Sprintf("%s (%s) has never been sold. Consider discounting or discontinuing.", p.Name, p.SKU)
			}
			alerts = append(alerts, &entity.Alert{
				ID:        alertID(p.ID, entity.CategoryDeadStock),
				Type:      entity.AlertWarning,
				Category:  entity.CategoryDeadStock,
				Title:     "Dead Stock",
				Message:   msg,
				Timestamp: now,
				ProductID: p.ID,
			})
		}
	}
	return alerts
}

func alertID(productID string, category entity.AlertCategory) string {
	return productID + ":" + string(category)
}
