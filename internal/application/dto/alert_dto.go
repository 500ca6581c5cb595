package dto

import (
	"time"

	"github.com/jortizdev/stockvista-api/internal/domain/entity"
)

// AlertDTO una alerta activa. Category viaja estructurada hasta el frontend
// para que el ícono no dependa de inspeccionar el título.
type AlertDTO struct {
	ID        string               `json:"id"`
	Type      entity.AlertType     `json:"type"`
	Category  entity.AlertCategory `json:"category"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Timestamp time.Time            `json:"timestamp"`
	ProductID string               `json:"productId"`
}

// AlertListResponse respuesta de GET /api/alerts con conteos por severidad.
type AlertListResponse struct {
	Alerts        []AlertDTO `json:"alerts"`
	CriticalCount int        `json:"criticalCount"`
	WarningCount  int        `json:"warningCount"`
}
