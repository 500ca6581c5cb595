package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta.
// Price es opcional: si viene cero se captura el precio actual del producto.
type RecordSaleRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Timestamp time.Time       `json:"timestamp"`
}

// TopProductDTO un producto del ranking de ventas del período.
type TopProductDTO struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"` // unidades vendidas en el período
	Revenue   decimal.Decimal `json:"revenue"`
}

// SalesSummaryDTO respuesta de GET /api/sales/summary.
// Se recalcula siempre desde el log de ventas; no guarda estado propio.
type SalesSummaryDTO struct {
	TotalSales        int             `json:"totalSales"` // transacciones, no unidades
	TotalUnits        int             `json:"totalUnits"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"` // 0 si no hay ventas
	TopProducts       []TopProductDTO `json:"topProducts"`
	Period            string          `json:"period"` // ej: "Last 30 days"
}
