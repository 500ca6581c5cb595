package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jortizdev/stockvista-api/internal/domain/stock"
)

// CreateProductRequest entrada para crear un producto.
// ReorderLevel es opcional: nil aplica el umbral por defecto (10) al crear;
// la clasificación nunca vuelve a mirar ese fallback.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Quantity     int             `json:"quantity" validate:"min=0"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel *int            `json:"reorderLevel"`
}

// ProductResponse salida de un producto, con su clasificación de stock.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel int             `json:"reorderLevel"`
	Status       stock.Status    `json:"status"`
	StockValue   decimal.Decimal `json:"stockValue"`
	LastSoldAt   *time.Time      `json:"lastSoldAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// SearchRequest parámetros de GET /api/products/search.
type SearchRequest struct {
	Query  string `query:"query"`  // substring sobre name o SKU
	Status string `query:"status"` // all | in-stock | low-stock | out-of-stock
	SortBy string `query:"sortBy"` // name | quantity-asc | quantity-desc | value-desc
}

// StatsResponse KPIs del dashboard (GET /api/products/stats).
type StatsResponse struct {
	TotalProducts  int             `json:"totalProducts"`
	LowStockCount  int             `json:"lowStockCount"`
	DeadStockCount int             `json:"deadStockCount"`
	TotalValue     decimal.Decimal `json:"totalValue"` // Σ quantity * price
}

// DeadStockItem un producto del reporte de stock muerto.
type DeadStockItem struct {
	ProductResponse
	DaysSinceLastSale int  `json:"daysSinceLastSale"` // 0 cuando NeverSold
	NeverSold         bool `json:"neverSold"`
}

// DeadStockReport respuesta de GET /api/products/dead-stock.
type DeadStockReport struct {
	Items              []DeadStockItem `json:"items"`
	TotalDeadStockValue decimal.Decimal `json:"totalDeadStockValue"` // capital inmovilizado
	WindowDays         int             `json:"windowDays"`
}
