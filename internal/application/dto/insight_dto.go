package dto

import "github.com/shopspring/decimal"

// InsightProductLine resumen compacto de un producto para el prompt del LLM.
// Se omite todo lo que el modelo no necesita (timestamps de auditoría, IDs
// internos) para mantener el payload en una sola llamada sin chunking.
type InsightProductLine struct {
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Quantity          int             `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	ReorderLevel      int             `json:"reorderLevel"`
	Status            string          `json:"status"`
	DaysSinceLastSale *int            `json:"daysSinceLastSale"` // nil = nunca vendido
}

// InsightRequest payload estructurado que se entrega al colaborador de
// narrativa: lista de productos más estadísticas agregadas.
type InsightRequest struct {
	Products []InsightProductLine `json:"products"`
	Stats    StatsResponse        `json:"stats"`
}

// InsightResponse narrativa devuelta por el LLM.
type InsightResponse struct {
	Insights string `json:"insights"`
}
