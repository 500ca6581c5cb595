package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un SKU del inventario.
// Quantity es el stock disponible actual; ReorderLevel define el umbral de
// stock bajo (por defecto 10 si no se indica al crear). LastSoldAt es nil
// cuando el producto nunca se ha vendido.
type Product struct {
	ID           string
	SKU          string // código único, normalizado a mayúsculas
	Name         string
	Quantity     int
	Price        decimal.Decimal // precio unitario de venta
	ReorderLevel int
	LastSoldAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockValue devuelve el capital inmovilizado en este producto: Quantity * Price.
func (p *Product) StockValue() decimal.Decimal {
	return decimal.NewFromInt(int64(p.Quantity)).Mul(p.Price)
}
