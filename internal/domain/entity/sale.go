package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una transacción de venta puntual de un producto.
// UnitPrice es el precio capturado al momento de la venta (puede diferir del
// precio actual del producto). Timestamp se usa para agregaciones por período
// y para actualizar LastSoldAt del producto referenciado.
type Sale struct {
	ID        string
	ProductID string
	Quantity  int // unidades vendidas, >= 1
	UnitPrice decimal.Decimal
	Timestamp time.Time
}

// Revenue devuelve el ingreso de esta venta: Quantity * UnitPrice.
func (s *Sale) Revenue() decimal.Decimal {
	return decimal.NewFromInt(int64(s.Quantity)).Mul(s.UnitPrice)
}
