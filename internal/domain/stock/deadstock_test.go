package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/jortizdev/stockvista-api/internal/domain/stock"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func TestIsDeadStock_NuncaVendido(t *testing.T) {
	assert.True(t, stock.IsDeadStock(nil, now, stock.DefaultDeadStockWindowDays),
		"un producto sin ventas registradas siempre es stock muerto")
}

func TestIsDeadStock_VentaReciente(t *testing.T) {
	assert.False(t, stock.IsDeadStock(ptr(now), now, 30),
		"vendido ahora mismo no puede ser stock muerto")
	assert.False(t, stock.IsDeadStock(ptr(now.Add(-29*24*time.Hour)), now, 30))
	assert.False(t, stock.IsDeadStock(ptr(now.Add(-30*24*time.Hour)), now, 30),
		"exactamente 30 días queda dentro de la ventana")
}

func TestIsDeadStock_FueraDeVentana(t *testing.T) {
	assert.True(t, stock.IsDeadStock(ptr(now.Add(-31*24*time.Hour)), now, 30))
	// 30 días y una hora: el techo calendario lo redondea a 31 días.
	assert.True(t, stock.IsDeadStock(ptr(now.Add(-30*24*time.Hour-time.Hour)), now, 30))
}

func TestDaysSinceLastSale(t *testing.T) {
	days, never := stock.DaysSinceLastSale(nil, now)
	assert.True(t, never)
	assert.Zero(t, days)

	days, never = stock.DaysSinceLastSale(ptr(now), now)
	assert.False(t, never)
	assert.Equal(t, 0, days)

	// Techo calendario: media hora de diferencia ya cuenta como 1 día.
	days, _ = stock.DaysSinceLastSale(ptr(now.Add(-30*time.Minute)), now)
	assert.Equal(t, 1, days)

	days, _ = stock.DaysSinceLastSale(ptr(now.Add(-72*time.Hour)), now)
	assert.Equal(t, 3, days)
}
