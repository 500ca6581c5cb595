package stock

import "time"

// DefaultDeadStockWindowDays ventana por defecto para considerar un producto
// como stock muerto: sin ventas en los últimos 30 días.
const DefaultDeadStockWindowDays = 30

const day = 24 * time.Hour

// DaysSinceLastSale devuelve los días transcurridos desde la última venta,
// con techo de día calendario (coincide con la etiqueta "N days ago" de la UI).
// neverSold es true cuando lastSoldAt es nil; en ese caso days no es significativo.
func DaysSinceLastSale(lastSoldAt *time.Time, now time.Time) (days int, neverSold bool) {
	if lastSoldAt == nil {
		return 0, true
	}
	elapsed := now.Sub(*lastSoldAt)
	if elapsed <= 0 {
		return 0, false
	}
	d := int(elapsed / day)
	if elapsed%day > 0 {
		d++
	}
	return d, false
}

// IsDeadStock indica si un producto es stock muerto: nunca vendido, o sin
// ventas en más de windowDays días.
func IsDeadStock(lastSoldAt *time.Time, now time.Time, windowDays int) bool {
	days, never := DaysSinceLastSale(lastSoldAt, now)
	if never {
		return true
	}
	return days > windowDays
}
