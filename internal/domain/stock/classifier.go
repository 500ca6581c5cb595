// Package stock contiene los servicios de dominio puros del motor de
// inventario: clasificación de salud de stock, detección de stock muerto y
// el pipeline de búsqueda/filtrado/ordenamiento. Todas las funciones son
// deterministas, sin efectos secundarios y seguras para invocación concurrente.
package stock

// Status salud de stock de un producto.
type Status string

const (
	StatusOutOfStock Status = "out-of-stock"
	StatusCritical   Status = "critical"
	StatusLow        Status = "low"
	StatusInStock    Status = "in-stock"
)

// Classify mapea cantidad y nivel de reorden a un estado de salud.
// Reglas en orden, gana la primera que aplique:
//
//	quantity == 0                  → out-of-stock
//	quantity <= reorderLevel * 0.5 → critical
//	quantity <= reorderLevel       → low
//	en otro caso                   → in-stock
//
// La comparación con el 50% se hace en enteros (2q <= r) para evitar floats.
// Con reorderLevel == 0 los estados critical/low son inalcanzables salvo por
// la rama out-of-stock; es comportamiento aceptado, no un bug.
func Classify(quantity, reorderLevel int) Status {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case 2*quantity <= reorderLevel:
		return StatusCritical
	case quantity <= reorderLevel:
		return StatusLow
	default:
		return StatusInStock
	}
}

// IsUnderStocked indica si el estado corresponde a "stock bajo" en sentido
// amplio (low o critical). Es el criterio que usa el filtro low-stock.
func IsUnderStocked(s Status) bool {
	return s == StatusLow || s == StatusCritical
}
